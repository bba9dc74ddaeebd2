package reddit

import "time"

// listing is the envelope of /user/{name}/comments.json
type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

type thing struct {
	Kind string      `json:"kind"`
	Data commentData `json:"data"`
}

type commentData struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Body       string  `json:"body"`
	Subreddit  string  `json:"subreddit"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
}

// Comment is one public comment by the requested user
type Comment struct {
	ID        string
	Body      string
	Subreddit string
	CreatedAt time.Time
}

func (d commentData) comment() Comment {
	var at time.Time
	if d.CreatedUTC > 0 {
		at = time.Unix(int64(d.CreatedUTC), 0).UTC()
	}
	return Comment{ID: d.ID, Body: d.Body, Subreddit: d.Subreddit, CreatedAt: at}
}
