// Package http holds the JSON envelope every endpoint answers with, the handler
// adapters that produce it and the server runner
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/net/http/bind"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Envelope wraps every response body
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Field      string         `json:"field,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Write sends data in a success envelope
func Write(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, data any) {
	send(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  chimw.GetReqID(r.Context()),
		Data:       data,
	})
}

// WriteError maps err to its status and sends an error envelope
func WriteError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	env := Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       perr.CodeOf(err),
		Error:      perr.Public(err),
		RequestID:  chimw.GetReqID(r.Context()),
	}
	if e, ok := perr.As(err); ok {
		env.Field = e.Field()
	}
	send(w, status, env)
}

func send(w stdhttp.ResponseWriter, status int, env Envelope) {
	if env.RequestID != "" {
		w.Header().Set(chimw.RequestIDHeader, env.RequestID)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// Serve adapts fn into a handler answering 200 with its result or the mapped error
func Serve(fn func(*stdhttp.Request) (any, error)) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		out, err := fn(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		Write(w, r, stdhttp.StatusOK, out)
	}
}

// ServeJSON is Serve for handlers taking a decoded and validated JSON body
func ServeJSON[T any](fn func(*stdhttp.Request, T) (any, error)) stdhttp.HandlerFunc {
	return Serve(func(r *stdhttp.Request) (any, error) {
		in, err := bind.Decode[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// NotFound answers unknown routes with an enveloped 404
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	WriteError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed answers known paths hit with the wrong verb
func MethodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := stdhttp.StatusMethodNotAllowed
	send(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       perr.ErrorCodeInvalidArgument,
		Error:      r.Method + " is not supported here",
		RequestID:  chimw.GetReqID(r.Context()),
	})
}
