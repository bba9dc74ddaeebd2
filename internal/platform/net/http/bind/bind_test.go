package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/net/http/bind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runInput struct {
	User    string   `json:"user" validate:"required,min=3,max=20,handle"`
	Limit   int      `json:"limit" validate:"omitempty,min=1"`
	Words   []string `json:"words,omitempty" validate:"omitempty,max=3,dive,required"`
	Sort    string   `json:"sort,omitempty"`
	Verbose bool     `json:"verbose"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(body))
}

func TestDecode_Valid(t *testing.T) {
	in, err := bind.Decode[runInput](post(`{"user":"spez","limit":1500,"sort":"dec","verbose":true,"words":["heck"]}`))
	require.NoError(t, err)
	assert.Equal(t, runInput{User: "spez", Limit: 1500, Sort: "dec", Verbose: true, Words: []string{"heck"}}, in)
}

func TestDecode_Failures(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty body", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"broken json", `{"user":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"user":"spez","color":true}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing data", `{"user":"spez"} {"user":"kn0thing"}`, perr.ErrorCodeJSON, "", "trailing"},
		{"missing user", `{"limit":5}`, perr.ErrorCodeValidation, "user", "user is required"},
		{"short user", `{"user":"ab"}`, perr.ErrorCodeValidation, "user", "user must be at least 3"},
		{"bad handle", `{"user":"bob smith"}`, perr.ErrorCodeValidation, "user", "may only contain"},
		{"zero limit ok but negative not", `{"user":"spez","limit":-1}`, perr.ErrorCodeValidation, "limit", "limit must be at least 1"},
		{"too many words", `{"user":"spez","words":["a","b","c","d"]}`, perr.ErrorCodeValidation, "words", "words must be at most 3"},
		{"blank word", `{"user":"spez","words":["a",""]}`, perr.ErrorCodeValidation, "words[1]", "is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bind.Decode[runInput](post(tc.body))
			require.Error(t, err)
			assert.Equal(t, tc.code, perr.CodeOf(err))
			assert.Contains(t, err.Error(), tc.msg)
			if tc.field != "" {
				e, ok := perr.As(err)
				require.True(t, ok)
				assert.Equal(t, tc.field, e.Field())
			}
		})
	}
}

func TestDecode_BodyCap(t *testing.T) {
	big := `{"user":"spez","sort":"` + strings.Repeat("x", bind.MaxBody) + `"}`
	_, err := bind.Decode[runInput](post(big))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeJSON))
}

func TestStruct_NoLimitCeiling(t *testing.T) {
	assert.NoError(t, bind.Struct(runInput{User: "spez", Limit: 5000}))
	assert.NoError(t, bind.Struct(runInput{User: "under_score-ok"}))
}

func TestStruct_NonStructIsValidationError(t *testing.T) {
	err := bind.Struct(42)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
}
