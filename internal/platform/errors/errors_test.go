package errors_test

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	perr "sailormouth/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_StatusAndName(t *testing.T) {
	cases := []struct {
		code   perr.ErrorCode
		status int
		name   string
	}{
		{perr.ErrorCodeInvalidArgument, http.StatusUnprocessableEntity, "invalid_argument"},
		{perr.ErrorCodeValidation, http.StatusBadRequest, "validation"},
		{perr.ErrorCodeJSON, http.StatusBadRequest, "json"},
		{perr.ErrorCodeNotFound, http.StatusNotFound, "not_found"},
		{perr.ErrorCodeSourceUnavailable, http.StatusBadGateway, "source_unavailable"},
		{perr.ErrorCodeWordList, http.StatusInternalServerError, "word_list_unreadable"},
		{perr.ErrorCodeTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{perr.ErrorCode(999), http.StatusInternalServerError, "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.code.Status())
			assert.Equal(t, tc.name, tc.code.String())
		})
	}
}

func TestWrap_KeepsCauseAndCode(t *testing.T) {
	cause := stderrs.New("dial tcp: refused")
	err := perr.Wrapf(cause, perr.ErrorCodeUnavailable, "reddit fetch for %s", "bob")

	assert.Equal(t, "reddit fetch for bob: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	assert.True(t, perr.Retryable(err))
	assert.Equal(t, "reddit fetch for bob", perr.Public(err))

	// a foreign wrapper on top still resolves to our code
	outer := fmt.Errorf("run: %w", err)
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(outer))
	assert.Equal(t, http.StatusServiceUnavailable, perr.HTTPStatus(outer))
}

func TestWithField_CopiesOnWrite(t *testing.T) {
	base := perr.InvalidArgf("unknown sort mode %q", "sideways")
	named := perr.WithField(base, "sort")

	e, ok := perr.As(named)
	require.True(t, ok)
	assert.Equal(t, "sort", e.Field())

	orig, _ := perr.As(base)
	assert.Empty(t, orig.Field())

	foreign := stderrs.New("plain")
	assert.Same(t, foreign, perr.WithField(foreign, "user"))
}

func TestForeignErrors(t *testing.T) {
	err := stderrs.New("secret dsn leaked")
	assert.Equal(t, perr.ErrorCodeUnknown, perr.CodeOf(err))
	assert.Equal(t, "internal error", perr.Public(err))
	assert.False(t, perr.Retryable(err))
	assert.Equal(t, perr.ErrorCodeUnknown, perr.CodeOf(nil))
}

func TestSugarConstructors(t *testing.T) {
	cases := map[perr.ErrorCode]error{
		perr.ErrorCodeNotFound:          perr.NotFoundf("reddit user %s not found", "x"),
		perr.ErrorCodeJSON:              perr.JSONErrf("empty body"),
		perr.ErrorCodeSourceUnavailable: perr.SourceUnavailablef("suspended"),
		perr.ErrorCodeWordList:          perr.WordListf("word list is empty"),
	}
	for code, err := range cases {
		assert.Equal(t, code, perr.CodeOf(err), code.String())
	}
}
