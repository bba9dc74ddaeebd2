// Package bind decodes and validates request payloads and CLI input with
// go-playground/validator. Failures come back as perr errors naming the offending field
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	perr "sailormouth/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps a JSON request body
const MaxBody = 1 << 20

var handleRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// messages replace the stock english texts with shorter ones keyed by tag
var messages = map[string]string{
	"required": "{0} is required",
	"min":      "{0} must be at least {1}",
	"max":      "{0} must be at most {1}",
	"handle":   "{0} may only contain letters, digits, '_' and '-'",
}

var (
	once  sync.Once
	valid *validator.Validate
	trans ut.Translator
)

func setup() {
	loc := en.New()
	trans, _ = ut.New(loc, loc).GetTranslator("en")

	valid = validator.New(validator.WithRequiredStructEnabled())
	valid.RegisterTagNameFunc(jsonName)
	_ = entrans.RegisterDefaultTranslations(valid, trans)
	_ = valid.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return handleRe.MatchString(fl.Field().String())
	})

	for tag, text := range messages {
		_ = valid.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(fe.Tag(), fe.Field(), fe.Param())
				return msg
			},
		)
	}
}

// jsonName reports fields by their json name so messages match the payload
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// Validator returns the shared validator
func Validator() *validator.Validate {
	once.Do(setup)
	return valid
}

// Struct validates v and returns the first failure as an ErrorCodeValidation error
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeValidation, "cannot validate input")
	}
	fe := verrs[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(trans)), fe.Field())
}

// Decode reads a single JSON object of type T from r's body and validates it.
// Unknown fields, trailing data and an empty body are ErrorCodeJSON errors
func Decode[T any](r *http.Request) (T, error) {
	var v T
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, perr.JSONErrf("empty body")
		}
		return v, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return v, perr.JSONErrf("unexpected trailing data")
	}
	return v, Struct(v)
}
