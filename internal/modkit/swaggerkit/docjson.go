package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	perr "sailormouth/internal/platform/errors"

	docs "sailormouth/internal/services/api/docs"
)

// docReader returns the raw OpenAPI template, tests replace it
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// errorExamples are added to every operation that does not document the status itself
var errorExamples = map[string]struct {
	desc string
	code perr.ErrorCode
	msg  string
}{
	"400": {"Bad Request", perr.ErrorCodeValidation, "user must be at least 3"},
	"500": {"Internal Server Error", perr.ErrorCodePanic, "internal error"},
}

// serveDocJSON decodes the template, fills in servers and shared error responses
// and writes the result
func serveDocJSON(base string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "openapi document is not valid JSON", http.StatusInternalServerError)
			return
		}
		ensureServers(doc, base)
		addErrorResponses(doc)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// ensureServers pins the document to OpenAPI 3.0.3, which is what the bundled UI
// renders, and points servers at base when none are listed
func ensureServers(doc map[string]any, base string) {
	delete(doc, "swagger")
	if v, _ := doc["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		doc["openapi"] = "3.0.3"
	}
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{map[string]any{"url": base}}
	}
}

func addErrorResponses(doc map[string]any) {
	paths, _ := doc["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, op := range ops {
			o, ok := op.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := o["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				o["responses"] = resps
			}
			for status, ex := range errorExamples {
				if _, set := resps[status]; set {
					continue
				}
				resps[status] = map[string]any{
					"description": ex.desc,
					"content": map[string]any{"application/json": map[string]any{
						"schema": map[string]any{"$ref": "#/components/schemas/Envelope"},
						"example": map[string]any{
							"status_code": ex.code.Status(),
							"status":      ex.desc,
							"code":        int(ex.code),
							"error":       ex.msg,
						},
					}},
				}
			}
		}
	}
}
