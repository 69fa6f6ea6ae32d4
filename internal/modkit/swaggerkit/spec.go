package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"langid/internal/platform/config"
	perr "langid/internal/platform/errors"
)

const (
	oasVersion = "3.0.3"
	serverURL  = "/api/v1"
	errorRef   = "#/components/schemas/ErrorResponse"
)

// defaultResponse is an error response added to every operation under
// prefix that does not document status itself
type defaultResponse struct {
	prefix string
	status int
	code   perr.ErrorCode
	msg    string
}

var defaultResponses = []defaultResponse{
	{"/", http.StatusInternalServerError, perr.ErrorCodeInference, "language inference failed"},
	{"/langid", http.StatusBadRequest, perr.ErrorCodeValidation, "text is a required field"},
	{"/langid", http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument, "no valid scripts found in the input text"},
}

// serveDocJSON decorates the spec from docReader on every request
func serveDocJSON() http.HandlerFunc {
	suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		decorate(spec, suffix)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// decorate pins the document to OpenAPI 3.0.3, which the UI can render,
// and fills in the shared error envelope
func decorate(spec map[string]any, titleSuffix string) {
	delete(spec, "swagger")
	spec["openapi"] = oasVersion
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": serverURL}}
	}
	if info, ok := spec["info"].(map[string]any); ok && titleSuffix != "" {
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + titleSuffix
		}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema()
	}

	paths, _ := spec["paths"].(map[string]any)
	for _, d := range defaultResponses {
		for path, node := range paths {
			if !strings.HasPrefix(path, d.prefix) {
				continue
			}
			ops, _ := node.(map[string]any)
			for _, op := range ops {
				if op, ok := op.(map[string]any); ok {
					responses := child(op, "responses")
					if _, exists := responses[strconv.Itoa(d.status)]; !exists {
						responses[strconv.Itoa(d.status)] = d.node()
					}
				}
			}
		}
	}
}

// child returns m[key] as a map, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func errorSchema() map[string]any {
	prop := func(typ string) map[string]any { return map[string]any{"type": typ} }
	return map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"field":       prop("string"),
			"request_id":  prop("string"),
		},
		"required": []any{"status_code", "status"},
	}
}

func (d defaultResponse) node() map[string]any {
	status := http.StatusText(d.status)
	return map[string]any{
		"description": status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": errorRef},
				"example": map[string]any{
					"status_code": d.status,
					"status":      status,
					"code":        int(d.code),
					"error":       d.msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}
