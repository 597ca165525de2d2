package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for request structs.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct. Fields the
// struct does not declare are ignored, matching the API's "extra body
// fields ignored" contract.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates the given struct's `validate` tags.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}
