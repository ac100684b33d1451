// Package validation checks request bodies against JSON schemas.
package validation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
)

// Schema is a compiled request schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// MustCompile compiles src or panics. Used for package-level schemas.
func MustCompile(name, src string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("validation: compile " + name + " schema: " + err.Error())
	}
	return &Schema{name: name, schema: s}
}

// Validate checks a raw JSON document. Failures are apperr.CodeValidation.
func (s *Schema) Validate(body []byte) error {
	if len(body) == 0 {
		return apperr.Validation("invalid "+s.name+" request", "request body is empty")
	}
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apperr.Validation("invalid "+s.name+" request", "malformed JSON body")
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			errs[i] = e.String()
		}
		return apperr.Validation("invalid "+s.name+" request", strings.Join(errs, "; "))
	}
	return nil
}
