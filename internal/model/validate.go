package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// ErrInvalidDocument marks payloads that are not well-formed resumes.
var ErrInvalidDocument = errors.New("invalid resume document")

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Validate checks a raw JSON payload against resume.schema.json.
func Validate(raw []byte) error {
	s, err := loadSchema()
	if err != nil {
		return errors.Wrap(err, "load resume schema")
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.Wrap(ErrInvalidDocument, err.Error())
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Wrap(ErrInvalidDocument, fmt.Sprintf("schema validation failed: %s", strings.Join(msgs, "; ")))
}

// Decode validates raw and unmarshals it into a Resume.
func Decode(raw []byte) (Resume, error) {
	if err := Validate(raw); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return Resume{}, errors.Wrap(ErrInvalidDocument, err.Error())
	}
	return r.Clone(), nil
}

// Encode marshals r as stored and exported. indent selects the pretty form.
func Encode(r Resume, indent bool) ([]byte, error) {
	r = r.Clone()
	r.LastModified = r.LastModified.UTC()
	if indent {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
