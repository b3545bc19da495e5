package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// ErrMalformedPayload is returned by DecodeSubmission when the input is not
// JSON at all.
var ErrMalformedPayload = errors.New("malformed quiz payload")

const submissionSchemaURL = "schema://quiz-submission.json"

var optionalString = map[string]any{"type": []any{"string", "null"}}

// submissionSchema describes the shape of a raw quiz payload. It only checks
// types; presence and length rules belong to Validate so that both checks
// report through the same field paths.
var submissionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       optionalString,
		"description": optionalString,
		"url":         optionalString,
		"questions_answers": map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "integer"},
					"text":           optionalString,
					"feedback_true":  optionalString,
					"feedback_false": optionalString,
					"answers": map[string]any{
						"type": []any{"array", "null"},
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":      map[string]any{"type": "integer"},
								"text":    optionalString,
								"is_true": map[string]any{"type": "boolean"},
							},
							"required": []any{"is_true"},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce      sync.Once
	compiledSchema   *jsonschema.Schema
	compileSchemaErr error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON values, so round-trip the
		// Go literal through encoding/json first.
		defBytes, err := json.Marshal(submissionSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(submissionSchemaURL, defParsed); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = c.Compile(submissionSchemaURL)
	})
	return compiledSchema, compileSchemaErr
}

// DecodeSubmission parses a raw JSON quiz payload. Shape problems (a number
// where a string belongs, a missing is_true flag) come back as
// *ValidationErrors with the same field paths Validate uses.
func DecodeSubmission(raw []byte) (Submission, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return Submission{}, fmt.Errorf("compile submission schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		var verr *jsonschema.ValidationError
		if !errors.As(err, &verr) {
			return Submission{}, fmt.Errorf("schema validation: %w", err)
		}
		errs := &ValidationErrors{}
		collectSchemaErrors(errs, verr)
		return Submission{}, errs
	}

	var s Submission
	if err := json.Unmarshal(raw, &s); err != nil {
		return Submission{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return s, nil
}

// collectSchemaErrors flattens the leaves of a schema validation tree.
func collectSchemaErrors(errs *ValidationErrors, verr *jsonschema.ValidationError) {
	if len(verr.Causes) > 0 {
		for _, c := range verr.Causes {
			collectSchemaErrors(errs, c)
		}
		return
	}

	path := instancePath(verr.InstanceLocation)
	switch k := verr.ErrorKind.(type) {
	case *kind.Required:
		for _, missing := range k.Missing {
			errs.add(joinPath(path, missing), fmt.Sprintf("%s is required", missing))
		}
	case *kind.Type:
		errs.add(path, fmt.Sprintf("must be %s", strings.Join(k.Want, " or ")))
	default:
		errs.add(path, fmt.Sprintf("invalid value (%s)", strings.Join(verr.ErrorKind.KeywordPath(), "/")))
	}
}

// instancePath renders ["questions_answers","0","text"] as
// "questions_answers[0].text".
func instancePath(loc []string) string {
	var b strings.Builder
	for _, seg := range loc {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	if b.Len() == 0 {
		return "$"
	}
	return b.String()
}

func joinPath(parent, field string) string {
	if parent == "$" {
		return field
	}
	return parent + "." + field
}
