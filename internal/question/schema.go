package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var ErrInvalidQuestion = errors.New("invalid question")

const createQuestionSchemaURL = "schema://question-create.json"

const createQuestionSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["text", "options", "correct_index"],
  "properties": {
    "text": {"type": "string", "minLength": 1},
    "options": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {"type": "string", "minLength": 1}
    },
    "correct_index": {"type": "integer", "minimum": 0, "maximum": 3}
  }
}`

var createQuestionValidator = mustCompile(createQuestionSchemaURL, createQuestionSchema)

func mustCompile(url, schema string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		panic(fmt.Sprintf("parse schema %s: %v", url, err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", url, err))
	}
	return c.MustCompile(url)
}

// DecodeCreateQuestion validates body against the create schema before
// binding it, so a DTO that reaches the service is always well formed.
func DecodeCreateQuestion(body []byte) (CreateQuestionDTO, error) {
	var dto CreateQuestionDTO

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return dto, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidQuestion, err)
	}
	if err := createQuestionValidator.Validate(doc); err != nil {
		return dto, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	if err := json.Unmarshal(body, &dto); err != nil {
		return dto, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}
	return dto, nil
}
