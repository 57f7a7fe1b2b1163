package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCompletion   = errors.New("empty completion from model")
	ErrInvalidCompletion = errors.New("model did not return a JSON question")
)

// ParseQuestion makes a single attempt at decoding the completion. Only
// surrounding markdown fences are removed; the content is not repaired.
// A JSON value without text and options is not a question.
func ParseQuestion(raw string) (*GeneratedQuestion, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyCompletion
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var q *GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCompletion, err)
	}
	if q == nil || strings.TrimSpace(q.Text) == "" || len(q.Options) == 0 {
		return nil, fmt.Errorf("%w: missing text or options", ErrInvalidCompletion)
	}
	return q, nil
}
