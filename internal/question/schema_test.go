package question_test

import (
	"testing"

	"github.com/saulo-duarte/h2owise/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateQuestion(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		dto, err := question.DecodeCreateQuestion([]byte(
			`{"text":"Which uses less water?","options":["Bath","Shower","Hose","Pool"],"correct_index":1}`))
		require.NoError(t, err)
		assert.Equal(t, "Which uses less water?", dto.Text)
		assert.Equal(t, []string{"Bath", "Shower", "Hose", "Pool"}, dto.Options)
		assert.Equal(t, 1, dto.CorrectIndex)
	})

	invalid := map[string]string{
		"MalformedJSON":   `{"text":`,
		"NotAnObject":     `["a"]`,
		"MissingText":     `{"options":["a","b","c","d"],"correct_index":0}`,
		"EmptyText":       `{"text":"","options":["a","b","c","d"],"correct_index":0}`,
		"ThreeOptions":    `{"text":"q","options":["a","b","c"],"correct_index":0}`,
		"FiveOptions":     `{"text":"q","options":["a","b","c","d","e"],"correct_index":0}`,
		"NonStringOption": `{"text":"q","options":["a","b","c",4],"correct_index":0}`,
		"IndexTooHigh":    `{"text":"q","options":["a","b","c","d"],"correct_index":4}`,
		"NegativeIndex":   `{"text":"q","options":["a","b","c","d"],"correct_index":-1}`,
		"FractionalIndex": `{"text":"q","options":["a","b","c","d"],"correct_index":1.5}`,
		"MissingIndex":    `{"text":"q","options":["a","b","c","d"]}`,
		"UnknownField":    `{"text":"q","options":["a","b","c","d"],"correct_index":0,"id":"x"}`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := question.DecodeCreateQuestion([]byte(body))
			assert.ErrorIs(t, err, question.ErrInvalidQuestion)
		})
	}
}
