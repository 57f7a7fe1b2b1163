package score

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/question"
)

// Score counts the answers whose selected option matches the stored
// correct index. Answers for unknown questions count for nothing.
func Score(questions []question.Question, answers map[uuid.UUID]int) int {
	byID := make(map[uuid.UUID]question.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	total := 0
	for id, selected := range answers {
		if q, ok := byID[id]; ok && q.CorrectIndex == selected {
			total++
		}
	}
	return total
}
