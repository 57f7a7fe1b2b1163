package score

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/question"
)

const maxUsernameLength = 64

var ErrInvalidSubmission = errors.New("invalid submission")

type SubmitDTO struct {
	Answers  map[uuid.UUID]int `json:"answers"`
	Username *string           `json:"username"`
}

type SubmitResponse struct {
	Score int   `json:"score"`
	Badge Badge `json:"badge"`
}

type BadgesResponse struct {
	Username string  `json:"username"`
	Badges   []Badge `json:"badges"`
}

func (d SubmitDTO) Validate() error {
	if d.Answers == nil {
		return fmt.Errorf("%w: answers is required", ErrInvalidSubmission)
	}
	for id, selected := range d.Answers {
		if selected < 0 || selected >= question.OptionCount {
			return fmt.Errorf("%w: answer for %s must be between 0 and %d", ErrInvalidSubmission, id, question.OptionCount-1)
		}
	}
	if d.Username != nil && utf8.RuneCountInString(strings.TrimSpace(*d.Username)) > maxUsernameLength {
		return fmt.Errorf("%w: username longer than %d characters", ErrInvalidSubmission, maxUsernameLength)
	}
	return nil
}

func (d SubmitDTO) ResolvedUsername() string {
	if d.Username == nil {
		return DefaultUsername
	}
	if name := strings.TrimSpace(*d.Username); name != "" {
		return name
	}
	return DefaultUsername
}
