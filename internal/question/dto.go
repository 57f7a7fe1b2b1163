package question

type CreateQuestionDTO struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

func (d CreateQuestionDTO) toEntity() *Question {
	options := make([]string, len(d.Options))
	copy(options, d.Options)
	return &Question{
		Text:         d.Text,
		Options:      options,
		CorrectIndex: d.CorrectIndex,
	}
}
