package aiquiz

type GenerateRequest struct {
	Topic string `json:"topic"`
}

// GeneratedQuestion has the shape of a stored question without an id,
// ready to be posted to /question/add.
type GeneratedQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}
