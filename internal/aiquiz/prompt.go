package aiquiz

import (
	"fmt"
	"strings"
)

const DefaultTopic = "water conservation"

const promptTemplate = "Create a multiple-choice quiz question about %s. " +
	"Respond in JSON format with keys: text, options (list of 4), and correct_index (0-3)."

func BuildPrompt(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	return fmt.Sprintf(promptTemplate, topic)
}
