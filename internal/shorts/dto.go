package shorts

// Payload mirrors the JSON shape the completion prompt constrains the model
// to. Parsing is strict: unknown top-level shapes are rejected before
// anything is persisted.
type Payload struct {
	Shorts []ShortPayload `json:"shorts"`
}

type ShortPayload struct {
	TopicName    string            `json:"topic_name"`
	TopicSummary string            `json:"topic_summary"`
	Questions    []QuestionPayload `json:"questions"`
}

type QuestionPayload struct {
	QuestionText string          `json:"question_text"`
	Options      []OptionPayload `json:"options"`
}

type OptionPayload struct {
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}
