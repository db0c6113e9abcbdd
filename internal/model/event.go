package model

// Event is the webhook payload pushed by the Omada controller. Field names
// follow the controller's JSON, capitalization included.
type Event struct {
	Site        string   `json:"Site"`
	Description string   `json:"description"`
	Controller  string   `json:"Controller"`
	Timestamp   int64    `json:"timestamp"`
	Text        []string `json:"text"`
	ShardSecret string   `json:"shardSecret,omitempty"`
}

// StripSecret drops the controller's shared secret so it never reaches
// logs or chat messages.
func (e *Event) StripSecret() {
	e.ShardSecret = ""
}
