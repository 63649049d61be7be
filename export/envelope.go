package export

import (
	"encoding/json"
	"time"
)

// TimestampLayout is ISO-8601 UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Envelope is the body posted to the backend.
type Envelope struct {
	UserID          json.RawMessage `json:"user_id"`
	Conversations   json.RawMessage `json:"conversations"`
	ExportTimestamp string          `json:"export_timestamp"`
}

// NewEnvelope wraps raw arguments; absent values are encoded as null.
func NewEnvelope(userID, conversations json.RawMessage, now time.Time) *Envelope {
	return &Envelope{
		UserID:          orNull(userID),
		Conversations:   orNull(conversations),
		ExportTimestamp: now.UTC().Format(TimestampLayout),
	}
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}

// Result is the backend's answer; every field is best effort.
type Result struct {
	Success               *bool           `json:"success,omitempty"`
	Message               string          `json:"message,omitempty"`
	ConceptsExtracted     json.RawMessage `json:"concepts_extracted,omitempty"`
	QuizzesGenerated      json.RawMessage `json:"quizzes_generated,omitempty"`
	KnowledgeNodesCreated json.RawMessage `json:"knowledge_nodes_created,omitempty"`
	ProcessingTime        float64         `json:"processing_time_seconds,omitempty"`
	ImportID              json.RawMessage `json:"import_id,omitempty"`
}
