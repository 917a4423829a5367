package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractJob tracks one run of the extraction pipeline for a document.
type ExtractJob struct {
	ID           uuid.UUID  `json:"id"`
	PODocName    string     `json:"po_doc_name"`
	Status       string     `json:"status"`
	ModelName    string     `json:"model_name,omitempty"`
	RawResponse  []byte     `json:"raw_response,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
