package entities

import "time"

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ResultEnvelope is the single structured result of one extraction
// request. Failure always carries an empty data slice; success carries
// the full row set, possibly empty when the filtered table has no rows.
type ResultEnvelope struct {
	Status    string            `json:"status"`
	Data      []ExtractedRecord `json:"data"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
}

// NewSuccessEnvelope builds a success envelope around the extracted rows.
func NewSuccessEnvelope(records []ExtractedRecord, message string) ResultEnvelope {
	if records == nil {
		records = []ExtractedRecord{}
	}
	return ResultEnvelope{
		Status:    StatusSuccess,
		Data:      records,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// NewFailureEnvelope builds a failure envelope. Data is always empty:
// a failed request never returns partial rows.
func NewFailureEnvelope(message string) ResultEnvelope {
	return ResultEnvelope{
		Status:    StatusFailed,
		Data:      []ExtractedRecord{},
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
