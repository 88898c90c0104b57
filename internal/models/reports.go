package models

import (
	"time"
)

// TestRecord is one test result extracted from a lab report.
type TestRecord struct {
	Name      string `json:"name" db:"name"`
	Standard  string `json:"standard" db:"standard"`
	Result    string `json:"result" db:"result"`
	Expected  string `json:"expected" db:"expected"`
	Actual    string `json:"actual" db:"actual"`
	Paragraph string `json:"paragraph" db:"paragraph"`
}

// SpreadsheetRow is one row of a tabular report, column name to cell
// value. Spreadsheet reports bypass test segmentation entirely.
type SpreadsheetRow map[string]string

// ParseResult carries the outcome of parsing one report document.
// Exactly one of Records or Rows is populated, depending on whether
// the source was free text or a spreadsheet.
type ParseResult struct {
	Records []TestRecord     `json:"records,omitempty"`
	Rows    []SpreadsheetRow `json:"rows,omitempty"`
}

// Empty reports whether parsing succeeded but recognized nothing.
func (r *ParseResult) Empty() bool {
	return len(r.Records) == 0 && len(r.Rows) == 0
}

type Report struct {
	ID          string       `json:"id" db:"id"`
	Filename    string       `json:"filename" db:"filename"`
	FileSize    int64        `json:"file_size" db:"file_size"`
	ContentType string       `json:"content_type" db:"content_type"`
	S3Key       string       `json:"s3_key" db:"s3_key"`
	RecordCount int          `json:"record_count" db:"record_count"`
	Records     []TestRecord `json:"records,omitempty" db:"-"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	VerifiedAt  *time.Time   `json:"verified_at,omitempty" db:"verified_at"`
}

type UploadRequest struct {
	File        []byte
	Filename    string
	ContentType string
}

type UploadResponse struct {
	ID          string           `json:"id"`
	Filename    string           `json:"filename"`
	FileSize    int64            `json:"file_size"`
	ContentType string           `json:"content_type"`
	Records     []TestRecord     `json:"records,omitempty"`
	Rows        []SpreadsheetRow `json:"rows,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	Message     string           `json:"message"`
}

// Issue is one compliance failure found while verifying a report.
type Issue struct {
	TestName string `json:"test_name"`
	Message  string `json:"message"`
}

type VerifyResponse struct {
	ID         string    `json:"id"`
	Compliant  bool      `json:"compliant"`
	Issues     []Issue   `json:"issues"`
	VerifiedAt time.Time `json:"verified_at"`
}
