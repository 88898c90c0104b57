package parser

import (
	"fmt"

	"github.com/evcomply/compliance-checker-api/internal/extractor"
	"github.com/evcomply/compliance-checker-api/internal/models"
)

// DocumentOpenError reports that the byte stream could not be parsed
// as a document of the declared type. It is distinct from an
// empty-but-successful parse: a structurally valid report in which no
// catalog test appears returns an empty result and a nil error.
type DocumentOpenError struct {
	ContentType string
	Err         error
}

func (e *DocumentOpenError) Error() string {
	return fmt.Sprintf("could not open %s document: %v", e.ContentType, e.Err)
}

func (e *DocumentOpenError) Unwrap() error {
	return e.Err
}

// Recognized content types. Word-processing and spreadsheet families
// include their legacy MIME types; genuinely legacy binary files fail
// inside the extractor and surface as a DocumentOpenError.
var (
	wordContentTypes = map[string]bool{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml":          true,
		"application/msword": true,
	}
	spreadsheetContentTypes = map[string]bool{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
		"application/vnd.ms-excel": true,
	}
	textContentTypes = map[string]bool{
		"text/plain": true,
		"text/txt":   true,
	}
)

// ParseReport dispatches on the declared content type, extracts text
// or rows, and runs text sources through test segmentation.
// Spreadsheet rows bypass segmentation entirely. Unrecognized content
// types yield an empty successful result.
func (e *Engine) ParseReport(data []byte, contentType string) (*models.ParseResult, error) {
	switch {
	case contentType == "application/pdf":
		text, err := extractor.ExtractPDF(data)
		if err != nil {
			return nil, &DocumentOpenError{ContentType: contentType, Err: err}
		}
		return &models.ParseResult{Records: e.ExtractTests(text)}, nil

	case wordContentTypes[contentType]:
		text, err := extractor.ExtractDOCX(data)
		if err != nil {
			return nil, &DocumentOpenError{ContentType: contentType, Err: err}
		}
		return &models.ParseResult{Records: e.ExtractTests(text)}, nil

	case spreadsheetContentTypes[contentType]:
		rows, err := extractor.ExtractXLSX(data)
		if err != nil {
			return nil, &DocumentOpenError{ContentType: contentType, Err: err}
		}
		return &models.ParseResult{Rows: rows}, nil

	case textContentTypes[contentType]:
		text, err := extractor.ExtractTXT(data)
		if err != nil {
			return nil, &DocumentOpenError{ContentType: contentType, Err: err}
		}
		return &models.ParseResult{Records: e.ExtractTests(text)}, nil

	default:
		return &models.ParseResult{}, nil
	}
}
