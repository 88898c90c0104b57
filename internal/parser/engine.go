package parser

import (
	"regexp"
	"strings"

	"github.com/evcomply/compliance-checker-api/internal/catalog"
	"github.com/evcomply/compliance-checker-api/internal/models"
)

// Sentinel is the placeholder for fields never populated within a
// segment.
const Sentinel = "N/A"

var (
	resultPattern   = regexp.MustCompile(`(?i)(pass|fail)`)
	expectedPattern = regexp.MustCompile(`(?i)(Requirement|Expected|Limit)[:\s]+([^\n\r]+)`)
	actualPattern   = regexp.MustCompile(`(?i)(Actual|Measured|Observed|Value|Triggered at|Cut-off at|Deviation)[:\s]+([^\n\r]+)`)
)

// Engine extracts test records from linearized report text. It holds
// no per-call state; one Engine may serve any number of concurrent
// callers.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// segment accumulates one test's lines between its heading and the
// next blank line or heading.
type segment struct {
	record    models.TestRecord
	paragraph strings.Builder
}

func newSegment(entry catalog.Entry) *segment {
	return &segment{record: models.TestRecord{
		Name:     entry.Name,
		Standard: entry.Standard,
		Result:   Sentinel,
		Expected: Sentinel,
		Actual:   Sentinel,
	}}
}

// scan applies one trimmed line to the segment: result keyword and
// labeled expected/actual values overwrite earlier matches, and the
// line always joins the paragraph excerpt.
func (s *segment) scan(line string) {
	if m := resultPattern.FindString(line); m != "" {
		s.record.Result = strings.ToUpper(m)
	}
	if m := expectedPattern.FindStringSubmatch(line); m != nil {
		s.record.Expected = m[2]
	}
	if m := actualPattern.FindStringSubmatch(line); m != nil {
		s.record.Actual = m[2]
	}
	s.paragraph.WriteString(line)
	s.paragraph.WriteString(" ")
}

func (s *segment) finalize() (models.TestRecord, bool) {
	if s.record.Name == "" {
		return models.TestRecord{}, false
	}
	s.record.Paragraph = strings.TrimSpace(s.paragraph.String())
	return s.record, true
}

// ExtractTests splits the text into lines and folds them through a
// two-state machine: no active segment, or one active segment. A blank
// line flushes the active segment; a line matching a catalog entry
// flushes and opens a new one. The heading line itself is then scanned
// against the segment it opened, so a heading that also carries a
// labeled value populates the new record.
//
// Malformed text is never an error: unmatched lines outside a segment
// are ignored, and fields with no matching line keep their sentinel.
func (e *Engine) ExtractTests(text string) []models.TestRecord {
	lines := strings.Split(text, "\n")

	var records []models.TestRecord
	var current *segment

	flush := func() {
		if current == nil {
			return
		}
		if rec, ok := current.finalize(); ok {
			records = append(records, rec)
		}
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}

		if entry, ok := e.catalog.Match(trimmed); ok {
			flush()
			current = newSegment(entry)
		}

		if current != nil {
			current.scan(trimmed)
		}
	}

	flush()
	return records
}
