package compliance

import (
	"fmt"
	"strings"

	"github.com/evcomply/compliance-checker-api/internal/catalog"
	"github.com/evcomply/compliance-checker-api/internal/models"
)

// Service answers compliance questions over extracted test records
// using the injected knowledge bases. It is stateless.
type Service struct {
	testCases  *catalog.TestCaseKB
	components *catalog.ComponentKB
}

func NewService(testCases *catalog.TestCaseKB, components *catalog.ComponentKB) *Service {
	return &Service{
		testCases:  testCases,
		components: components,
	}
}

// VerifyReport returns one issue per record whose result contains
// FAIL. An empty slice means the report is compliant.
func (s *Service) VerifyReport(records []models.TestRecord) []models.Issue {
	issues := []models.Issue{}
	for _, rec := range records {
		if strings.Contains(strings.ToUpper(rec.Result), "FAIL") {
			issues = append(issues, models.Issue{
				TestName: rec.Name,
				Message:  fmt.Sprintf("Test Failed: %s", rec.Name),
			})
		}
	}
	return issues
}

const (
	genericRequirement = "Generic requirement."
	genericEquipment   = "Not specified."
)

// GenerateRequirements matches each requested test case against the
// knowledge base and emits a requirement per match. A line matching
// nothing gets the generic fallback plus an external-search marker so
// callers can offer a research link.
func (s *Service) GenerateRequirements(testCases []string) []models.Requirement {
	reqs := []models.Requirement{}
	for i, line := range testCases {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		id := fmt.Sprintf("REQ_%03d", i+1)
		matches := s.testCases.MatchAll(line)
		if len(matches) == 0 {
			reqs = append(reqs, models.Requirement{
				TestCase:       line,
				RequirementID:  id,
				Description:    genericRequirement,
				Equipment:      genericEquipment,
				ExternalSearch: line,
			})
			continue
		}

		for _, m := range matches {
			reqs = append(reqs, models.Requirement{
				TestCase:      titleCase(m.Name),
				RequirementID: id,
				Description:   m.Requirement,
				Equipment:     strings.Join(m.Equipment, ", "),
			})
		}
	}
	return reqs
}

// LookupComponent finds datasheet data for a part number by substring
// match against the component knowledge base.
func (s *Service) LookupComponent(partNumber string) (*models.ComponentLookupResponse, bool) {
	part, ok := s.components.Find(partNumber)
	if !ok {
		return nil, false
	}
	return &models.ComponentLookupResponse{
		PartNumber:   strings.ToUpper(strings.TrimSpace(partNumber)),
		Manufacturer: part.Manufacturer,
		Function:     part.Function,
		Voltage:      part.Voltage,
		Current:      part.Current,
		Value:        part.Value,
		Tolerance:    part.Tolerance,
		Package:      part.Package,
	}, true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
