package compliance

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/evcomply/compliance-checker-api/internal/catalog"
	"github.com/evcomply/compliance-checker-api/internal/models"
)

func newTestService() *Service {
	return NewService(catalog.DefaultTestCaseKB(), catalog.DefaultComponentKB())
}

func TestVerifyReport(t *testing.T) {
	records := []models.TestRecord{
		{Name: "IP Rating", Result: "PASS"},
		{Name: "Salt Spray Test", Result: "FAIL"},
		{Name: "EMC Test", Result: "N/A"},
		{Name: "Vibration Test", Result: "fail"},
	}

	issues := newTestService().VerifyReport(records)

	require.Len(t, issues, 2)
	assert.Equal(t, "Salt Spray Test", issues[0].TestName)
	assert.Equal(t, "Test Failed: Salt Spray Test", issues[0].Message)
	assert.Equal(t, "Vibration Test", issues[1].TestName)
}

func TestVerifyReportCompliant(t *testing.T) {
	records := []models.TestRecord{
		{Name: "IP Rating", Result: "PASS"},
	}

	issues := newTestService().VerifyReport(records)

	assert.Empty(t, issues)
}

func TestGenerateRequirementsKnownTest(t *testing.T) {
	reqs := newTestService().GenerateRequirements([]string{"frame fatigue test"})

	// Base entry and its " test" alias both match.
	require.Len(t, reqs, 2)
	assert.Equal(t, "REQ_001", reqs[0].RequirementID)
	assert.Equal(t, "Frame resists stress cycles as per ISO 4210.", reqs[0].Description)
	assert.Equal(t, "Fatigue Rig", reqs[0].Equipment)
	assert.Empty(t, reqs[0].ExternalSearch)
}

func TestGenerateRequirementsUnknownTest(t *testing.T) {
	reqs := newTestService().GenerateRequirements([]string{"hydrostatic crush test"})

	require.Len(t, reqs, 1)
	assert.Equal(t, "hydrostatic crush test", reqs[0].TestCase)
	assert.Equal(t, "REQ_001", reqs[0].RequirementID)
	assert.Equal(t, genericRequirement, reqs[0].Description)
	assert.Equal(t, "hydrostatic crush test", reqs[0].ExternalSearch)
}

func TestGenerateRequirementsNumbering(t *testing.T) {
	reqs := newTestService().GenerateRequirements([]string{"braking", "unknown thing", "emc"})

	require.NotEmpty(t, reqs)
	// IDs follow the input line index, not the output position.
	assert.Equal(t, "REQ_001", reqs[0].RequirementID)
	last := reqs[len(reqs)-1]
	assert.Equal(t, "REQ_003", last.RequirementID)
}

func TestGenerateRequirementsSkipsBlankLines(t *testing.T) {
	reqs := newTestService().GenerateRequirements([]string{"", "  ", "braking"})

	require.NotEmpty(t, reqs)
	for _, r := range reqs {
		assert.NotEmpty(t, r.TestCase)
	}
}

func TestLookupComponent(t *testing.T) {
	info, ok := newTestService().LookupComponent("irfb4110pbf")

	require.True(t, ok)
	assert.Equal(t, "IRFB4110PBF", info.PartNumber)
	assert.Equal(t, "Infineon", info.Manufacturer)
	assert.Equal(t, "100V", info.Voltage)
	assert.Equal(t, "180A", info.Current)
}

func TestLookupComponentNotFound(t *testing.T) {
	_, ok := newTestService().LookupComponent("atmega328p")

	assert.False(t, ok)
}

func TestExportRequirementsXLSX(t *testing.T) {
	svc := newTestService()
	reqs := svc.GenerateRequirements([]string{"salt spray"})
	require.NotEmpty(t, reqs)

	data, err := svc.ExportRequirementsXLSX(reqs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Requirements")
	require.NoError(t, err)
	require.Len(t, rows, len(reqs)+1)
	assert.Equal(t, []string{"Test Case", "Requirement ID", "Requirement Description", "Required Equipment"}, rows[0])
	assert.Equal(t, "Salt Spray", rows[1][0])
	assert.Equal(t, "Salt Spray Chamber", rows[1][3])
}
