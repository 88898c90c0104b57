package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSquashedSubstring(t *testing.T) {
	c := Default()

	entry, ok := c.Match("IPRating verification completed")
	require.True(t, ok)
	assert.Equal(t, "IP Rating", entry.Name)
}

func TestMatchPlainPhrase(t *testing.T) {
	c := Default()

	entry, ok := c.Match("the thermal runaway test was executed")
	require.True(t, ok)
	assert.Equal(t, "Thermal Runaway Test", entry.Name)
}

func TestMatchTrailingTestWord(t *testing.T) {
	c := Default()

	entry, ok := c.Match("Short Circuit Test")
	require.True(t, ok)
	assert.Equal(t, "Short Circuit Protection", entry.Name)
}

func TestMatchNone(t *testing.T) {
	c := Default()

	_, ok := c.Match("Ambient humidity was 45%")
	assert.False(t, ok)
}

func TestMatchFirstEntryWins(t *testing.T) {
	c := New([]Entry{
		{Name: "Braking", Standard: "STD-1"},
		{Name: "Braking Performance", Standard: "STD-2"},
	})

	entry, ok := c.Match("Braking Performance")
	require.True(t, ok)
	assert.Equal(t, "Braking", entry.Name)
}

func TestStandardLookup(t *testing.T) {
	c := Default()

	assert.Equal(t, "ASTM B117", c.Standard("Salt Spray Test"))
	assert.Equal(t, "N/A", c.Standard("Unknown Test"))
}

func TestDefaultCatalogOrderStable(t *testing.T) {
	entries := Default().Entries()

	require.Equal(t, 16, len(entries))
	assert.Equal(t, "IP Rating", entries[0].Name)
	assert.Equal(t, "Dielectric Withstand (Hipot) Test", entries[15].Name)
}

func TestTestCaseKBAlias(t *testing.T) {
	kb := DefaultTestCaseKB()

	direct := kb.MatchAll("ip rating")
	aliased := kb.MatchAll("ip rating test")

	require.NotEmpty(t, direct)
	require.NotEmpty(t, aliased)
	// The alias entry matches alongside the base entry, so "ip rating
	// test" yields both.
	assert.Len(t, direct, 2)
	assert.Len(t, aliased, 2)
	assert.Equal(t, direct[0].Requirement, aliased[0].Requirement)
}

func TestTestCaseKBNoMatch(t *testing.T) {
	kb := DefaultTestCaseKB()

	assert.Empty(t, kb.MatchAll("hydrostatic crush"))
}

func TestComponentKBFindSubstring(t *testing.T) {
	kb := DefaultComponentKB()

	part, ok := kb.Find("  BQ76952PFBR ")
	require.True(t, ok)
	assert.Equal(t, "Texas Instruments", part.Manufacturer)

	_, ok = kb.Find("stm32f103")
	assert.False(t, ok)
}
