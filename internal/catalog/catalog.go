package catalog

import "strings"

// Entry pairs a recognized test name with its governing standard.
type Entry struct {
	Name     string
	Standard string
}

// Catalog is the ordered set of test names used for heading detection.
// Order matters: when two names could match the same line, the earlier
// entry wins, so callers must not reorder entries after construction.
type Catalog struct {
	entries []Entry
}

func New(entries []Entry) *Catalog {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Catalog{entries: copied}
}

// Default returns the built-in standards catalog for EV/e-bike
// compliance testing.
func Default() *Catalog {
	return New([]Entry{
		{"IP Rating", "IEC 60529"},
		{"Short Circuit Protection", "AIS-156 / IEC 62133"},
		{"Overcharge Protection", "AIS-156 / ISO 12405-4"},
		{"Over-discharge Protection", "AIS-156 / ISO 12405-4"},
		{"Cell Balancing", "AIS-156"},
		{"Temperature Protection", "AIS-156 / ISO 12405-4"},
		{"Communication Interface (CAN)", "ISO 11898"},
		{"Vibration Test", "IEC 60068-2-6 / AIS-048"},
		{"Thermal Runaway Test", "AIS-156 Amendment 3"},
		{"Frame Fatigue Test", "ISO 4210-6"},
		{"Braking Performance Test", "EN 15194 / ISO 4210-2"},
		{"EMC Test", "IEC 61000 / EN 15194"},
		{"Salt Spray Test", "ASTM B117"},
		{"Efficiency Test", "EN 15194"},
		{"Insulation Resistance Test", "IEC 60364-6"},
		{"Dielectric Withstand (Hipot) Test", "IEC 60335-1"},
	})
}

// Entries returns the catalog in enumeration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Standard resolves a test name to its citation, or "N/A" when the
// name is not in the catalog.
func (c *Catalog) Standard(name string) string {
	for _, e := range c.entries {
		if e.Name == name {
			return e.Standard
		}
	}
	return "N/A"
}

// Match returns the first catalog entry the line names. A line
// matches an entry when the entry's name occurs in it, either with
// all whitespace stripped or as a plain lowercase phrase. A line that
// phrases a test family with a trailing "test" word ("Short Circuit
// Test") also matches the entry that extends the remainder ("Short
// Circuit Protection"). First entry wins; there is no longest-match
// preference, so catalog order decides between overlapping names.
func (c *Catalog) Match(line string) (Entry, bool) {
	lower := strings.ToLower(line)
	squashed := stripSpace(lower)
	stem := strings.TrimSuffix(squashed, "test")
	for _, e := range c.entries {
		nameLower := strings.ToLower(e.Name)
		nameSquashed := stripSpace(nameLower)
		if strings.Contains(squashed, nameSquashed) || strings.Contains(lower, nameLower) {
			return e, true
		}
		if stem != squashed && stem != "" && strings.Contains(nameSquashed, stem) {
			return e, true
		}
	}
	return Entry{}, false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return -1
		}
		return r
	}, s)
}
