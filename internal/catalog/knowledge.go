package catalog

import "strings"

// TestCase describes the requirement and equipment for a known test
// method.
type TestCase struct {
	Name        string
	Requirement string
	Equipment   []string
}

// TestCaseKB is the ordered test-method knowledge base used by
// requirement generation. Each base entry is also reachable under a
// "<name> test" alias, mirroring how lab engineers write test lists.
type TestCaseKB struct {
	cases []TestCase
}

func NewTestCaseKB(cases []TestCase) *TestCaseKB {
	expanded := make([]TestCase, 0, len(cases)*2)
	for _, tc := range cases {
		expanded = append(expanded, tc)
	}
	for _, tc := range cases {
		alias := tc
		alias.Name = tc.Name + " test"
		expanded = append(expanded, alias)
	}
	return &TestCaseKB{cases: expanded}
}

func DefaultTestCaseKB() *TestCaseKB {
	return NewTestCaseKB([]TestCase{
		{"ip rating", "Test for ingress protection against dust and water per class (e.g., IP65).", []string{"Dust Chamber", "Jet Water"}},
		{"short circuit", "Check DUT withstands short-circuit without unsafe operation.", []string{"High-Current Supply", "Oscilloscope"}},
		{"overcharge", "Verify no damage/fault with overcharge for set time.", []string{"Power Supply", "Logger"}},
		{"over-discharge", "DUT resists faults/damage under over-discharge.", []string{"Load Bank", "Logger"}},
		{"cell balancing", "Cell voltages deviation within permitted mV.", []string{"Cell Logger"}},
		{"temp protection", "Activate protection at high/low temp per spec.", []string{"Thermal Chamber", "Sensors"}},
		{"thermal runaway", "Prevent runaway propagation on cell event.", []string{"Heater", "Logger"}},
		{"frame fatigue", "Frame resists stress cycles as per ISO 4210.", []string{"Fatigue Rig"}},
		{"braking", "Braking distance per spec (wet & dry).", []string{"Brake Tester", "Speed Logger"}},
		{"efficiency", "Efficiency exceeds regulatory minimum.", []string{"Power Meter", "Dyno"}},
		{"salt spray", "Metal parts resist corrosion for standard time.", []string{"Salt Spray Chamber"}},
		{"emc", "No excessive emissions/susceptibility failures.", []string{"EMI Chamber", "EMI Receiver"}},
	})
}

// MatchAll returns every knowledge-base entry whose name, with any
// trailing " test" suffix removed, occurs in the input line.
func (kb *TestCaseKB) MatchAll(line string) []TestCase {
	lower := strings.ToLower(line)
	var matches []TestCase
	for _, tc := range kb.cases {
		key := strings.TrimSuffix(tc.Name, " test")
		if strings.Contains(lower, key) {
			matches = append(matches, tc)
		}
	}
	return matches
}

// Component holds datasheet fields for a known part number.
type Component struct {
	PartNumber   string
	Manufacturer string
	Function     string
	Voltage      string
	Current      string
	Value        string
	Tolerance    string
	Package      string
}

// ComponentKB maps lowercase part-number keys to datasheet data.
// Lookup is by substring: a full part number typed by the user matches
// the key it contains.
type ComponentKB struct {
	parts []Component
}

func NewComponentKB(parts []Component) *ComponentKB {
	copied := make([]Component, len(parts))
	copy(copied, parts)
	return &ComponentKB{parts: copied}
}

func DefaultComponentKB() *ComponentKB {
	return NewComponentKB([]Component{
		{PartNumber: "bq76952", Manufacturer: "Texas Instruments", Function: "Battery Monitor IC", Voltage: "Up to 80V", Package: "TQFP-48"},
		{PartNumber: "irfb4110", Manufacturer: "Infineon", Function: "N-MOSFET", Voltage: "100V", Current: "180A", Package: "TO-220AB"},
		{PartNumber: "1n4007", Manufacturer: "Generic", Function: "Rectifier Diode", Voltage: "1000V", Current: "1A", Package: "DO-41"},
		{PartNumber: "crcw120610k0fkea", Manufacturer: "Vishay", Function: "Thick Film Chip Resistor", Value: "10 kΩ", Tolerance: "±1%", Package: "1206"},
	})
}

// Find returns the first known part whose key is a substring of the
// queried part number (case-insensitive).
func (kb *ComponentKB) Find(partNumber string) (Component, bool) {
	query := strings.ToLower(strings.TrimSpace(partNumber))
	for _, p := range kb.parts {
		if p.PartNumber != "" && strings.Contains(query, p.PartNumber) {
			return p, true
		}
	}
	return Component{}, false
}
