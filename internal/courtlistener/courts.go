// ABOUTME: DC court identifiers, nature-of-suit codes, and the judge roster
// ABOUTME: Mirrors the dcd.uscourts.gov judge directory as of January 2025
package courtlistener

import "strings"

// DC court identifiers as used by CourtListener.
const (
	DCDistrictCourtID = "dcd"  // U.S. District Court for the District of Columbia
	DCCircuitCourtID  = "cadc" // U.S. Court of Appeals for the DC Circuit
)

// ImmigrationNOSCodes are the immigration-related nature-of-suit codes.
var ImmigrationNOSCodes = []string{"462", "463", "465"}

// Judge is one entry in the DC District Court judge directory.
type Judge struct {
	Initials string
	Name     string
	Senior   bool
}

// DCJudges is the DC District Court judge roster, used for judge-name
// filters and case-number suffix checks.
var DCJudges = []Judge{
	{Initials: "JEB", Name: "James E. Boasberg"},
	{Initials: "RC", Name: "Rudolph Contreras"},
	{Initials: "CRC", Name: "Christopher R. Cooper"},
	{Initials: "TSC", Name: "Tanya S. Chutkan"},
	{Initials: "RDM", Name: "Randolph D. Moss"},
	{Initials: "APM", Name: "Amit P. Mehta"},
	{Initials: "TJK", Name: "Timothy J. Kelly"},
	{Initials: "TNM", Name: "Trevor N. McFadden"},
	{Initials: "DLF", Name: "Dabney L. Friedrich"},
	{Initials: "CJN", Name: "Carl J. Nichols"},
	{Initials: "JMC", Name: "Jia M. Cobb"},
	{Initials: "ACR", Name: "Ana C. Reyes"},
	{Initials: "LLA", Name: "Loren L. AliKhan"},
	{Initials: "AHA", Name: "Amir H. Ali"},
	{Initials: "SLS", Name: "Sparkle L. Sooknanan"},
	{Initials: "RCL", Name: "Royce C. Lamberth", Senior: true},
	{Initials: "PLF", Name: "Paul L. Friedman", Senior: true},
	{Initials: "EGS", Name: "Emmet G. Sullivan", Senior: true},
	{Initials: "RBW", Name: "Reggie B. Walton", Senior: true},
	{Initials: "JDB", Name: "John D. Bates", Senior: true},
	{Initials: "RJL", Name: "Richard J. Leon", Senior: true},
	{Initials: "CKK", Name: "Colleen Kollar-Kotelly", Senior: true},
	{Initials: "ABJ", Name: "Amy Berman Jackson", Senior: true},
	{Initials: "BAH", Name: "Beryl A. Howell", Senior: true},
}

// LookupJudge resolves a roster entry by initials (as used in DC case
// number suffixes) or by a case-insensitive name fragment.
func LookupJudge(query string) (Judge, bool) {
	q := strings.TrimSpace(query)
	for _, j := range DCJudges {
		if strings.EqualFold(j.Initials, q) {
			return j, true
		}
	}
	lower := strings.ToLower(q)
	for _, j := range DCJudges {
		if strings.Contains(strings.ToLower(j.Name), lower) {
			return j, true
		}
	}
	return Judge{}, false
}

// IsImmigrationNOS reports whether a docket's nature-of-suit value is
// an immigration code. PACER prefixes the text with the numeric code.
func IsImmigrationNOS(natureOfSuit string) bool {
	for _, code := range ImmigrationNOSCodes {
		if strings.HasPrefix(natureOfSuit, code) {
			return true
		}
	}
	return false
}
