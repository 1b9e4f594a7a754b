package models

import (
	"regexp"
	"strings"
)

// maxFullNameLength bounds accepted names; longer input never matches.
const maxFullNameLength = 35

// nameShapes is the fixed set of accepted name forms. A name must match one
// of these in full; this is not a general name grammar.
var nameShapes = []string{
	`([A-Za-z]+\s?){1,3}`,                          // plain name, up to three words
	`[A-Za-z]+,\s[A-Za-z]+[\sA-Za-z]*`,             // Last, First [Middle...]
	`([A-Za-z]+\s)[A-Za-z]'[A-Za-z]+(-[A-Za-z]+)?`, // First O'Last or First O'Last-Other
	`[A-Za-z]'[A-Za-z]+,\s[A-Za-z]+\s[A-Z]\.`,      // O'Last, First M.
	`[A-Za-z]+\s[A-Za-z]\.\s[A-Za-z]+`,             // First M. Last
	`[A-Za-z]+\s[A-Za-z]\.\s[A-Z]'[A-Za-z]+`,       // First M. O'Last
	`[A-Za-z]+,\s[A-Za-z]+\s[A-Z]\.`,               // Last, First M.
}

var fullNamePattern = regexp.MustCompile(`^(` + strings.Join(nameShapes, "|") + `)$`)

// leadingDigitRun guards against unformatted long digit runs: any number
// starting with 6 or more consecutive digits is rejected outright.
var leadingDigitRun = regexp.MustCompile(`^\d{6,}`)

// phoneNumberPattern accepts an optional international prefix, an optional
// area-code group, then grouped digits separated by spaces, dots, or hyphens.
var phoneNumberPattern = regexp.MustCompile(
	`^\+?\d{0,3}\s?` +
		`(\d\s|\(\d{2}\)\s|\(\d{3}\))?` +
		`[.-]?\d{2,5}[\s.-]?\d{2,5}[\s.-]?\d{1,9}$`)

// ValidateFullName reports whether name is between 1 and 35 characters and
// matches one of the accepted name shapes. Names containing a newline never
// match: the `\s` in the shapes would admit one, so it is excluded here.
func ValidateFullName(name string) bool {
	if len(name) == 0 || len(name) > maxFullNameLength {
		return false
	}
	if strings.ContainsRune(name, '\n') {
		return false
	}
	return fullNamePattern.MatchString(name)
}

// ValidatePhoneNumber reports whether number is an acceptably formatted
// phone number.
func ValidatePhoneNumber(number string) bool {
	if leadingDigitRun.MatchString(number) {
		return false
	}
	return phoneNumberPattern.MatchString(number)
}
