package models

import (
	"strings"
	"testing"
)

// Test accepted full name shapes
func TestValidateFullNameAccepted(t *testing.T) {
	accepted := []string{
		"Cher",                // single name
		"John Smith",          // first last
		"John Michael Smith",  // three tokens
		"Smith, John",         // last, first
		"Smith, John Michael", // last, first middle
		"John OBrien",
		"John O'Brien",       // apostrophe surname
		"John O'Brien-Smith", // apostrophe plus hyphenated surname
		"O'Brien, John M.",   // apostrophe last, first initial
		"John M. Smith",      // middle initial
		"John M. O'Brien",    // middle initial, apostrophe surname
		"Smith, John M.",     // last, first middle-initial
	}

	for _, name := range accepted {
		if !ValidateFullName(name) {
			t.Errorf("Expected name %q to be accepted", name)
		}
	}
}

// Test rejected full names
func TestValidateFullNameRejected(t *testing.T) {
	rejected := []string{
		"",                           // empty
		strings.Repeat("J", 36),      // over the length limit
		"John Ronald Reuel Tolkien",  // four tokens
		"John5 Smith",                // digits
		"John  Smith",                // double space
		"John\nSmith",                // embedded newline
		"John Smith\n",               // trailing newline
		"O'Brien",                    // bare apostrophe surname
		"John-Smith",                 // hyphen without apostrophe form
		"Smith; John",                // wrong separator
		"John, ",                     // dangling comma form
		"<script>alert(1)</script>",  // markup
		"select * from users; DROP",  // injection attempt
	}

	for _, name := range rejected {
		if ValidateFullName(name) {
			t.Errorf("Expected name %q to be rejected", name)
		}
	}
}

// A 35 character name is accepted; 36 characters is not
func TestValidateFullNameLengthBoundary(t *testing.T) {
	atLimit := strings.Repeat("J", 35)
	if !ValidateFullName(atLimit) {
		t.Errorf("Expected 35 character name to be accepted")
	}

	overLimit := strings.Repeat("J", 36)
	if ValidateFullName(overLimit) {
		t.Errorf("Expected 36 character name to be rejected")
	}
}

// Test accepted phone number formats
func TestValidatePhoneNumberAccepted(t *testing.T) {
	accepted := []string{
		"12345",             // short local number
		"123-1234",          // hyphenated local
		"12345.12345",       // dotted groups
		"(703)111-2121",     // parenthesized area code
		"1(703)123-1234",    // country digit plus area code
		"+1(703)111-2121",   // international prefix
		"+32 (21) 212-2324", // two-digit area code
		"011 701 111 1234",  // dialing prefix with spaces
		"+1 555-1234",       // country code, space, grouped digits
	}

	for _, number := range accepted {
		if !ValidatePhoneNumber(number) {
			t.Errorf("Expected number %q to be accepted", number)
		}
	}
}

// Test rejected phone numbers
func TestValidatePhoneNumberRejected(t *testing.T) {
	rejected := []string{
		"",                    // empty
		"123",                 // too few digits
		"123456",              // six leading digits
		"123456789",           // long raw digit run
		"7031112121",          // unformatted ten digits
		"+1234 (703) 111-2121", // country code too long
		"dog",                 // no digits
		"555-GET-FOOD",        // letters in groups
		"12345\n",             // trailing newline
		"<script>alert(1)</script>",
	}

	for _, number := range rejected {
		if ValidatePhoneNumber(number) {
			t.Errorf("Expected number %q to be rejected", number)
		}
	}
}

// Numbers with a five-digit leading run pass the guard; six digits fail it
// regardless of what follows
func TestValidatePhoneNumberLeadingDigitBoundary(t *testing.T) {
	if !ValidatePhoneNumber("12345") {
		t.Errorf("Expected five leading digits to be accepted")
	}

	if ValidatePhoneNumber("123456") {
		t.Errorf("Expected six leading digits to be rejected")
	}

	if ValidatePhoneNumber("123456-1234") {
		t.Errorf("Expected six leading digits to be rejected despite later structure")
	}
}
