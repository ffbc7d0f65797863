// Package phone validates candidate phone numbers against per-country
// digit-count and prefix patterns before any vendor is contacted.
package phone

import (
	"regexp"
	"strings"
)

// Pattern describes the accepted shape of a national number in E.164 digits
// (country calling code included, no plus sign).
type Pattern struct {
	CallingCode string
	// Lengths are the accepted total digit counts including the calling code.
	Lengths []int
	// Prefixes are accepted digit sequences immediately after the calling
	// code. Empty means any.
	Prefixes []string
}

var patterns = map[string]Pattern{
	"NG": {CallingCode: "234", Lengths: []int{13}, Prefixes: []string{"70", "80", "81", "90", "91", "12"}},
	"GH": {CallingCode: "233", Lengths: []int{12}, Prefixes: []string{"20", "23", "24", "26", "27", "28", "50", "54", "55", "59"}},
	"KE": {CallingCode: "254", Lengths: []int{12}, Prefixes: []string{"7", "1"}},
	"ZA": {CallingCode: "27", Lengths: []int{11}, Prefixes: []string{"6", "7", "8"}},
	"GB": {CallingCode: "44", Lengths: []int{12}, Prefixes: []string{"7"}},
	"US": {CallingCode: "1", Lengths: []int{11}},
}

var nonDigit = regexp.MustCompile(`\D`)

// Normalize strips everything but digits.
func Normalize(raw string) string {
	return nonDigit.ReplaceAllString(raw, "")
}

// Valid reports whether the number matches the country's pattern. Unknown
// countries accept any 8-15 digit number (the E.164 envelope).
func Valid(raw, country string) bool {
	digits := Normalize(raw)
	if digits == "" {
		return false
	}

	p, ok := patterns[country]
	if !ok {
		return len(digits) >= 8 && len(digits) <= 15
	}

	if !strings.HasPrefix(digits, p.CallingCode) {
		return false
	}

	lengthOK := false
	for _, l := range p.Lengths {
		if len(digits) == l {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return false
	}

	if len(p.Prefixes) == 0 {
		return true
	}
	national := digits[len(p.CallingCode):]
	for _, prefix := range p.Prefixes {
		if strings.HasPrefix(national, prefix) {
			return true
		}
	}
	return false
}

// CallingCode returns the country's calling code, or empty when unknown.
func CallingCode(country string) string {
	return patterns[country].CallingCode
}
