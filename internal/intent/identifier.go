package intent

import (
	"regexp"
	"strings"
)

// Kind distinguishes the two identifier forms users can supply when
// checking grievance status.
type Kind int

const (
	KindNone Kind = iota
	KindGrievanceID
	KindMobile
)

// Grievance IDs are a short letter prefix, optional hyphen, then an
// alphanumeric suffix that contains at least one digit. Long bare digit
// runs (11+) are also accepted so IDs without a letter prefix resolve.
var (
	grievanceExtractRe  = regexp.MustCompile(`[A-Za-z]{1,4}-?[A-Za-z0-9]{6,}`)
	grievanceValidateRe = regexp.MustCompile(`^[A-Za-z]{1,4}-?[A-Za-z0-9]{6,}$`)
	digitRunRe          = regexp.MustCompile(`\d{11,}`)
	hasDigitRe          = regexp.MustCompile(`\d`)

	mobileExtractRe  = regexp.MustCompile(`(?:\+?91[\s-]?|0)?[6-9]\d{9}`)
	mobileValidateRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// Resolve extracts a grievance identifier from free text. Grievance IDs
// take precedence over mobile numbers; a candidate counts only when the
// anchored validator accepts it too.
func Resolve(text string) (string, Kind, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", KindNone, false
	}

	for _, c := range grievanceExtractRe.FindAllString(text, -1) {
		if grievanceValidateRe.MatchString(c) && hasDigitRe.MatchString(c) {
			// A candidate that is really just a phone number falls
			// through to mobile handling below.
			if !mobileValidateRe.MatchString(stripMobilePrefix(c)) {
				return c, KindGrievanceID, true
			}
		}
	}
	if c := digitRunRe.FindString(text); c != "" {
		if !mobileValidateRe.MatchString(stripMobilePrefix(c)) {
			return c, KindGrievanceID, true
		}
	}

	if c := mobileExtractRe.FindString(text); c != "" {
		n := stripMobilePrefix(c)
		if mobileValidateRe.MatchString(n) {
			return n, KindMobile, true
		}
	}
	return "", KindNone, false
}

func stripMobilePrefix(s string) string {
	s = strings.NewReplacer(" ", "", "-", "", "+", "").Replace(s)
	if len(s) == 12 && strings.HasPrefix(s, "91") {
		return s[2:]
	}
	if len(s) == 11 && strings.HasPrefix(s, "0") {
		return s[1:]
	}
	return s
}
