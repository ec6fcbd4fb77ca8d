package identity

import "regexp"

var reGTIN = regexp.MustCompile(`^(\d{8}|\d{12}|\d{13}|\d{14})$`)

// ValidGTIN reports whether code is a well-formed GTIN-8/12/13/14 with a
// correct mod-10 check digit. Anything that is not exactly 8, 12, 13 or 14
// decimal digits is rejected outright.
func ValidGTIN(code string) bool {
	if !reGTIN.MatchString(code) {
		return false
	}
	check := int(code[len(code)-1] - '0')
	sum, w := 0, 3
	// alternating 3,1,3,... weights from the rightmost non-check digit inward
	for i := len(code) - 2; i >= 0; i-- {
		sum += int(code[i]-'0') * w
		if w == 3 {
			w = 1
		} else {
			w = 3
		}
	}
	return (10-sum%10)%10 == check
}
