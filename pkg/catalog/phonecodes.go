package catalog

import "regexp"

// phoneCodePatterns lists international dial codes in matching priority
// order. Longer, more specific codes come first so that "+234..." is read
// as Nigeria rather than a +2 prefix, and the one- and two-digit NANP and
// Russian codes sit last as catch-alls. The extractor stops at the first
// matching pattern, so this ordering is load-bearing.
func phoneCodePatterns() []PhoneCodePattern {
	type entry struct {
		code    string
		country string
		conf    float64
	}
	entries := []entry{
		{"+880", "BD", 0.9},
		{"+966", "SA", 0.9},
		{"+971", "AE", 0.9},
		{"+234", "NG", 0.9},
		{"+254", "KE", 0.9},
		{"+62", "ID", 0.9},
		{"+60", "MY", 0.9},
		{"+65", "SG", 0.9},
		{"+66", "TH", 0.9},
		{"+84", "VN", 0.9},
		{"+63", "PH", 0.9},
		{"+91", "IN", 0.9},
		{"+92", "PK", 0.9},
		{"+86", "CN", 0.9},
		{"+81", "JP", 0.9},
		{"+82", "KR", 0.9},
		{"+90", "TR", 0.9},
		{"+20", "EG", 0.85},
		{"+27", "ZA", 0.9},
		{"+44", "GB", 0.9},
		{"+49", "DE", 0.9},
		{"+33", "FR", 0.9},
		{"+34", "ES", 0.9},
		{"+39", "IT", 0.9},
		{"+55", "BR", 0.9},
		{"+52", "MX", 0.9},
		{"+61", "AU", 0.9},
		{"+64", "NZ", 0.9},
		{"+7", "RU", 0.75},
		{"+1", "US", 0.6}, // NANP is shared across North America
	}

	patterns := make([]PhoneCodePattern, 0, len(entries))
	for _, e := range entries {
		// Accept "+62 812...", "+62-812...", "0062812..." with at least
		// six following digits so a bare "+62" in prose does not match.
		digits := e.code[1:]
		re := regexp.MustCompile(`(?:\+|00)` + digits + `[\s.-]?\d[\d\s.-]{5,}`)
		patterns = append(patterns, PhoneCodePattern{
			Code:       e.code,
			Country:    e.country,
			Pattern:    re,
			Confidence: e.conf,
		})
	}
	return patterns
}
