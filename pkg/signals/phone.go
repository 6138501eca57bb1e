package signals

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

// FromPhonePattern looks for an international phone number in bio and
// signature text (nicknames are excluded: too short, too many false digit
// runs). Only the first matching dial-code pattern emits, and exactly one
// signal: a single pasted number can match several overlapping country
// prefixes, and emitting all of them drowns the aggregator in noise.
func FromPhonePattern(p profile.Profile, cat *catalog.Catalog) []Signal {
	blob := strings.TrimSpace(p.Bio + " " + p.Signature)
	if blob == "" {
		return nil
	}
	for i := range cat.PhoneCodes {
		pc := &cat.PhoneCodes[i]
		if !pc.Pattern.MatchString(blob) {
			continue
		}
		return []Signal{{
			Country:    pc.Country,
			Confidence: clamp(pc.Confidence),
			Method:     MethodPhonePattern,
			Evidence:   fmt.Sprintf("bio contains %s phone number", pc.Code),
		}}
	}
	return nil
}
