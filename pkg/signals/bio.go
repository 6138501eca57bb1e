package signals

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

// FromBioText scans the free-text fields (bio, signature, nickname) for
// language/slang patterns and city names. A single blob can legitimately
// trigger many signals, multiple languages and multiple cities included;
// all of them are kept and left for the aggregator to weigh.
func FromBioText(p profile.Profile, cat *catalog.Catalog) []Signal {
	blob := strings.ToLower(strings.TrimSpace(
		strings.Join([]string{p.Bio, p.Signature, p.Nickname}, " ")))
	if blob == "" {
		return nil
	}

	var out []Signal
	for i := range cat.Languages {
		lp := &cat.Languages[i]
		if !lp.Pattern.MatchString(blob) {
			continue
		}
		for _, country := range lp.Countries {
			out = append(out, Signal{
				Country:    country,
				Confidence: clamp(lp.Confidence),
				Method:     MethodBioNickname,
				Evidence:   fmt.Sprintf("bio text matches %s", lp.Description),
			})
		}
	}

	for i := range cat.Locations {
		loc := &cat.Locations[i]
		if !loc.MatchesWord(blob) {
			continue
		}
		out = append(out, Signal{
			Country:    loc.Country,
			Confidence: clamp(loc.Confidence),
			Method:     MethodBioNickname,
			Evidence:   fmt.Sprintf("bio mentions city %q", loc.City),
		})
	}
	return out
}
