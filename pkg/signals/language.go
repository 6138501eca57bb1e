package signals

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

// regionSubtagConfidence applies when a device language tag carries an
// explicit region, e.g. "pt-BR". Stronger than a bare language but still a
// device setting, not a declaration.
const regionSubtagConfidence = 0.7

// FromDeviceLanguage infers countries from the device language tag. Two
// checks run independently and both may fire, so this layer emits up to two
// signals: one from a region subtag ("pt-BR" names BR directly) and one
// from the primary language's policy default (pt leans BR, ar leans SA).
func FromDeviceLanguage(p profile.Profile, cat *catalog.Catalog) []Signal {
	tag := strings.TrimSpace(p.Language)
	if tag == "" {
		return nil
	}

	var out []Signal
	primary, region, hasRegion := strings.Cut(tag, "-")
	if hasRegion {
		code := strings.ToUpper(region)
		if cat.IsKnownCountry(code) {
			out = append(out, Signal{
				Country:    code,
				Confidence: regionSubtagConfidence,
				Method:     MethodDeviceLanguage,
				Evidence:   fmt.Sprintf("device language %q has region subtag %s", tag, code),
			})
		}
	}

	if hint, ok := cat.DeviceLanguages[strings.ToLower(primary)]; ok {
		out = append(out, Signal{
			Country:    hint.Country,
			Confidence: clamp(hint.Confidence),
			Method:     MethodDeviceLanguage,
			Evidence:   fmt.Sprintf("device language %q suggests %s", primary, hint.Country),
		})
	}
	return out
}
