package signals

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

// FromDeclaredRegion trusts a first-party declared region at full
// confidence. Absent or sentinel regions emit nothing, and a code missing
// from the display-name table is dropped rather than passed through.
func FromDeclaredRegion(p profile.Profile, cat *catalog.Catalog) []Signal {
	if !p.HasRegion() {
		return nil
	}
	code := strings.ToUpper(strings.TrimSpace(p.Region))
	if !cat.IsKnownCountry(code) {
		return nil
	}
	return []Signal{{
		Country:    code,
		Confidence: 1.0,
		Method:     MethodDeclaredRegion,
		Evidence:   fmt.Sprintf("profile declares region %q", code),
	}}
}
