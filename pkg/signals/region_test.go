package signals

import (
	"testing"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

func TestFromDeclaredRegion(t *testing.T) {
	cat := catalog.New()

	t.Run("absent region emits nothing", func(t *testing.T) {
		sigs := FromDeclaredRegion(profile.Profile{Username: "a"}, cat)
		if len(sigs) != 0 {
			t.Errorf("expected no signals, got %d", len(sigs))
		}
	})

	t.Run("undefined sentinel emits nothing", func(t *testing.T) {
		sigs := FromDeclaredRegion(profile.Profile{Username: "a", Region: "undefined"}, cat)
		if len(sigs) != 0 {
			t.Errorf("expected no signals, got %d", len(sigs))
		}
	})

	t.Run("unknown code is dropped", func(t *testing.T) {
		sigs := FromDeclaredRegion(profile.Profile{Username: "a", Region: "XZ"}, cat)
		if len(sigs) != 0 {
			t.Errorf("expected unknown code to be dropped, got %d signals", len(sigs))
		}
	})

	t.Run("known region at full confidence", func(t *testing.T) {
		sigs := FromDeclaredRegion(profile.Profile{Username: "a", Region: "my"}, cat)
		if len(sigs) != 1 {
			t.Fatalf("expected 1 signal, got %d", len(sigs))
		}
		s := sigs[0]
		if s.Country != "MY" {
			t.Errorf("country = %q, want MY (uppercased)", s.Country)
		}
		if s.Confidence != 1.0 {
			t.Errorf("confidence = %v, want exactly 1.0", s.Confidence)
		}
		if s.Method != MethodDeclaredRegion {
			t.Errorf("method = %q, want %q", s.Method, MethodDeclaredRegion)
		}
		if s.Evidence == "" {
			t.Error("evidence text should cite the code")
		}
	})
}
