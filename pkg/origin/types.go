package origin

import (
	"log/slog"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/signals"
)

// UnknownCountry is the sentinel returned when no layer produced evidence.
const UnknownCountry = "UNKNOWN"

// lowConfidenceThreshold marks results worth a warning. The result is still
// returned as the best guess; callers decide what to do with the caveat.
const lowConfidenceThreshold = 0.6

const (
	diversityBonusStep = 0.05
	diversityBonusCap  = 0.20
)

// methodWeights fixes each method's share of the final score. The weights
// sum to 1.0 across the six methods so that a full-confidence signal from
// every layer lands near 1.0 before the diversity bonus.
var methodWeights = map[signals.Method]float64{
	signals.MethodDeclaredRegion: 0.30,
	signals.MethodPhonePattern:   0.25,
	signals.MethodBioNickname:    0.20,
	signals.MethodDeviceLanguage: 0.10,
	signals.MethodVideoMetadata:  0.10,
	signals.MethodPostingTime:    0.05,
}

// methodOrder is the canonical ordering for the Methods list in a Result,
// most trusted first.
var methodOrder = []signals.Method{
	signals.MethodDeclaredRegion,
	signals.MethodPhonePattern,
	signals.MethodBioNickname,
	signals.MethodDeviceLanguage,
	signals.MethodVideoMetadata,
	signals.MethodPostingTime,
}

// Result is the outcome of one detection call. Country is always populated,
// UnknownCountry included; a low-confidence classification carries a
// non-empty Warning but is never rejected.
type Result struct {
	Country        string           `json:"country"`
	CountryName    string           `json:"country_name"`
	Confidence     float64          `json:"confidence"`
	Signals        []signals.Signal `json:"signals,omitempty"`
	Methods        []signals.Method `json:"methods,omitempty"`
	MethodCount    int              `json:"method_count"`
	DiversityBonus float64          `json:"diversity_bonus"`
	Warning        string           `json:"warning,omitempty"`
}

// Option configures a Detector.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	catalog *catalog.Catalog
}

// WithLogger sets the logger used for per-signal debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCatalog substitutes the pattern catalog, mainly for tests that need
// a trimmed table set.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(o *options) { o.catalog = cat }
}
