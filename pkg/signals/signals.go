// Package signals implements the six independent country-evidence
// extractors. Each extractor is a pure function over a profile (plus
// optional videos) and the read-only catalog: no I/O, no clock, no shared
// state, so callers may run them concurrently and merge the slices they
// return.
package signals

// Method identifies which detection strategy produced a signal.
type Method string

// The six detection methods, ordered from most to least trusted.
const (
	MethodDeclaredRegion Method = "DECLARED_REGION"
	MethodPhonePattern   Method = "PHONE_PATTERN"
	MethodBioNickname    Method = "BIO_NICKNAME"
	MethodDeviceLanguage Method = "DEVICE_LANGUAGE"
	MethodVideoMetadata  Method = "VIDEO_METADATA"
	MethodPostingTime    Method = "POSTING_TIME"
)

// Signal is one piece of evidence that an account belongs to a country.
// Signals are immutable once emitted; the aggregator only reads them.
type Signal struct {
	Country    string  `json:"country"`
	Confidence float64 `json:"confidence"` // clamped to [0,1] at emission
	Method     Method  `json:"method"`
	Evidence   string  `json:"evidence"`
}

// clamp bounds a confidence to [0,1]. Pattern tables should already respect
// the bound, but emission is the contract point, so it is enforced here.
func clamp(conf float64) float64 {
	switch {
	case conf < 0:
		return 0
	case conf > 1:
		return 1
	default:
		return conf
	}
}
