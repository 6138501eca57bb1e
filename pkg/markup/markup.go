// Package markup provides the last-resort region detector used when no
// structured profile fields are available: only raw page markup and a
// username. It runs a fixed strategy ladder (declared metadata, language
// inference, CDN hostname analysis) and degrades to a typed Unknown result
// rather than failing.
package markup

import (
	"regexp"
	"strings"
)

// Method tags the strategy that produced a RegionResult.
type Method string

// Detection strategies in priority order, plus the two collaborator-fault
// terminals.
const (
	MethodMetadata          Method = "METADATA"
	MethodLanguageInference Method = "LANGUAGE_INFERENCE"
	MethodCDNAnalysis       Method = "CDN_ANALYSIS"
	MethodFallback          Method = "FALLBACK"
	MethodFailedFetch       Method = "FAILED_FETCH"
	MethodError             Method = "ERROR"
)

// UnknownRegion is the region value for all unsuccessful results.
const UnknownRegion = "Unknown"

// Per-strategy confidences. Declared metadata is near-certain; CDN hosting
// region only loosely tracks the account's true country.
const (
	metadataConfidence = 0.95
	languageConfidence = 0.85
	cdnConfidence      = 0.75
)

// RegionResult is the outcome of one region lookup. Success is false only
// for the Unknown terminals; a low-confidence CDN hit is still a success.
type RegionResult struct {
	Region     string  `json:"region"`
	Confidence float64 `json:"confidence"`
	Method     Method  `json:"method"`
	Success    bool    `json:"success"`
}

// FailedFetch is the result the calling layer must report when the markup
// fetch collaborator failed. Fetch errors never propagate into detection.
func FailedFetch() RegionResult {
	return RegionResult{Region: UnknownRegion, Method: MethodFailedFetch}
}

// Errored is the result for parse or other collaborator faults.
func Errored() RegionResult {
	return RegionResult{Region: UnknownRegion, Method: MethodError}
}

// languageRegions maps a device language to a region for the inference
// strategy. Coarser than the signal-layer table: this path runs without a
// parsed profile, so it only needs a plausible hosting region.
var languageRegions = map[string]string{
	"id":  "ID",
	"ms":  "MY",
	"th":  "TH",
	"vi":  "VN",
	"fil": "PH",
	"tl":  "PH",
	"ja":  "JP",
	"ko":  "KR",
	"zh":  "CN",
	"hi":  "IN",
	"ar":  "SA",
	"es":  "MX",
	"pt":  "BR",
	"ru":  "RU",
	"tr":  "TR",
	"de":  "DE",
	"fr":  "FR",
	"en":  "US",
}

// DetectRegion resolves a hosting region from whatever partial evidence is
// on hand, trying strategies in decreasing trust order: a 2-letter region
// code from page metadata, then the device language, then CDN hostnames in
// the raw markup. All strategies exhausted yields the Unknown terminal.
func DetectRegion(rawMarkup, knownRegion, knownLanguage string) RegionResult {
	if code := strings.TrimSpace(knownRegion); len(code) == 2 {
		return RegionResult{
			Region:     strings.ToUpper(code),
			Confidence: metadataConfidence,
			Method:     MethodMetadata,
			Success:    true,
		}
	}

	if lang := strings.ToLower(strings.TrimSpace(knownLanguage)); lang != "" {
		primary, _, _ := strings.Cut(lang, "-")
		if region, ok := languageRegions[primary]; ok {
			return RegionResult{
				Region:     region,
				Confidence: languageConfidence,
				Method:     MethodLanguageInference,
				Success:    true,
			}
		}
	}

	if region, ok := AnalyzeCDNHostnames(rawMarkup); ok {
		return RegionResult{
			Region:     region,
			Confidence: cdnConfidence,
			Method:     MethodCDNAnalysis,
			Success:    true,
		}
	}

	return RegionResult{Region: UnknownRegion, Method: MethodFallback}
}

// cdnRegionRules are explicit hostname indicators checked before the
// generic suffix pattern. Order matters: first hit wins.
var cdnRegionRules = []struct {
	substr string
	region string
}{
	{"tiktokcdn-eu", "EU"}, // European CDN cluster
	{"ttwstatic-eu", "EU"},
	{"sg-hub", "SG"}, // Singapore hub serves most of SEA
	{"tiktokv-sg", "SG"},
	{"use-hub", "US"}, // US-East hub
	{"useast", "US"},
}

// cdnSuffixPattern is the catch-all for regional CDN hostnames of the form
// provider-xx: the two-letter suffix is taken as the region code.
var cdnSuffixPattern = regexp.MustCompile(`tiktokcdn-([a-z]{2})\.`)

// AnalyzeCDNHostnames scans raw page markup for CDN hostname shapes that
// reveal which regional cluster serves the profile. This is a hosting
// region, not necessarily the account's true country, hence the reduced
// confidence on this path.
func AnalyzeCDNHostnames(rawMarkup string) (region string, ok bool) {
	if rawMarkup == "" {
		return "", false
	}
	lower := strings.ToLower(rawMarkup)
	for _, rule := range cdnRegionRules {
		if strings.Contains(lower, rule.substr) {
			return rule.region, true
		}
	}
	if m := cdnSuffixPattern.FindStringSubmatch(lower); m != nil {
		return strings.ToUpper(m[1]), true
	}
	return "", false
}
