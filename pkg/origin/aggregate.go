package origin

import (
	"fmt"
	"sort"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/signals"
)

// countryEvidence accumulates everything emitted for one candidate country.
type countryEvidence struct {
	signals []signals.Signal
	methods map[signals.Method]bool
	score   float64
}

// Aggregate fuses a signal list into a single classification. It is a total
// function: any well-typed input yields a Result, an empty input the
// UnknownCountry sentinel. Callers composing their own signal lists (rather
// than going through Detector.DetectCountry) may invoke it directly.
//
// Scoring: each signal contributes confidence times its method's fixed
// weight, duplicates from the same method all count, and countries reached
// by several independent methods earn a diversity bonus of 5% per extra
// method, capped at 20%. The final confidence is clamped to 1.0.
func Aggregate(sigs []signals.Signal) Result {
	if len(sigs) == 0 {
		return Result{
			Country:     UnknownCountry,
			CountryName: "Unknown",
			Warning:     "no usable signals: profile has no region, text, language, or video evidence",
		}
	}

	evidence := make(map[string]*countryEvidence)
	for _, s := range sigs {
		ev := evidence[s.Country]
		if ev == nil {
			ev = &countryEvidence{methods: make(map[signals.Method]bool)}
			evidence[s.Country] = ev
		}
		ev.signals = append(ev.signals, s)
		ev.methods[s.Method] = true
		ev.score += s.Confidence * methodWeights[s.Method]
	}

	type ranked struct {
		country    string
		confidence float64
		bonus      float64
	}
	rankings := make([]ranked, 0, len(evidence))
	for country, ev := range evidence {
		bonus := diversityBonus(len(ev.methods))
		confidence := ev.score * (1 + bonus)
		if confidence > 1.0 {
			confidence = 1.0
		}
		rankings = append(rankings, ranked{country, confidence, bonus})
	}

	// Exact ties break alphabetically by country code. The score comparison
	// is deliberately exact: near-ties are resolved by score, and only true
	// equality falls through to the code, making the winner independent of
	// map iteration order.
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].confidence != rankings[j].confidence {
			return rankings[i].confidence > rankings[j].confidence
		}
		return rankings[i].country < rankings[j].country
	})

	winner := rankings[0]
	winnerEv := evidence[winner.country]

	result := Result{
		Country:        winner.country,
		CountryName:    catalog.DisplayName(winner.country),
		Confidence:     winner.confidence,
		Signals:        winnerEv.signals,
		Methods:        orderedMethods(winnerEv.methods),
		MethodCount:    len(winnerEv.methods),
		DiversityBonus: winner.bonus,
	}
	if result.Confidence < lowConfidenceThreshold {
		result.Warning = fmt.Sprintf(
			"low confidence (%.2f): result is a best guess from limited evidence", result.Confidence)
	}
	return result
}

// diversityBonus rewards agreement across independent methods: 5% per
// method beyond the first, capped at 20%.
func diversityBonus(methodCount int) float64 {
	if methodCount <= 1 {
		return 0
	}
	bonus := float64(methodCount-1) * diversityBonusStep
	if bonus > diversityBonusCap {
		return diversityBonusCap
	}
	return bonus
}

// orderedMethods lists the methods present in canonical trust order so that
// results serialize deterministically. Methods outside the known six (only
// possible from hand-built signal lists) are appended alphabetically.
func orderedMethods(present map[signals.Method]bool) []signals.Method {
	out := make([]signals.Method, 0, len(present))
	seen := make(map[signals.Method]bool, len(present))
	for _, m := range methodOrder {
		if present[m] {
			out = append(out, m)
			seen[m] = true
		}
	}
	var extra []signals.Method
	for m := range present {
		if !seen[m] {
			extra = append(extra, m)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
