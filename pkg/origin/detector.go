// Package origin infers an account's country of origin by fusing weighted
// evidence from six independent detection methods: declared region, bio and
// nickname text, embedded phone numbers, device language, video metadata,
// and posting-time distributions.
package origin

import (
	"log/slog"
	"sync"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
	"github.com/codeGROOVE-dev/tokorigin/pkg/signals"
)

// Detector runs the six signal extractors and aggregates their evidence.
// It is pure over its inputs and the immutable catalog: no I/O, no clock,
// safe for concurrent use, and identical inputs always yield identical
// results.
type Detector struct {
	logger  *slog.Logger
	catalog *catalog.Catalog
}

// New creates a Detector with the default catalog and logger.
func New(opts ...Option) *Detector {
	return NewWithLogger(slog.Default(), opts...)
}

// NewWithLogger creates a Detector with a custom logger.
func NewWithLogger(logger *slog.Logger, opts ...Option) *Detector {
	o := &options{logger: logger}
	for _, opt := range opts {
		opt(o)
	}
	if o.catalog == nil {
		o.catalog = catalog.New()
	}
	return &Detector{logger: o.logger, catalog: o.catalog}
}

// extractor adapts one signal layer to a common fan-out shape.
type extractor struct {
	name string
	run  func() []signals.Signal
}

// DetectCountry runs all six extractors and returns the fused
// classification. Extractors run concurrently, each writing only its own
// result slot; the merge happens in fixed layer order after every extractor
// has finished, so no partial result is ever aggregated and output order is
// deterministic.
func (d *Detector) DetectCountry(p profile.Profile, videos []profile.Video) Result {
	cat := d.catalog
	extractors := []extractor{
		{"declared_region", func() []signals.Signal { return signals.FromDeclaredRegion(p, cat) }},
		{"bio_nickname", func() []signals.Signal { return signals.FromBioText(p, cat) }},
		{"phone_pattern", func() []signals.Signal { return signals.FromPhonePattern(p, cat) }},
		{"device_language", func() []signals.Signal { return signals.FromDeviceLanguage(p, cat) }},
		{"video_metadata", func() []signals.Signal { return signals.FromVideoMetadata(videos, cat) }},
		{"posting_time", func() []signals.Signal { return signals.FromPostingTimes(videos, cat) }},
	}

	perLayer := make([][]signals.Signal, len(extractors))
	var wg sync.WaitGroup
	for i, ex := range extractors {
		wg.Add(1)
		go func(slot int, ex extractor) {
			defer wg.Done()
			perLayer[slot] = ex.run()
		}(i, ex)
	}
	wg.Wait()

	var all []signals.Signal
	for i, layer := range perLayer {
		if len(layer) > 0 {
			d.logger.Debug("extractor emitted signals",
				"extractor", extractors[i].name,
				"username", p.Username,
				"count", len(layer))
		}
		all = append(all, layer...)
	}

	result := Aggregate(all)
	d.logger.Info("country detection complete",
		"username", p.Username,
		"country", result.Country,
		"confidence", result.Confidence,
		"methods", result.MethodCount)
	return result
}
