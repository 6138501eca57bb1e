package signals

import (
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

// minVideosForTiming is the smallest sample for which a modal posting hour
// means anything. Below this the layer emits nothing.
const minVideosForTiming = 5

// assumedPeakLocalHour is the local hour people most commonly post at.
// Evening leisure time dominates upload distributions across regions.
const assumedPeakLocalHour = 20

const postingTimeConfidence = 0.5

// FromPostingTimes infers a UTC offset from when videos were uploaded: the
// modal posting hour in UTC is assumed to be 20:00 local, and the implied
// offset is looked up in the timezone-to-countries table. Inherently the
// weakest layer: one offset covers many countries and night owls break the
// 20:00 assumption.
func FromPostingTimes(videos []profile.Video, cat *catalog.Catalog) []Signal {
	if len(videos) < minVideosForTiming {
		return nil
	}

	var hourCounts [24]int
	for _, v := range videos {
		hourCounts[time.Unix(v.CreateTime, 0).UTC().Hour()]++
	}
	peakHour, peakCount := 0, 0
	for hour, count := range hourCounts {
		if count > peakCount {
			peakHour, peakCount = hour, count
		}
	}

	offset := peakHour - assumedPeakLocalHour
	// Wrap into (-12, +12] so a 03:00 UTC peak reads as UTC+7 and an 08:00
	// peak as UTC+12, not UTC-17 or UTC-12. UTC-12 itself is uninhabited.
	if offset <= -12 {
		offset += 24
	}

	label := catalog.OffsetLabel(offset)
	countries, ok := cat.Timezones[label]
	if !ok {
		return nil
	}

	out := make([]Signal, 0, len(countries))
	for _, country := range countries {
		out = append(out, Signal{
			Country:    country,
			Confidence: postingTimeConfidence,
			Method:     MethodPostingTime,
			Evidence:   fmt.Sprintf("peak posting hour %02d:00 UTC implies %s", peakHour, label),
		})
	}
	return out
}
