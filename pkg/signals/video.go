package signals

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/tokorigin/pkg/catalog"
	"github.com/codeGROOVE-dev/tokorigin/pkg/profile"
)

// Only a bounded recent window of uploads is inspected; older videos add
// little and some accounts have thousands.
const maxVideosScanned = 20

const (
	videoLocationConfidence = 0.85
	videoHashtagConfidence  = 0.75
)

// FromVideoMetadata mines location tags and hashtags from recent uploads.
// Location tags are matched as case-insensitive substrings against city
// names; hashtags against the country keyword table.
func FromVideoMetadata(videos []profile.Video, cat *catalog.Catalog) []Signal {
	if len(videos) == 0 {
		return nil
	}
	if len(videos) > maxVideosScanned {
		videos = videos[:maxVideosScanned]
	}

	var out []Signal
	for _, v := range videos {
		if loc := strings.ToLower(strings.TrimSpace(v.Location)); loc != "" {
			for i := range cat.Locations {
				lp := &cat.Locations[i]
				if !strings.Contains(loc, lp.City) {
					continue
				}
				out = append(out, Signal{
					Country:    lp.Country,
					Confidence: videoLocationConfidence,
					Method:     MethodVideoMetadata,
					Evidence:   fmt.Sprintf("video tagged at %q", v.Location),
				})
			}
		}
		for _, tag := range v.Hashtags {
			token := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
			country, ok := cat.HashtagCountries[token]
			if !ok {
				continue
			}
			out = append(out, Signal{
				Country:    country,
				Confidence: videoHashtagConfidence,
				Method:     MethodVideoMetadata,
				Evidence:   fmt.Sprintf("video hashtag #%s", token),
			})
		}
	}
	return out
}
