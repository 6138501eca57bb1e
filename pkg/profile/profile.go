// Package profile defines the account and video records consumed by the
// country detection pipeline. These are caller-owned inputs: the detector
// never mutates them and holds no reference after a call returns.
package profile

// UndefinedRegion is the sentinel some upstream scrapers emit when an
// account never declared a region. Treated identically to an empty field.
const UndefinedRegion = "undefined"

// Profile is a normalized account record. All fields except Username are
// optional; an empty string means the field was absent upstream.
type Profile struct {
	Username  string `json:"username"`
	Nickname  string `json:"nickname,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Signature string `json:"signature,omitempty"`
	Region    string `json:"region,omitempty"`   // 2-letter code, "", or "undefined"
	Language  string `json:"language,omitempty"` // device language tag, e.g. "id" or "pt-BR"
}

// HasRegion reports whether the profile carries a usable declared region.
func (p Profile) HasRegion() bool {
	return p.Region != "" && p.Region != UndefinedRegion
}

// Video is one recent upload used as supplementary evidence.
type Video struct {
	CreateTime int64    `json:"create_time"` // seconds since epoch
	Location   string   `json:"location,omitempty"`
	Hashtags   []string `json:"hashtags,omitempty"`
}
