package catalog

import "testing"

func TestNew(t *testing.T) {
	// New must not panic: every table regexp goes through MustCompile, so
	// simply constructing the catalog validates all static patterns.
	c := New()

	if len(c.Languages) == 0 || len(c.Locations) == 0 || len(c.PhoneCodes) == 0 {
		t.Fatal("catalog tables should not be empty")
	}
	for _, lp := range c.Languages {
		if len(lp.Countries) == 0 {
			t.Errorf("language pattern %q has no candidate countries", lp.Description)
		}
		if lp.Confidence <= 0 || lp.Confidence > 1 {
			t.Errorf("language pattern %q confidence %v out of (0,1]", lp.Description, lp.Confidence)
		}
	}
	for label, countries := range c.Timezones {
		if len(countries) == 0 {
			t.Errorf("timezone %s has no countries", label)
		}
	}
}

func TestCountryLookups(t *testing.T) {
	c := New()

	if !c.IsKnownCountry("ID") {
		t.Error("ID should be a known country")
	}
	if c.IsKnownCountry("id") {
		t.Error("IsKnownCountry expects uppercase codes; lowercase must miss")
	}
	if c.IsKnownCountry("XX") {
		t.Error("XX should not be a known country")
	}
	if got := c.CountryName("ID"); got != "Indonesia" {
		t.Errorf("CountryName(ID) = %q, want Indonesia", got)
	}
	if got := c.CountryName("ZZ"); got != "ZZ" {
		t.Errorf("CountryName of unknown code should echo the code, got %q", got)
	}
	if got := DisplayName("my"); got != "Malaysia" {
		t.Errorf("DisplayName(my) = %q, want Malaysia", got)
	}
}

func TestOffsetLabel(t *testing.T) {
	cases := map[int]string{
		7:  "UTC+7",
		0:  "UTC+0",
		-5: "UTC-5",
		11: "UTC+11",
	}
	for offset, want := range cases {
		if got := OffsetLabel(offset); got != want {
			t.Errorf("OffsetLabel(%d) = %q, want %q", offset, got, want)
		}
	}
}

func TestLocationWholeWordMatching(t *testing.T) {
	c := New()
	var jakarta *LocationPattern
	for i := range c.Locations {
		if c.Locations[i].City == "jakarta" {
			jakarta = &c.Locations[i]
			break
		}
	}
	if jakarta == nil {
		t.Fatal("jakarta missing from location table")
	}

	t.Run("whole word matches", func(t *testing.T) {
		if !jakarta.MatchesWord("living in jakarta since 2019") {
			t.Error("expected whole-word match")
		}
	})
	t.Run("case insensitive", func(t *testing.T) {
		if !jakarta.MatchesWord("Jakarta based") {
			t.Error("expected case-insensitive match")
		}
	})
	t.Run("alias matches", func(t *testing.T) {
		if !jakarta.MatchesWord("jkt creator") {
			t.Error("expected alias match")
		}
	})
	t.Run("substring does not match", func(t *testing.T) {
		if jakarta.MatchesWord("jakartans unite") {
			t.Error("partial word should not match")
		}
	})
}

func TestPhonePatternOrdering(t *testing.T) {
	c := New()

	// The extractor takes the first table match, so three-digit codes must
	// come before any one- or two-digit prefix they share digits with.
	cases := []struct {
		text string
		want string
	}{
		{"+234 801 234 5678", "+234"},
		{"call +880 1712345678", "+880"},
		{"wa: +62 812-3456-7890", "+62"},
	}
	for _, tc := range cases {
		var matched string
		for i := range c.PhoneCodes {
			if c.PhoneCodes[i].Pattern.MatchString(tc.text) {
				matched = c.PhoneCodes[i].Code
				break
			}
		}
		if matched != tc.want {
			t.Errorf("text %q first-matched dial code %q, want %q", tc.text, matched, tc.want)
		}
	}
}

func TestPhonePatternRequiresNumber(t *testing.T) {
	c := New()
	// A bare dial code in prose, with no number following, must not match.
	for i := range c.PhoneCodes {
		if c.PhoneCodes[i].Pattern.MatchString("my country code is +62 by the way") {
			t.Errorf("pattern %s matched a bare dial code", c.PhoneCodes[i].Code)
		}
	}
}
