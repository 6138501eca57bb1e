package catalog

import "regexp"

// languagePatterns covers scripts, languages, and platform slang that point
// at particular countries. Script-level matches (Thai, Hangul, Kana) are
// near-certain; shared-script languages and slang carry lower confidence.
// Confidences are tuned against labeled profile data, not derived.
func languagePatterns() []LanguagePattern {
	return []LanguagePattern{
		// Southeast Asian slang. High value: these rarely appear outside
		// their home country.
		{
			Pattern:     regexp.MustCompile(`wkwk|gaskeun|anjay|santuy|bucin|gabut|mantul`),
			Countries:   []string{"ID"},
			Confidence:  0.9,
			Description: "Indonesian internet slang",
		},
		{
			Pattern:     regexp.MustCompile(`\b(?:banget|nggak|kamu|aku|yang|udah|belum)\b`),
			Countries:   []string{"ID"},
			Confidence:  0.7,
			Description: "Indonesian common words",
		},
		{
			Pattern:     regexp.MustCompile(`\b(?:boleh|macam|sedap|syok|lepak|kenapa)\b`),
			Countries:   []string{"MY", "ID"},
			Confidence:  0.6,
			Description: "Malay common words",
		},
		{
			Pattern:     regexp.MustCompile(`\b(?:po|opo|pinoy|pinay|kilig|tara|grabe)\b`),
			Countries:   []string{"PH"},
			Confidence:  0.7,
			Description: "Filipino/Tagalog markers",
		},
		// Script detection. A single character of these scripts is a very
		// strong signal.
		{
			Pattern:     regexp.MustCompile(`[\x{0E00}-\x{0E7F}]`),
			Countries:   []string{"TH"},
			Confidence:  0.95,
			Description: "Thai script",
		},
		{
			Pattern:     regexp.MustCompile(`[\x{AC00}-\x{D7AF}]`),
			Countries:   []string{"KR"},
			Confidence:  0.95,
			Description: "Hangul script",
		},
		{
			Pattern:     regexp.MustCompile(`[\x{3040}-\x{30FF}]`),
			Countries:   []string{"JP"},
			Confidence:  0.9,
			Description: "Japanese kana",
		},
		{
			Pattern:     regexp.MustCompile(`[\x{0900}-\x{097F}]`),
			Countries:   []string{"IN"},
			Confidence:  0.85,
			Description: "Devanagari script",
		},
		// Shared scripts: plausible countries listed most-likely first,
		// confidence discounted accordingly.
		{
			Pattern:     regexp.MustCompile(`[\x{0600}-\x{06FF}]`),
			Countries:   []string{"SA", "EG", "AE"},
			Confidence:  0.5,
			Description: "Arabic script",
		},
		{
			Pattern:     regexp.MustCompile(`[\x{0400}-\x{04FF}]`),
			Countries:   []string{"RU"},
			Confidence:  0.6,
			Description: "Cyrillic script",
		},
		{
			Pattern:     regexp.MustCompile(`[\x{4E00}-\x{9FFF}]`),
			Countries:   []string{"CN", "TW"},
			Confidence:  0.5,
			Description: "CJK ideographs",
		},
		// Vietnamese is Latin-script but its diacritic stack is unique.
		{
			Pattern:     regexp.MustCompile(`[ạảấầẩẫậắằẳẵặẹẻẽếềểễệỉịọỏốồổỗộớờởỡợụủứừửữựỳỵỷỹđ]`),
			Countries:   []string{"VN"},
			Confidence:  0.9,
			Description: "Vietnamese diacritics",
		},
		// Note: \b is ASCII-only in Go regexps, so accented words are
		// matched bare. They are distinctive enough not to need anchors.
		{
			Pattern:     regexp.MustCompile(`không|người|được|của|nhưng`),
			Countries:   []string{"VN"},
			Confidence:  0.8,
			Description: "Vietnamese common words",
		},
		{
			Pattern:     regexp.MustCompile(`você|\bnão\b|obrigad[oa]|saudade|\bbeleza\b`),
			Countries:   []string{"BR", "PT"},
			Confidence:  0.6,
			Description: "Portuguese markers",
		},
		{
			Pattern:     regexp.MustCompile(`\bjajaja|güey|\bchido\b|órale|qué onda`),
			Countries:   []string{"MX", "ES"},
			Confidence:  0.55,
			Description: "Spanish slang, Mexican leaning",
		},
		{
			Pattern:     regexp.MustCompile(`\bmerhaba\b|nasılsın|teşekkür|güzel`),
			Countries:   []string{"TR"},
			Confidence:  0.8,
			Description: "Turkish common words",
		},
		{
			Pattern:     regexp.MustCompile(`\b(?:naija|wahala|abeg|oya|jollof)\b`),
			Countries:   []string{"NG"},
			Confidence:  0.75,
			Description: "Nigerian Pidgin markers",
		},
	}
}
