package catalog

// timezoneCountries maps a canonical integer UTC-offset label to the
// countries whose population plausibly posts from that offset. Only offsets
// the posting-time layer can actually infer (whole hours) are listed;
// half-hour zones are folded into their neighbors.
var timezoneCountries = map[string][]string{
	"UTC-8":  {"US", "CA"},
	"UTC-7":  {"US", "CA", "MX"},
	"UTC-6":  {"MX", "US"},
	"UTC-5":  {"US", "CO", "PE"},
	"UTC-4":  {"CA", "VE"},
	"UTC-3":  {"BR", "AR"},
	"UTC+0":  {"GB", "PT"},
	"UTC+1":  {"DE", "FR", "ES", "IT", "NL", "PL", "NG"},
	"UTC+2":  {"EG", "ZA"},
	"UTC+3":  {"SA", "TR", "RU", "KE"},
	"UTC+4":  {"AE"},
	"UTC+5":  {"PK"},
	"UTC+6":  {"BD"},
	"UTC+7":  {"ID", "TH", "VN"},
	"UTC+8":  {"CN", "MY", "SG", "PH", "TW", "HK"},
	"UTC+9":  {"JP", "KR"},
	"UTC+10": {"AU"},
	"UTC+12": {"NZ"},
}

// deviceLanguageHints maps a primary language subtag to its single most
// plausible country. For languages spoken across many countries the table
// deliberately picks one default with a reduced confidence; this is a
// product policy, not a statistical fact.
var deviceLanguageHints = map[string]LanguageHint{
	"id":  {Country: "ID", Confidence: 0.8},
	"ms":  {Country: "MY", Confidence: 0.7},
	"th":  {Country: "TH", Confidence: 0.8},
	"vi":  {Country: "VN", Confidence: 0.8},
	"fil": {Country: "PH", Confidence: 0.75},
	"tl":  {Country: "PH", Confidence: 0.75},
	"ja":  {Country: "JP", Confidence: 0.8},
	"ko":  {Country: "KR", Confidence: 0.8},
	"zh":  {Country: "CN", Confidence: 0.6},
	"hi":  {Country: "IN", Confidence: 0.7},
	"bn":  {Country: "BD", Confidence: 0.65},
	"ur":  {Country: "PK", Confidence: 0.7},
	"ar":  {Country: "SA", Confidence: 0.5},
	"es":  {Country: "MX", Confidence: 0.5},
	"pt":  {Country: "BR", Confidence: 0.6},
	"ru":  {Country: "RU", Confidence: 0.6},
	"tr":  {Country: "TR", Confidence: 0.7},
	"de":  {Country: "DE", Confidence: 0.6},
	"fr":  {Country: "FR", Confidence: 0.5},
	"it":  {Country: "IT", Confidence: 0.65},
	"nl":  {Country: "NL", Confidence: 0.6},
	"pl":  {Country: "PL", Confidence: 0.7},
}

// hashtagCountries maps hashtag tokens that name a country (or its demonym)
// to that country. Compared lowercase, leading '#' stripped by the caller.
var hashtagCountries = map[string]string{
	"indonesia":   "ID",
	"indonesian":  "ID",
	"malaysia":    "MY",
	"singapore":   "SG",
	"thailand":    "TH",
	"vietnam":     "VN",
	"philippines": "PH",
	"pinoy":       "PH",
	"india":       "IN",
	"pakistan":    "PK",
	"bangladesh":  "BD",
	"japan":       "JP",
	"korea":       "KR",
	"china":       "CN",
	"taiwan":      "TW",
	"turkey":      "TR",
	"turkiye":     "TR",
	"russia":      "RU",
	"brazil":      "BR",
	"brasil":      "BR",
	"mexico":      "MX",
	"usa":         "US",
	"america":     "US",
	"uk":          "GB",
	"england":     "GB",
	"germany":     "DE",
	"france":      "FR",
	"spain":       "ES",
	"italy":       "IT",
	"nigeria":     "NG",
	"naija":       "NG",
	"kenya":       "KE",
	"egypt":       "EG",
	"saudiarabia": "SA",
	"dubai":       "AE",
	"australia":   "AU",
}
