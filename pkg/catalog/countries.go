package catalog

// countryNames is the display-name table. A declared region or device
// language region subtag that is absent from this table is dropped rather
// than trusted: the table doubles as the validity check for ISO-style
// codes arriving from upstream metadata.
var countryNames = map[string]string{
	"ID": "Indonesia",
	"MY": "Malaysia",
	"SG": "Singapore",
	"TH": "Thailand",
	"VN": "Vietnam",
	"PH": "Philippines",
	"KH": "Cambodia",
	"MM": "Myanmar",
	"LA": "Laos",
	"BN": "Brunei",
	"IN": "India",
	"PK": "Pakistan",
	"BD": "Bangladesh",
	"LK": "Sri Lanka",
	"NP": "Nepal",
	"CN": "China",
	"TW": "Taiwan",
	"HK": "Hong Kong",
	"JP": "Japan",
	"KR": "South Korea",
	"SA": "Saudi Arabia",
	"AE": "United Arab Emirates",
	"QA": "Qatar",
	"KW": "Kuwait",
	"EG": "Egypt",
	"IQ": "Iraq",
	"JO": "Jordan",
	"IL": "Israel",
	"TR": "Turkey",
	"RU": "Russia",
	"UA": "Ukraine",
	"KZ": "Kazakhstan",
	"NG": "Nigeria",
	"KE": "Kenya",
	"GH": "Ghana",
	"ZA": "South Africa",
	"MA": "Morocco",
	"DZ": "Algeria",
	"TN": "Tunisia",
	"GB": "United Kingdom",
	"IE": "Ireland",
	"FR": "France",
	"DE": "Germany",
	"NL": "Netherlands",
	"BE": "Belgium",
	"ES": "Spain",
	"PT": "Portugal",
	"IT": "Italy",
	"CH": "Switzerland",
	"AT": "Austria",
	"PL": "Poland",
	"CZ": "Czechia",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
	"RO": "Romania",
	"GR": "Greece",
	"HU": "Hungary",
	"US": "United States",
	"CA": "Canada",
	"MX": "Mexico",
	"BR": "Brazil",
	"AR": "Argentina",
	"CO": "Colombia",
	"CL": "Chile",
	"PE": "Peru",
	"VE": "Venezuela",
	"EC": "Ecuador",
	"AU": "Australia",
	"NZ": "New Zealand",
}
