package catalog

// locationPatterns lists cities commonly name-dropped in bios, weighted by
// how unambiguously each name identifies its country. Aliases cover local
// abbreviations and alternate spellings.
func locationPatterns() []LocationPattern {
	return []LocationPattern{
		// Southeast Asia
		{City: "jakarta", Aliases: []string{"jkt", "dki jakarta"}, Country: "ID", Confidence: 0.85},
		{City: "surabaya", Aliases: []string{"sby"}, Country: "ID", Confidence: 0.85},
		{City: "bandung", Country: "ID", Confidence: 0.85},
		{City: "medan", Country: "ID", Confidence: 0.8},
		{City: "bali", Aliases: []string{"denpasar"}, Country: "ID", Confidence: 0.75},
		{City: "kuala lumpur", Aliases: []string{"kl"}, Country: "MY", Confidence: 0.85},
		{City: "penang", Aliases: []string{"pulau pinang"}, Country: "MY", Confidence: 0.85},
		{City: "johor", Aliases: []string{"johor bahru", "jb"}, Country: "MY", Confidence: 0.8},
		{City: "singapore", Aliases: []string{"sgp"}, Country: "SG", Confidence: 0.85},
		{City: "bangkok", Aliases: []string{"krung thep", "bkk"}, Country: "TH", Confidence: 0.85},
		{City: "chiang mai", Country: "TH", Confidence: 0.85},
		{City: "hanoi", Aliases: []string{"ha noi"}, Country: "VN", Confidence: 0.85},
		{City: "ho chi minh", Aliases: []string{"saigon", "hcmc"}, Country: "VN", Confidence: 0.85},
		{City: "manila", Aliases: []string{"metro manila", "mnl"}, Country: "PH", Confidence: 0.85},
		{City: "cebu", Country: "PH", Confidence: 0.85},
		{City: "davao", Country: "PH", Confidence: 0.85},

		// East and South Asia
		{City: "tokyo", Aliases: []string{"shibuya"}, Country: "JP", Confidence: 0.85},
		{City: "osaka", Country: "JP", Confidence: 0.85},
		{City: "seoul", Country: "KR", Confidence: 0.85},
		{City: "busan", Country: "KR", Confidence: 0.85},
		{City: "shanghai", Country: "CN", Confidence: 0.85},
		{City: "beijing", Country: "CN", Confidence: 0.85},
		{City: "shenzhen", Country: "CN", Confidence: 0.85},
		{City: "taipei", Country: "TW", Confidence: 0.85},
		{City: "hong kong", Aliases: []string{"hk"}, Country: "HK", Confidence: 0.8},
		{City: "mumbai", Aliases: []string{"bombay"}, Country: "IN", Confidence: 0.85},
		{City: "delhi", Aliases: []string{"new delhi"}, Country: "IN", Confidence: 0.85},
		{City: "bangalore", Aliases: []string{"bengaluru"}, Country: "IN", Confidence: 0.85},
		{City: "karachi", Country: "PK", Confidence: 0.85},
		{City: "lahore", Country: "PK", Confidence: 0.85},
		{City: "dhaka", Country: "BD", Confidence: 0.85},

		// Middle East and Africa
		{City: "dubai", Country: "AE", Confidence: 0.8},
		{City: "abu dhabi", Country: "AE", Confidence: 0.85},
		{City: "riyadh", Country: "SA", Confidence: 0.85},
		{City: "jeddah", Country: "SA", Confidence: 0.85},
		{City: "cairo", Country: "EG", Confidence: 0.85},
		{City: "istanbul", Country: "TR", Confidence: 0.85},
		{City: "ankara", Country: "TR", Confidence: 0.85},
		{City: "lagos", Country: "NG", Confidence: 0.85},
		{City: "abuja", Country: "NG", Confidence: 0.85},
		{City: "nairobi", Country: "KE", Confidence: 0.85},
		{City: "johannesburg", Aliases: []string{"joburg"}, Country: "ZA", Confidence: 0.85},
		{City: "cape town", Country: "ZA", Confidence: 0.85},

		// Europe
		{City: "london", Aliases: []string{"ldn"}, Country: "GB", Confidence: 0.8},
		{City: "manchester", Country: "GB", Confidence: 0.75},
		{City: "paris", Country: "FR", Confidence: 0.8},
		{City: "berlin", Country: "DE", Confidence: 0.85},
		{City: "hamburg", Country: "DE", Confidence: 0.85},
		{City: "madrid", Country: "ES", Confidence: 0.85},
		{City: "barcelona", Aliases: []string{"bcn"}, Country: "ES", Confidence: 0.8},
		{City: "rome", Aliases: []string{"roma"}, Country: "IT", Confidence: 0.8},
		{City: "milan", Aliases: []string{"milano"}, Country: "IT", Confidence: 0.8},
		{City: "amsterdam", Country: "NL", Confidence: 0.85},
		{City: "moscow", Aliases: []string{"moskva"}, Country: "RU", Confidence: 0.85},
		{City: "warsaw", Aliases: []string{"warszawa"}, Country: "PL", Confidence: 0.85},

		// Americas
		{City: "new york", Aliases: []string{"nyc", "brooklyn"}, Country: "US", Confidence: 0.8},
		{City: "los angeles", Aliases: []string{"hollywood"}, Country: "US", Confidence: 0.7},
		{City: "chicago", Country: "US", Confidence: 0.8},
		{City: "miami", Country: "US", Confidence: 0.75},
		{City: "toronto", Country: "CA", Confidence: 0.85},
		{City: "vancouver", Country: "CA", Confidence: 0.85},
		{City: "mexico city", Aliases: []string{"cdmx", "ciudad de mexico"}, Country: "MX", Confidence: 0.85},
		{City: "guadalajara", Country: "MX", Confidence: 0.85},
		{City: "sao paulo", Aliases: []string{"são paulo", "sampa"}, Country: "BR", Confidence: 0.85},
		{City: "rio de janeiro", Aliases: []string{"rio"}, Country: "BR", Confidence: 0.75},
		{City: "buenos aires", Country: "AR", Confidence: 0.85},
		{City: "bogota", Country: "CO", Confidence: 0.85},

		// Oceania
		{City: "sydney", Country: "AU", Confidence: 0.85},
		{City: "melbourne", Country: "AU", Confidence: 0.85},
		{City: "auckland", Country: "NZ", Confidence: 0.85},
	}
}
