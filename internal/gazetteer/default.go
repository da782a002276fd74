package gazetteer

import "wikiweird/internal/domain"

// Default returns the production gazetteer covering the seven editorial
// regions of the unusual-articles page.
func Default() *Gazetteer {
	return New(Tables{
		RegionCountries: defaultRegionCountries(),
		Synonyms:        defaultSynonyms(),
		SkipPrefixes:    defaultSkipPrefixes(),
	})
}

func defaultRegionCountries() map[domain.Region][]string {
	return map[domain.Region][]string{
		domain.RegionAfrica: {
			"South Africa", "Egypt", "Nigeria", "Kenya", "Morocco", "Ghana",
			"Ethiopia", "Tanzania", "Algeria", "Libya", "Tunisia", "Sudan",
			"Zimbabwe", "Botswana", "Namibia", "Zambia", "Senegal", "Mali",
			"Burkina Faso", "Niger", "Chad", "Cameroon", "Uganda", "Rwanda",
			"Democratic Republic of the Congo", "Republic of the Congo",
			"Central African Republic", "Gabon", "Equatorial Guinea",
			"São Tomé and Príncipe", "Angola", "Mozambique", "Madagascar",
			"Mauritius", "Seychelles", "Comoros", "Djibouti", "Eritrea",
			"Somalia", "Ivory Coast", "Liberia", "Sierra Leone", "Guinea",
			"Guinea-Bissau", "Gambia", "Cape Verde", "Benin", "Togo",
			"Malawi", "Lesotho", "Eswatini", "Burundi",
		},
		domain.RegionAntarctica: {"Antarctica"},
		domain.RegionAsia: {
			"China", "Japan", "India", "South Korea", "North Korea", "Thailand",
			"Indonesia", "Philippines", "Vietnam", "Malaysia", "Singapore",
			"Myanmar", "Cambodia", "Laos", "Brunei", "East Timor", "Mongolia",
			"Taiwan", "Hong Kong", "Macau", "Afghanistan", "Pakistan",
			"Bangladesh", "Sri Lanka", "Maldives", "Nepal", "Bhutan",
			"Kazakhstan", "Uzbekistan", "Turkmenistan", "Tajikistan",
			"Kyrgyzstan", "Iran", "Iraq", "Syria", "Lebanon", "Jordan",
			"Israel", "Palestine", "Saudi Arabia", "Yemen", "Oman",
			"United Arab Emirates", "Qatar", "Bahrain", "Kuwait", "Turkey",
			"Cyprus", "Georgia", "Armenia", "Azerbaijan", "Russia",
		},
		domain.RegionEurope: {
			"United Kingdom", "Germany", "France", "Italy", "Spain", "Netherlands",
			"Norway", "Sweden", "Denmark", "Finland", "Iceland", "Ireland",
			"Belgium", "Luxembourg", "Switzerland", "Austria", "Portugal",
			"Poland", "Czech Republic", "Slovakia", "Hungary", "Slovenia",
			"Croatia", "Bosnia and Herzegovina", "Serbia", "Montenegro",
			"North Macedonia", "Albania", "Kosovo", "Bulgaria", "Romania",
			"Moldova", "Ukraine", "Belarus", "Lithuania", "Latvia", "Estonia",
			"Greece", "Malta", "San Marino", "Vatican City", "Monaco",
			"Andorra", "Liechtenstein",
		},
		domain.RegionLatinAmerica: {
			"Brazil", "Mexico", "Argentina", "Colombia", "Peru", "Chile",
			"Venezuela", "Ecuador", "Bolivia", "Paraguay", "Uruguay",
			"Guyana", "Suriname", "French Guiana", "Jamaica", "Cuba",
			"Dominican Republic", "Haiti", "Trinidad and Tobago", "Barbados",
			"Bahamas", "Belize", "Costa Rica", "Panama", "Nicaragua",
			"Honduras", "El Salvador", "Guatemala", "Puerto Rico",
			"Saint Lucia", "Saint Vincent and the Grenadines", "Grenada",
			"Antigua and Barbuda", "Saint Kitts and Nevis", "Dominica",
		},
		domain.RegionNorthAmerica: {
			"United States", "Canada", "Greenland",
		},
		domain.RegionOceania: {
			"Australia", "New Zealand", "Fiji", "Papua New Guinea", "Samoa",
			"Tonga", "Vanuatu", "Solomon Islands", "Palau", "Marshall Islands",
			"Micronesia", "Kiribati", "Tuvalu", "Nauru", "Cook Islands",
		},
	}
}

func defaultSynonyms() map[string]string {
	return map[string]string{
		"USA":                          "United States",
		"US":                           "United States",
		"America":                      "United States",
		"UK":                           "United Kingdom",
		"Britain":                      "United Kingdom",
		"England":                      "United Kingdom",
		"Scotland":                     "United Kingdom",
		"Wales":                        "United Kingdom",
		"Northern Ireland":             "United Kingdom",
		"PRC":                          "China",
		"People's Republic of China":   "China",
		"ROC":                          "Taiwan",
		"Republic of China":            "Taiwan",
		// Identity entries are deliberate: the synonym pass matches by
		// substring, so they catch adjectival forms ("South Korean") the
		// whole-word mention pattern misses.
		"South Korea":                  "South Korea",
		"Republic of Korea":            "South Korea",
		"North Korea":                  "North Korea",
		"DPRK":                         "North Korea",
		"UAE":                          "United Arab Emirates",
		"Czech Republic":               "Czech Republic",
		"Czechia":                      "Czech Republic",
		"DRC":                          "Democratic Republic of the Congo",
		"Congo-Kinshasa":               "Democratic Republic of the Congo",
		"Congo-Brazzaville":            "Republic of the Congo",
	}
}

func defaultSkipPrefixes() []string {
	return []string{
		"file:", "image:", "category:", "wp:", "wikipedia:",
		"template:", ":category:", "commons:",
	}
}
