package refdata

import "github.com/Simba256/Decision-Tree/pkg/money"

// hc builds one lifestyle tier from student/single/family $K figures.
func hc(student, single, family float64) HouseholdCost {
	return HouseholdCost{
		Student: money.New(student),
		Single:  money.New(single),
		Family:  money.New(family),
	}
}

// lc builds both tiers: frugal triple first, comfortable triple second.
// Frugal assumes an outer-area apartment, cooking at home, and no car;
// comfortable adds a better neighbourhood, regular dining out, and
// market-rate childcare.
func lc(fs, fi, ff, cs, ci, cf float64) LivingCost {
	return LivingCost{Frugal: hc(fs, fi, ff), Comfortable: hc(cs, ci, cf)}
}

// cityCosts returns annual living cost in $K per city, both tiers.
func cityCosts() map[string]LivingCost {
	return map[string]LivingCost{
		// USA
		"Bay Area":    lc(32, 52, 120, 42, 66, 150),
		"NYC":         lc(30, 50, 115, 40, 64, 145),
		"Los Angeles": lc(26, 42, 95, 34, 54, 120),
		"San Diego":   lc(25, 40, 90, 32, 50, 112),
		"Boston":      lc(28, 46, 105, 36, 58, 132),
		"Seattle":     lc(25, 42, 95, 33, 54, 120),
		"Chicago":     lc(22, 36, 82, 28, 46, 104),
		"DC":          lc(26, 44, 100, 34, 56, 126),
		"Baltimore":   lc(20, 34, 78, 26, 43, 98),
		"Pittsburgh":  lc(18, 32, 72, 23, 40, 90),
		// UK
		"London":     lc(22, 38, 95, 30, 48, 118),
		"Bristol":    lc(16, 28, 58, 20, 35, 72),
		"Manchester": lc(15, 26, 54, 19, 33, 68),
		"Edinburgh":  lc(16, 27, 56, 20, 34, 70),
		"Leeds":      lc(14, 24, 50, 17, 30, 62),
		"Sheffield":  lc(13, 22, 46, 16, 28, 58),
		"Glasgow":    lc(14, 24, 50, 17, 30, 62),
		// Canada
		"Toronto":   lc(20, 34, 72, 26, 42, 90),
		"Vancouver": lc(20, 34, 74, 26, 42, 92),
		"Ottawa":    lc(16, 28, 60, 20, 35, 75),
		"Edmonton":  lc(14, 26, 56, 18, 32, 70),
		// Germany
		"Munich":    lc(16, 30, 58, 20, 37, 72),
		"Berlin":    lc(13, 26, 55, 17, 32, 66),
		"Hamburg":   lc(14, 26, 46, 17, 32, 58),
		"Stuttgart": lc(14, 26, 46, 17, 32, 58),
		"Cologne":   lc(13, 24, 44, 16, 30, 55),
		"Dresden":   lc(11, 20, 38, 14, 25, 47),
		"Aachen":    lc(11, 20, 38, 14, 25, 47),
		// Switzerland
		"Zurich":   lc(26, 45, 110, 35, 58, 145),
		"Geneva":   lc(26, 45, 110, 35, 58, 145),
		"Lausanne": lc(24, 40, 95, 31, 52, 125),
		// Netherlands
		"Amsterdam":  lc(16, 30, 58, 20, 38, 72),
		"Eindhoven":  lc(13, 24, 48, 16, 30, 60),
		"The Hague":  lc(14, 26, 52, 18, 33, 65),
		"Maastricht": lc(12, 22, 44, 15, 28, 55),
		// France
		"Paris": lc(18, 32, 65, 24, 42, 84),
		// Italy
		"Milan": lc(15, 26, 52, 19, 33, 65),
		"Rome":  lc(14, 24, 48, 18, 30, 60),
		// Spain
		"Barcelona": lc(13, 22, 46, 17, 28, 58),
		"Madrid":    lc(13, 22, 46, 17, 28, 58),
		// Scandinavia
		"Copenhagen": lc(16, 28, 56, 21, 36, 72),
		"Stockholm":  lc(15, 26, 54, 20, 34, 70),
		"Gothenburg": lc(14, 24, 50, 18, 30, 62),
		"Oslo":       lc(18, 30, 60, 23, 38, 78),
		"Helsinki":   lc(14, 24, 50, 18, 30, 62),
		// Belgium
		"Brussels": lc(13, 24, 48, 17, 30, 60),
		"Ghent":    lc(12, 22, 44, 15, 28, 55),
		// Other Europe
		"Vienna":  lc(14, 24, 48, 18, 30, 60),
		"Lisbon":  lc(12, 20, 42, 15, 25, 52),
		"Prague":  lc(10, 18, 36, 13, 23, 45),
		"Warsaw":  lc(10, 18, 36, 13, 23, 45),
		"Krakow":  lc(9, 16, 32, 11, 20, 40),
		"Tallinn": lc(10, 18, 36, 13, 23, 45),
		// Australia
		"Sydney":    lc(20, 36, 78, 26, 46, 100),
		"Melbourne": lc(18, 32, 70, 24, 42, 90),
		"Brisbane":  lc(16, 28, 62, 20, 36, 78),
		"Perth":     lc(16, 28, 62, 20, 36, 78),
		// New Zealand
		"Auckland": lc(16, 28, 62, 20, 36, 78),
		// India
		"Bangalore": lc(5, 11, 21, 7, 16, 30),
		"Mumbai":    lc(6, 13, 24, 8, 18, 34),
		"Delhi":     lc(5, 10, 20, 7, 15, 28),
		// Singapore / Hong Kong
		"Singapore": lc(20, 38, 85, 28, 50, 108),
		"Hong Kong": lc(20, 36, 78, 26, 48, 100),
		// Israel
		"Tel Aviv": lc(16, 28, 60, 21, 36, 76),
		// East Asia
		"Tokyo":    lc(14, 26, 55, 18, 33, 68),
		"Seoul":    lc(12, 22, 48, 16, 28, 60),
		"Beijing":  lc(8, 16, 32, 10, 22, 42),
		"Shanghai": lc(9, 18, 35, 12, 24, 46),
		"Taipei":   lc(8, 16, 32, 10, 21, 42),
		// Middle East
		"Dubai":  lc(20, 38, 85, 28, 50, 108),
		"Jeddah": lc(14, 24, 52, 18, 32, 66),
		// Africa
		"Cairo":        lc(4, 8, 18, 6, 12, 25),
		"Cape Town":    lc(8, 14, 28, 10, 18, 36),
		"Johannesburg": lc(7, 13, 26, 9, 17, 34),
		// Latin America
		"Sao Paulo":      lc(8, 14, 30, 11, 19, 40),
		"Rio de Janeiro": lc(7, 13, 28, 10, 18, 38),
		"Mexico City":    lc(7, 12, 26, 9, 16, 35),
		"Santiago":       lc(8, 14, 30, 10, 18, 38),
		"Bogota":         lc(6, 11, 24, 8, 15, 32),
		// Home-country baseline
		"Pakistan": lc(4, 8.7, 15.6, 5.5, 12, 22),
	}
}

// countryDefaultCities maps a country to its fallback cost city.
func countryDefaultCities() map[string]string {
	return map[string]string{
		"USA":            "Bay Area",
		"UK":             "London",
		"Canada":         "Toronto",
		"Germany":        "Berlin",
		"Switzerland":    "Zurich",
		"France":         "Paris",
		"Netherlands":    "Amsterdam",
		"Italy":          "Milan",
		"Spain":          "Madrid",
		"Denmark":        "Copenhagen",
		"Sweden":         "Stockholm",
		"Norway":         "Oslo",
		"Finland":        "Helsinki",
		"Belgium":        "Brussels",
		"Austria":        "Vienna",
		"Portugal":       "Lisbon",
		"Poland":         "Warsaw",
		"Czech Republic": "Prague",
		"Estonia":        "Tallinn",
		"Australia":      "Sydney",
		"New Zealand":    "Auckland",
		"India":          "Bangalore",
		"Singapore":      "Singapore",
		"Hong Kong":      "Hong Kong",
		"Israel":         "Tel Aviv",
		"Japan":          "Tokyo",
		"South Korea":    "Seoul",
		"China":          "Beijing",
		"Taiwan":         "Taipei",
		"UAE":            "Dubai",
		"Saudi Arabia":   "Jeddah",
		"South Africa":   "Cape Town",
		"Egypt":          "Cairo",
		"Brazil":         "Sao Paulo",
		"Mexico":         "Mexico City",
		"Chile":          "Santiago",
		"Colombia":       "Bogota",
		"Pakistan":       "Pakistan",
		"Lebanon":        "Beirut",
		"Multi-country":  "Paris",
	}
}

// studyCountryCosts covers study destinations whose cities are not in the
// city table. Checked first for study-year costs.
func studyCountryCosts() map[string]LivingCost {
	return map[string]LivingCost{
		"Lebanon": lc(8, 14, 30, 11, 19, 40),
		"Egypt":   lc(4, 8, 18, 6, 12, 25),
	}
}

// genericCost is the last-resort living cost when no table matches.
func genericCost() LivingCost {
	return lc(12, 22, 45, 16, 28, 58)
}
