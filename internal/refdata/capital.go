package refdata

import "github.com/shopspring/decimal"

// capitalRules returns the per-country upfront capital requirements for an
// international student: blocked accounts, proof of funds, visa and flight
// costs folded into the base, plus the tuition share typically due before
// enrollment. All bases in USD.
func capitalRules() map[string]CapitalRule {
	usa := capitalRule(5000, 0.5)
	usa.ProofOfFundsFactor = decimal.NewFromFloat(0.5) // I-20 proof beyond first tuition payment

	return map[string]CapitalRule{
		// Fully funded destinations with minimal upfront cost.
		"Saudi Arabia": capitalRule(2000, 0),

		// Asia-Pacific.
		"Japan":       fundedCapitalRule(3000, 0.5, 1500),
		"South Korea": fundedCapitalRule(2500, 0.5, 1500),
		"China":       fundedCapitalRule(3000, 0.5, 2000),
		"Singapore":   capitalRule(8000, 0.5),
		"Hong Kong":   fundedCapitalRule(6000, 0.5, 3000),
		"Taiwan":      fundedCapitalRule(3000, 0.5, 2000),
		"India":       capitalRule(2000, 0.5),

		// Europe. Germany and Switzerland require blocked accounts;
		// Norway has no tuition even for non-EU students.
		"Germany":        capitalRule(15000, 0),
		"Netherlands":    capitalRule(14000, 0.5),
		"Switzerland":    capitalRule(25000, 0.25),
		"France":         capitalRule(8000, 0.5),
		"Italy":          fundedCapitalRule(6000, 0.5, 3000),
		"Spain":          capitalRule(7000, 0.5),
		"Sweden":         fundedCapitalRule(12000, 0.5, 4000),
		"Denmark":        capitalRule(12000, 0.5),
		"Finland":        fundedCapitalRule(10000, 0.5, 4000),
		"Norway":         capitalRule(10000, 0),
		"Austria":        capitalRule(8000, 0.5),
		"Belgium":        capitalRule(8000, 0.5),
		"UK":             capitalRule(18000, 0.5),
		"Ireland":        capitalRule(12000, 0.5),
		"Czech Republic": capitalRule(5000, 0.5),
		"Poland":         capitalRule(4000, 0.5),
		"Estonia":        capitalRule(5000, 0.5),
		"Portugal":       capitalRule(6000, 0.5),

		// North America.
		"USA":    usa,
		"Canada": capitalRule(8000, 0.5),

		// Australia / New Zealand.
		"Australia":   capitalRule(20000, 0.5),
		"New Zealand": capitalRule(16000, 0.5),

		// Middle East.
		"Israel":  capitalRule(5000, 0.5),
		"Lebanon": capitalRule(4000, 0.5),
		"Egypt":   capitalRule(3000, 0.5),
		"Turkey":  fundedCapitalRule(3000, 0.5, 1500),

		// Latin America.
		"Brazil":   capitalRule(3500, 0.5),
		"Mexico":   capitalRule(3500, 0.5),
		"Chile":    capitalRule(4000, 0.5),
		"Colombia": capitalRule(3500, 0.5),

		// Africa.
		"South Africa": capitalRule(3000, 0.5),

		// Multi-country programs are scholarship-funded end to end.
		"Multi-country": capitalRule(5000, 0),
	}
}
