package refdata

import "github.com/shopspring/decimal"

// exchangeRates returns local currency units per 1 USD, 2024 averages.
func exchangeRates() map[string]decimal.Decimal {
	raw := map[string]float64{
		"GBP": 0.79,
		"EUR": 0.92,
		"CAD": 1.36,
		"CHF": 0.82,
		"AUD": 1.53,
		"NZD": 1.63,
		"INR": 83.5,
		"SGD": 1.34,
		"HKD": 7.82,
		"JPY": 151.0,
		"KRW": 1430.0,
		"ILS": 3.65,
		"CNY": 7.24,
		"SEK": 10.5,
		"DKK": 6.88,
		"NOK": 10.7,
		"BRL": 5.9,
		"MXN": 20.0,
		"ZAR": 16.5,
		"CLP": 950.0,
		"COP": 4300.0,
		"TWD": 31.5,
		"PLN": 4.0,
		"CZK": 23.0,
		"PKR": 278.0,
		"EGP": 48.0,
		"SAR": 3.75,
		"AED": 3.67,
		"USD": 1.0,
	}
	out := make(map[string]decimal.Decimal, len(raw))
	for cur, r := range raw {
		out[cur] = decimal.NewFromFloat(r)
	}
	return out
}

// usTax returns the federal, state, city, and payroll tables for the US
// composite calculation. Single filer, 2024.
func usTax() USTax {
	c := converter{fx: map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}}

	states := map[string]USStateTax{
		"CA": {
			StandardDeduction: decimal.NewFromInt(5540),
			Brackets: c.schedule("USD",
				10412, 0.01,
				24684, 0.02,
				38959, 0.04,
				54081, 0.06,
				68350, 0.08,
				349137, 0.093,
				418961, 0.103,
				698271, 0.113,
				unbounded, 0.123,
			),
		},
		"NY": {
			StandardDeduction: decimal.NewFromInt(8000),
			Brackets: c.schedule("USD",
				8500, 0.04,
				11700, 0.045,
				13900, 0.0525,
				80650, 0.0585,
				215400, 0.0625,
				1077550, 0.0685,
				5000000, 0.0965,
				25000000, 0.103,
				unbounded, 0.109,
			),
		},
		"MA": {Brackets: c.schedule("USD", unbounded, 0.05)},
		"IL": {Brackets: c.schedule("USD", unbounded, 0.0495)},
		"PA": {Brackets: c.schedule("USD", unbounded, 0.0307)},
		"NJ": {
			Brackets: c.schedule("USD",
				20000, 0.014,
				35000, 0.0175,
				40000, 0.035,
				75000, 0.05525,
				500000, 0.0637,
				1000000, 0.0897,
				unbounded, 0.1075,
			),
		},
		"MD": {
			StandardDeduction: decimal.NewFromInt(2400),
			Brackets: c.schedule("USD",
				1000, 0.02,
				2000, 0.03,
				3000, 0.04,
				100000, 0.0475,
				125000, 0.05,
				150000, 0.0525,
				250000, 0.055,
				unbounded, 0.0575,
			),
		},
		"DC": {
			StandardDeduction: decimal.NewFromInt(14600),
			Brackets: c.schedule("USD",
				10000, 0.04,
				40000, 0.06,
				60000, 0.065,
				250000, 0.085,
				500000, 0.0925,
				1000000, 0.0975,
				unbounded, 0.1075,
			),
		},
		"GA": {
			StandardDeduction: decimal.NewFromInt(5400),
			Brackets: c.schedule("USD",
				750, 0.01,
				2250, 0.02,
				3750, 0.03,
				5250, 0.04,
				7000, 0.05,
				unbounded, 0.055,
			),
		},
		// No state income tax.
		"TX": {},
		"WA": {},
	}

	return USTax{
		FederalBrackets: c.schedule("USD",
			11600, 0.10,
			47150, 0.12,
			100525, 0.22,
			191950, 0.24,
			243725, 0.32,
			609350, 0.35,
			unbounded, 0.37,
		),
		StandardDeduction: decimal.NewFromInt(14600),
		SSWageBase:        decimal.NewFromInt(168600),
		SSRate:            rate(0.062),
		MedicareRate:      rate(0.0145),
		SurtaxThreshold:   decimal.NewFromInt(200000),
		SurtaxRate:        rate(0.009),
		States:            states,
		CityBrackets: map[string][]TaxBracket{
			"NYC": c.schedule("USD",
				12000, 0.03078,
				25000, 0.03762,
				50000, 0.03819,
				unbounded, 0.03876,
			),
		},
		DefaultState: "CA",
	}
}

// countryTaxes returns the per-country tax parameters, converted to USD.
func countryTaxes(fx map[string]decimal.Decimal) map[string]CountryTax {
	c := converter{fx: fx}

	return map[string]CountryTax{
		"UK": {
			Strategy: StrategyAllowanceTaper,
			Brackets: c.schedule("GBP",
				12570, 0.0,
				50270, 0.20,
				125140, 0.40,
				unbounded, 0.45,
			),
			Allowance:           c.usd("GBP", 12570),
			AllowanceTaperStart: c.usd("GBP", 100000),
			SocialBrackets: c.schedule("GBP",
				12570, 0.0,
				50270, 0.08,
				unbounded, 0.02,
			),
		},
		"Canada": {
			Strategy: StrategyCreditSystem,
			Brackets: c.schedule("CAD",
				55867, 0.15,
				111733, 0.205,
				154906, 0.26,
				220000, 0.29,
				unbounded, 0.33,
			),
			Allowance: c.usd("CAD", 15705),
			ProvincialBrackets: c.schedule("CAD",
				51446, 0.0505,
				102894, 0.0915,
				150000, 0.1116,
				220000, 0.1216,
				unbounded, 0.1316,
			),
			ProvincialAllowance: c.usd("CAD", 11865),
			PensionRate:         rate(0.0595),
			PensionMax:          c.usd("CAD", 3867),
			UnemploymentRate:    rate(0.0166),
			UnemploymentMax:     c.usd("CAD", 1049),
			SurtaxThreshold1:    c.usd("CAD", 4991),
			SurtaxRate1:         rate(0.20),
			SurtaxThreshold2:    c.usd("CAD", 6387),
			SurtaxRate2:         rate(0.36),
			HealthPremiumTiers:  ontarioHealthPremium(c),
		},
		"Germany": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				11604, 0.0,
				17005, 0.14,
				66760, 0.24,
				277825, 0.42,
				unbounded, 0.45,
			),
			TaxSurchargeRate:   rate(0.055),
			SurchargeThreshold: c.usd("EUR", 18130),
			SocialRate:         rate(0.196),
			SocialWageCap:      c.usd("EUR", 90600),
		},
		"Switzerland": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("CHF",
				14500, 0.0,
				31600, 0.0077,
				41400, 0.0088,
				55200, 0.0264,
				72500, 0.0297,
				78100, 0.0522,
				103600, 0.066,
				134600, 0.088,
				176000, 0.11,
				755200, 0.13,
				unbounded, 0.115,
			),
			FlatRate:      rate(0.12), // Zurich cantonal + municipal effective rate
			SocialRate:    rate(0.134),
			SocialWageCap: c.usd("CHF", 148200),
		},
		"France": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				11294, 0.0,
				28797, 0.11,
				82341, 0.30,
				177106, 0.41,
				unbounded, 0.45,
			),
			GrossDeductionRate: rate(0.10),
			SocialRate:         rate(0.097),
		},
		"Netherlands": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				75518, 0.3693,
				unbounded, 0.495,
			),
		},
		"India": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("INR",
				300000, 0.0,
				700000, 0.05,
				1000000, 0.10,
				1200000, 0.15,
				1500000, 0.20,
				unbounded, 0.30,
			),
			TaxSurchargeRate: rate(0.04), // health and education cess
			SocialRate:       rate(0.06), // EPF effective rate
		},
		"Australia": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("AUD",
				18200, 0.0,
				45000, 0.16,
				135000, 0.30,
				190000, 0.37,
				unbounded, 0.45,
			),
			SocialRate: rate(0.02), // Medicare levy
		},
		"Singapore": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("SGD",
				20000, 0.0,
				30000, 0.02,
				40000, 0.035,
				80000, 0.07,
				120000, 0.115,
				160000, 0.15,
				200000, 0.18,
				240000, 0.19,
				280000, 0.195,
				320000, 0.20,
				unbounded, 0.22,
			),
			SocialRate:    rate(0.20),             // CPF employee share
			SocialWageCap: c.usd("SGD", 6800*12), // monthly ordinary wage ceiling
		},
		"Hong Kong": {
			Strategy: StrategyStandardRateCap,
			Brackets: c.schedule("HKD",
				50000, 0.02,
				100000, 0.06,
				150000, 0.10,
				200000, 0.14,
				unbounded, 0.17,
			),
			Allowance:        c.usd("HKD", 132000),
			StandardRateCap:  rate(0.15),
			SocialRate:       rate(0.05),            // MPF employee share
			SocialContribCap: c.usd("HKD", 1500*12), // monthly contribution cap
		},
		"Japan": {
			Strategy: StrategyEmploymentDeduction,
			Brackets: c.schedule("JPY",
				1950000, 0.05,
				3300000, 0.10,
				6950000, 0.20,
				9000000, 0.23,
				18000000, 0.33,
				40000000, 0.40,
				unbounded, 0.45,
			),
			TaxSurchargeRate:           rate(0.021), // reconstruction surtax
			LocalRate:                  rate(0.10),  // resident tax
			EmploymentDeductionLow:     c.usd("JPY", 550000),
			EmploymentDeductionMidAdd:  c.usd("JPY", 440000),
			EmploymentDeductionMidRate: rate(0.2),
			EmploymentDeductionHigh:    c.usd("JPY", 1950000),
			LowIncomeThreshold:         c.usd("JPY", 1625000),
			HighIncomeThreshold:        c.usd("JPY", 8500000),
			BasicExemption:             c.usd("JPY", 480000),
			SocialRate:                 rate(0.145),
			SocialWageCap:              c.usd("JPY", 1390000*12),
		},
		"South Korea": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("KRW",
				14000000, 0.06,
				50000000, 0.15,
				88000000, 0.24,
				150000000, 0.35,
				300000000, 0.38,
				500000000, 0.40,
				1000000000, 0.42,
				unbounded, 0.45,
			),
			TaxSurchargeRate: rate(0.10), // local income tax as share of national
			SocialRate:       rate(0.094),
			SocialWageCap:    c.usd("KRW", 5900000*12),
		},
		"Israel": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("ILS",
				81480, 0.10,
				116760, 0.14,
				167880, 0.20,
				241680, 0.31,
				502920, 0.35,
				647640, 0.47,
				unbounded, 0.50,
			),
			SocialRate: rate(0.12), // national insurance + health
		},
		"China": {
			Strategy: StrategyDeductionFirst,
			Brackets: c.schedule("CNY",
				36000, 0.03,
				144000, 0.10,
				300000, 0.20,
				420000, 0.25,
				660000, 0.30,
				960000, 0.35,
				unbounded, 0.45,
			),
			Allowance:     c.usd("CNY", 60000),
			SocialRate:    rate(0.105),
			SocialWageCap: c.usd("CNY", 360000),
		},
		"Sweden": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("SEK",
				598500, 0.0,
				unbounded, 0.20, // state tax above threshold
			),
			FlatRate:      rate(0.32), // municipal
			SocialRate:    rate(0.07), // employee pension
			SocialWageCap: c.usd("SEK", 599250),
		},
		"Denmark": {
			Strategy:      StrategyLaborMarketLevy,
			LevyRate:      rate(0.08), // AM-bidrag
			Allowance:     c.usd("DKK", 49700),
			MunicipalRate: rate(0.25),
			BottomRate:    rate(0.1209),
			TopThreshold:  c.usd("DKK", 588900),
			TopRate:       rate(0.15),
			CeilingRate:   rate(0.5207),
			FixedAnnual:   c.usd("DKK", 3408), // ATP
		},
		"Norway": {
			Strategy: StrategyDualBase,
			Brackets: c.schedule("NOK", // trinnskatt on full gross
				208050, 0.0,
				292850, 0.017,
				670000, 0.04,
				937900, 0.136,
				1350000, 0.166,
				unbounded, 0.176,
			),
			Allowance:  c.usd("NOK", 109950),
			FlatRate:   rate(0.22), // ordinary income tax
			SocialRate: rate(0.079),
		},
		"Finland": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				19900, 0.0,
				29700, 0.1264,
				49000, 0.2132,
				85800, 0.3012,
				unbounded, 0.4412,
			),
			FlatRate:   rate(0.20), // average municipal rate
			SocialRate: rate(0.106),
		},
		"Belgium": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				15200, 0.25,
				26830, 0.40,
				46440, 0.45,
				unbounded, 0.50,
			),
			Allowance:        c.usd("EUR", 10160),
			TaxSurchargeRate: rate(0.07), // municipal surcharge
			SocialRate:       rate(0.1307),
		},
		"Austria": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				11693, 0.0,
				19134, 0.20,
				32075, 0.30,
				62080, 0.40,
				93120, 0.48,
				1000000, 0.50,
				unbounded, 0.55,
			),
			SocialRate:    rate(0.1812),
			SocialWageCap: c.usd("EUR", 78540),
		},
		"Italy": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				28000, 0.23,
				50000, 0.35,
				unbounded, 0.43,
			),
			FlatRate:   rate(0.025), // regional + municipal surcharge
			SocialRate: rate(0.0919),
		},
		"Spain": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				12450, 0.19,
				20200, 0.24,
				35200, 0.30,
				60000, 0.37,
				300000, 0.45,
				unbounded, 0.47,
			),
			Allowance:     c.usd("EUR", 5550),
			SocialRate:    rate(0.0635),
			SocialWageCap: c.usd("EUR", 56844),
		},
		"Portugal": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EUR",
				7703, 0.1325,
				11623, 0.18,
				16472, 0.23,
				21321, 0.26,
				27146, 0.3275,
				39791, 0.37,
				51997, 0.435,
				81199, 0.45,
				unbounded, 0.48,
			),
			SocialRate: rate(0.11),
		},
		"Poland": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("PLN",
				120000, 0.12,
				unbounded, 0.32,
			),
			Allowance:       c.usd("PLN", 30000),
			SocialRate:      rate(0.1371),
			SocialWageCap:   c.usd("PLN", 234720),
			HealthOnNetRate: rate(0.09),
		},
		"Czech Republic": {
			Strategy: StrategyTwoTierFlat,
			Brackets: c.schedule("CZK",
				1935552, 0.15,
				unbounded, 0.23,
			),
			SocialRate: rate(0.11),
		},
		"Estonia": {
			Strategy:   StrategyFlatAboveExemption,
			Allowance:  c.usd("EUR", 7848),
			FlatRate:   rate(0.20),
			SocialRate: rate(0.036),
		},
		"New Zealand": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("NZD",
				14000, 0.105,
				48000, 0.175,
				70000, 0.30,
				180000, 0.33,
				unbounded, 0.39,
			),
			SocialRate: rate(0.016), // ACC levy
		},
		"Taiwan": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("TWD",
				560000, 0.05,
				1260000, 0.12,
				2520000, 0.20,
				4720000, 0.30,
				unbounded, 0.40,
			),
			Allowance:  c.usd("TWD", 124000),
			SocialRate: rate(0.035),
		},
		"Saudi Arabia": {
			Strategy:   StrategySocialOnly,
			SocialRate: rate(0.0975), // GOSI
		},
		"UAE": {
			Strategy: StrategyZeroTax,
		},
		"South Africa": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("ZAR",
				237100, 0.18,
				370500, 0.26,
				512800, 0.31,
				673000, 0.36,
				857900, 0.39,
				1817000, 0.41,
				unbounded, 0.45,
			),
			TaxCredit:        c.usd("ZAR", 17235), // primary rebate
			SocialRate:       rate(0.01),          // UIF
			SocialContribCap: c.usd("ZAR", 177.12*12),
		},
		"Egypt": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("EGP",
				40000, 0.0,
				55000, 0.10,
				70000, 0.15,
				200000, 0.20,
				400000, 0.225,
				unbounded, 0.25,
			),
			SocialRate: rate(0.11),
		},
		"Brazil": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("BRL",
				26963.20, 0.0,
				33919.80, 0.075,
				45012.60, 0.15,
				55976.16, 0.225,
				unbounded, 0.275,
			),
			SocialRate:       rate(0.11), // INSS
			SocialContribCap: c.usd("BRL", 908.85*12),
		},
		"Mexico": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("MXN",
				8952.49, 0.0192,
				75984.55, 0.064,
				133536.07, 0.1088,
				155229.80, 0.16,
				185852.57, 0.1792,
				374837.88, 0.2136,
				590795.99, 0.2352,
				1127926.84, 0.30,
				1503902.46, 0.32,
				4511707.37, 0.34,
				unbounded, 0.35,
			),
			SocialRate: rate(0.03), // IMSS employee share
		},
		"Chile": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("CLP",
				8775900, 0.0,
				19502000, 0.04,
				32503333, 0.08,
				45504667, 0.135,
				58506000, 0.23,
				78008000, 0.304,
				unbounded, 0.35,
			),
			SocialRate: rate(0.125), // AFP pension incl. commission
		},
		"Colombia": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("COP",
				49869000, 0.0,
				77755000, 0.19,
				165413000, 0.28,
				365542000, 0.33,
				unbounded, 0.35,
			),
			SocialRate: rate(0.08), // pension + health
		},
		"Pakistan": {
			Strategy: StrategyStandard,
			Brackets: c.schedule("PKR",
				600000, 0.0,
				1200000, 0.05,
				2200000, 0.15,
				3200000, 0.25,
				4100000, 0.30,
				unbounded, 0.35,
			),
		},
	}
}

// ontarioHealthPremium builds the Ontario Health Premium tiers in USD.
// The schedule is legislated in CAD; tier bounds, caps, and bases convert
// with the exchange rate while the marginal rates are scale-free.
func ontarioHealthPremium(c converter) []PremiumTier {
	cad := func(v float64) decimal.Decimal { return c.usd("CAD", v) }
	return []PremiumTier{
		{UpTo: cad(20000)},
		{UpTo: cad(36000), From: cad(20000), Rate: rate(0.06), Cap: cad(300)},
		{UpTo: cad(48000), From: cad(36000), Base: cad(300), Rate: rate(0.06), Cap: cad(150)},
		{UpTo: cad(72000), From: cad(48000), Base: cad(450), Rate: rate(0.0625), Cap: cad(150)},
		{UpTo: cad(200000), From: cad(72000), Base: cad(600), Rate: rate(0.25), Cap: cad(300)},
		{UpTo: Unbounded, Base: cad(900)},
	}
}
