package refdata

// marketMap returns the direct market-descriptor lookups. Descriptors are
// free text from program records; unmapped ones fall through to the
// keyword heuristic or the origin country.
func marketMap() map[string]MarketInfo {
	m := func(country, city, state string) MarketInfo {
		return MarketInfo{WorkCountry: country, WorkCity: city, USState: state}
	}
	return map[string]MarketInfo{
		// USA markets
		"USA (Bay Area)":            m("USA", "Bay Area", "CA"),
		"USA (Bay Area reloc.)":     m("USA", "Bay Area", "CA"),
		"USA (Bay Area/NYC)":        m("USA", "Bay Area", "CA"),
		"USA (SF/NYC)":              m("USA", "Bay Area", "CA"),
		"USA (LA/Bay Area)":         m("USA", "Los Angeles", "CA"),
		"USA (Los Angeles)":         m("USA", "Los Angeles", "CA"),
		"USA (San Diego/Bay Area)":  m("USA", "San Diego", "CA"),
		"USA (NYC)":                 m("USA", "NYC", "NY"),
		"USA (NYC/Global)":          m("USA", "NYC", "NY"),
		"USA (NYC/National)":        m("USA", "NYC", "NY"),
		"USA (NYC/NJ)":              m("USA", "NYC", "NY"),
		"USA (NYC/Chicago)":         m("USA", "NYC", "NY"),
		"USA (NJ/NYC)":              m("USA", "NYC", "NJ"),
		"USA (Boston)":              m("USA", "Boston", "MA"),
		"USA (Boston/National)":     m("USA", "Boston", "MA"),
		"USA (Chicago/NYC)":         m("USA", "Chicago", "IL"),
		"USA (DC)":                  m("USA", "DC", "DC"),
		"USA (Baltimore/DC)":        m("USA", "DC", "MD"),
		"USA (Pittsburgh/National)": m("USA", "Pittsburgh", "PA"),
		"USA (Seattle/National)":    m("USA", "Seattle", "WA"),
		"USA (Midwest)":             m("USA", "Chicago", "IL"),
		"USA (Midwest/National)":    m("USA", "Chicago", "IL"),
		"USA (Northeast)":           m("USA", "Boston", "MA"),
		"USA (National)":            m("USA", "Bay Area", "CA"),
		"USA (National/Remote)":     m("USA", "Bay Area", "CA"),
		"USA / Global":              m("USA", "Bay Area", "CA"),
		// UK markets
		"London":                     m("UK", "London", ""),
		"London (City)":              m("UK", "London", ""),
		"London (City) / Global":     m("UK", "London", ""),
		"London / Global":            m("UK", "London", ""),
		"London / NY / HK / Paris":   m("UK", "London", ""),
		"London / Paris":             m("UK", "London", ""),
		"Bristol / London":           m("UK", "London", ""),
		"Bristol / SW England":       m("UK", "Bristol", ""),
		"Edinburgh / London":         m("UK", "London", ""),
		"E Midlands / London":        m("UK", "London", ""),
		"Midlands / London":          m("UK", "London", ""),
		"W Midlands / London":        m("UK", "London", ""),
		"Leeds / Yorkshire":          m("UK", "Leeds", ""),
		"Manchester":                 m("UK", "Manchester", ""),
		"Manchester / London":        m("UK", "London", ""),
		"Sheffield / Yorkshire":      m("UK", "Sheffield", ""),
		"Glasgow / Scotland":         m("UK", "Glasgow", ""),
		"SE England / London":        m("UK", "London", ""),
		"UK / Global":                m("UK", "London", ""),
		// Canada markets
		"Canada (Toronto GTA)":       m("Canada", "Toronto", ""),
		"Canada (Toronto reloc)":     m("Canada", "Toronto", ""),
		"Canada (Vancouver)":         m("Canada", "Vancouver", ""),
		"Canada (Ottawa)":            m("Canada", "Ottawa", ""),
		"Canada (Edmonton)":          m("Canada", "Edmonton", ""),
		"Canada (Halifax → Toronto)": m("Canada", "Toronto", ""),
		"Canada / Global":            m("Canada", "Toronto", ""),
		"Canada / USA":               m("Canada", "Toronto", ""),
		"Canada / USA (Seattle)":     m("USA", "Seattle", "WA"),
		"Canada / USA (reloc)":       m("USA", "Bay Area", "CA"),
		// Germany markets
		"Aachen / Germany":      m("Germany", "Aachen", ""),
		"Berlin":                m("Germany", "Berlin", ""),
		"Cologne / Düsseldorf":  m("Germany", "Cologne", ""),
		"Dresden / Saxony":      m("Germany", "Dresden", ""),
		"Hamburg":               m("Germany", "Hamburg", ""),
		"Karlsruhe / Stuttgart": m("Germany", "Stuttgart", ""),
		"Munich":                m("Germany", "Munich", ""),
		"Munich / Germany":      m("Germany", "Munich", ""),
		"Stuttgart":             m("Germany", "Stuttgart", ""),
		"Germany (research)":    m("Germany", "Berlin", ""),
		// Switzerland markets
		"Zurich":                   m("Switzerland", "Zurich", ""),
		"Zurich / EU":              m("Switzerland", "Zurich", ""),
		"Zurich / London":          m("Switzerland", "Zurich", ""),
		"Zurich / London / Global": m("Switzerland", "Zurich", ""),
		"Zurich / London / Paris":  m("Switzerland", "Zurich", ""),
		"Geneva / Lausanne":        m("Switzerland", "Geneva", ""),
		"Lausanne / Global":        m("Switzerland", "Lausanne", ""),
		"Lausanne / Zurich":        m("Switzerland", "Zurich", ""),
		// Netherlands markets
		"Amsterdam":                 m("Netherlands", "Amsterdam", ""),
		"Eindhoven / Brainport":     m("Netherlands", "Eindhoven", ""),
		"Groningen → Amsterdam":     m("Netherlands", "Amsterdam", ""),
		"Leiden / The Hague":        m("Netherlands", "The Hague", ""),
		"Maastricht / Cross-border": m("Netherlands", "Maastricht", ""),
		"Rotterdam / Amsterdam":     m("Netherlands", "Amsterdam", ""),
		"Utrecht / Amsterdam":       m("Netherlands", "Amsterdam", ""),
		// France markets
		"Paris / EU":                          m("France", "Paris", ""),
		"Paris / Global (academia/intl orgs)": m("France", "Paris", ""),
		"Paris / London":                      m("France", "Paris", ""),
		"Paris / London / Singapore":          m("France", "Paris", ""),
		// Italy markets
		"Bologna / Milan":         m("Italy", "Milan", ""),
		"Milan":                   m("Italy", "Milan", ""),
		"Milan / International":   m("Italy", "Milan", ""),
		"Milan / London / Zurich": m("Italy", "Milan", ""),
		"Rome":                    m("Italy", "Rome", ""),
		// Spain markets
		"Barcelona":       m("Spain", "Barcelona", ""),
		"Madrid":          m("Spain", "Madrid", ""),
		"Madrid / London": m("Spain", "Madrid", ""),
		// Scandinavia markets
		"Copenhagen":          m("Denmark", "Copenhagen", ""),
		"Gothenburg":          m("Sweden", "Gothenburg", ""),
		"Helsinki":            m("Finland", "Helsinki", ""),
		"Lund / Stockholm":    m("Sweden", "Stockholm", ""),
		"Oslo / Trondheim":    m("Norway", "Oslo", ""),
		"Stockholm":           m("Sweden", "Stockholm", ""),
		"Uppsala / Stockholm": m("Sweden", "Stockholm", ""),
		// Belgium markets
		"Ghent / Flanders":  m("Belgium", "Ghent", ""),
		"Leuven / Brussels": m("Belgium", "Brussels", ""),
		// Other Europe
		"Vienna":          m("Austria", "Vienna", ""),
		"Lisbon":          m("Portugal", "Lisbon", ""),
		"Tallinn / Tartu": m("Estonia", "Tallinn", ""),
		"Prague":          m("Czech Republic", "Prague", ""),
		"Krakow":          m("Poland", "Krakow", ""),
		"Warsaw":          m("Poland", "Warsaw", ""),
		// Australia markets
		"Adelaide / Melbourne": m("Australia", "Melbourne", ""),
		"Australia / Global":   m("Australia", "Sydney", ""),
		"Brisbane":             m("Australia", "Brisbane", ""),
		"Melbourne":            m("Australia", "Melbourne", ""),
		"Perth":                m("Australia", "Perth", ""),
		"Sydney":               m("Australia", "Sydney", ""),
		// New Zealand markets
		"Auckland":            m("New Zealand", "Auckland", ""),
		"Hamilton / Auckland": m("New Zealand", "Auckland", ""),
		// India markets
		"India":                     m("India", "Bangalore", ""),
		"India / Global (academia)": m("India", "Bangalore", ""),
		"India / USA":               m("India", "Bangalore", ""),
		"India / USA (25% migrate)": m("India", "Bangalore", ""),
		"India / USA / UK":          m("India", "Bangalore", ""),
		// Singapore / Hong Kong markets
		"Singapore":          m("Singapore", "Singapore", ""),
		"Singapore / Global": m("Singapore", "Singapore", ""),
		"Hong Kong":          m("Hong Kong", "Hong Kong", ""),
		"Hong Kong / GBA":    m("Hong Kong", "Hong Kong", ""),
		// Israel markets
		"Beer Sheva / TLV":     m("Israel", "Tel Aviv", ""),
		"Israel (Haifa / TLV)": m("Israel", "Tel Aviv", ""),
		"Israel (TLV)":         m("Israel", "Tel Aviv", ""),
		"Jerusalem / TLV":      m("Israel", "Tel Aviv", ""),
		"Ramat Gan / TLV":      m("Israel", "Tel Aviv", ""),
		"Tel Aviv":             m("Israel", "Tel Aviv", ""),
		// Japan / Korea / China / Taiwan
		"Tokyo":                     m("Japan", "Tokyo", ""),
		"Osaka / Tokyo":             m("Japan", "Tokyo", ""),
		"Kyoto / Osaka / Tokyo":     m("Japan", "Tokyo", ""),
		"Seoul":                     m("South Korea", "Seoul", ""),
		"Seoul (relocate)":          m("South Korea", "Seoul", ""),
		"Korea / Global":            m("South Korea", "Seoul", ""),
		"Beijing":                   m("China", "Beijing", ""),
		"Shanghai":                  m("China", "Shanghai", ""),
		"Hangzhou / Shanghai":       m("China", "Shanghai", ""),
		"China":                     m("China", "Beijing", ""),
		"Taipei / Hsinchu":          m("Taiwan", "Taipei", ""),
		"Taipei / Hsinchu / Global": m("Taiwan", "Taipei", ""),
		// Middle East / Africa
		"Saudi Arabia (Thuwal)":           m("Saudi Arabia", "Jeddah", ""),
		"Gulf States (relocated)":         m("UAE", "Dubai", ""),
		"Egypt → Gulf States":             m("Egypt", "Cairo", ""),
		"Cape Town":                       m("South Africa", "Cape Town", ""),
		"Cape Town area":                  m("South Africa", "Cape Town", ""),
		"Johannesburg":                    m("South Africa", "Johannesburg", ""),
		"Pan-African / Intl (PhD launch)": m("South Africa", "Cape Town", ""),
		// Latin America
		"São Paulo":                   m("Brazil", "Sao Paulo", ""),
		"São Paulo / Rio":             m("Brazil", "Sao Paulo", ""),
		"Rio → Intl academia / quant": m("Brazil", "Rio de Janeiro", ""),
		"Mexico City":                 m("Mexico", "Mexico City", ""),
		"Mexico (nationwide)":         m("Mexico", "Mexico City", ""),
		"Mexico City → USA / EU":      m("Mexico", "Mexico City", ""),
		"Santiago":                    m("Chile", "Santiago", ""),
		"Bogotá":                      m("Colombia", "Bogota", ""),
	}
}

// usRegionKeywords returns the ordered keyword table for free-text US
// market descriptors. First substring match wins, so more specific
// keywords come before the catch-alls.
func usRegionKeywords() []RegionKeyword {
	return []RegionKeyword{
		{"bay area", "CA", "Bay Area"},
		{"sf", "CA", "Bay Area"},
		{"san francisco", "CA", "Bay Area"},
		{"silicon valley", "CA", "Bay Area"},
		{"la", "CA", "Los Angeles"},
		{"los angeles", "CA", "Los Angeles"},
		{"san diego", "CA", "San Diego"},
		{"nyc", "NY", "NYC"},
		{"new york", "NY", "NYC"},
		{"boston", "MA", "Boston"},
		{"chicago", "IL", "Chicago"},
		{"seattle", "WA", "Seattle"},
		{"dc", "DC", "DC"},
		{"washington", "DC", "DC"},
		{"baltimore", "MD", "Baltimore"},
		{"pittsburgh", "PA", "Pittsburgh"},
		{"nj", "NJ", "NYC"},
		{"new jersey", "NJ", "NYC"},
		{"midwest", "IL", "Chicago"},
		{"northeast", "MA", "Boston"},
		{"national", "CA", "Bay Area"},
		{"remote", "CA", "Bay Area"},
		{"global", "CA", "Bay Area"},
	}
}
