package calculation

import (
	"strings"

	"github.com/Simba256/Decision-Tree/internal/refdata"
)

// MarketMapper resolves free-text market descriptors from program records
// into a concrete work country, city, and US state.
type MarketMapper struct {
	data   *refdata.Dataset
	logger Logger
}

// NewMarketMapper creates a mapper over the given reference data.
func NewMarketMapper(data *refdata.Dataset, logger Logger) *MarketMapper {
	if logger == nil {
		logger = NopLogger{}
	}
	return &MarketMapper{data: data, logger: logger}
}

// Resolve maps a market descriptor to a work location. An empty market
// means the graduate stays in the university's country; unknown US
// descriptors scan for region keywords; anything else falls back to the
// university country's default city.
func (m *MarketMapper) Resolve(market, universityCountry string) refdata.MarketInfo {
	if market == "" {
		country := universityCountry
		if country == "" {
			country = "USA"
		}
		return refdata.MarketInfo{WorkCountry: country, WorkCity: country}
	}

	if info, ok := m.data.MarketMap[market]; ok {
		return info
	}

	if strings.HasPrefix(market, "USA") {
		return m.resolveUSRegion(market)
	}

	m.logger.Debugf("unmapped market %q, using %s default city", market, universityCountry)
	city := universityCountry
	if defaultCity, ok := m.data.CountryDefaultCity[universityCountry]; ok {
		city = defaultCity
	}
	return refdata.MarketInfo{WorkCountry: universityCountry, WorkCity: city}
}

// resolveUSRegion scans a "USA (...)" descriptor for region keywords. The
// keyword list is ordered; the first substring match wins.
func (m *MarketMapper) resolveUSRegion(market string) refdata.MarketInfo {
	detail := strings.Trim(strings.ReplaceAll(market, "USA", ""), " ()")
	if detail == "" {
		return refdata.MarketInfo{WorkCountry: "USA", WorkCity: "Bay Area", USState: "CA"}
	}

	lower := strings.ToLower(detail)
	for _, kw := range m.data.USRegionKeywords {
		if strings.Contains(lower, kw.Keyword) {
			return refdata.MarketInfo{WorkCountry: "USA", WorkCity: kw.City, USState: kw.State}
		}
	}
	return refdata.MarketInfo{WorkCountry: "USA", WorkCity: "Bay Area", USState: "CA"}
}

// StudyCountry maps a university country to the country whose living
// costs apply during study. Multi-country programs are costed at their
// first campus.
func (m *MarketMapper) StudyCountry(universityCountry string) string {
	if universityCountry == "Multi-country" {
		return "France"
	}
	return universityCountry
}
