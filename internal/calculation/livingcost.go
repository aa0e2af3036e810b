package calculation

import (
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// LivingCostResolver resolves annual living costs from the city tables
// with country-level fallbacks.
type LivingCostResolver struct {
	data   *refdata.Dataset
	logger Logger
}

// NewLivingCostResolver creates a resolver over the given reference data.
func NewLivingCostResolver(data *refdata.Dataset, logger Logger) *LivingCostResolver {
	if logger == nil {
		logger = NopLogger{}
	}
	return &LivingCostResolver{data: data, logger: logger}
}

// Annual resolves the annual living cost in $K for a work location.
// Resolution order: exact city, the country's default city, the
// study-country table, then the generic fallback.
func (r *LivingCostResolver) Annual(city, country string, lifestyle domain.Lifestyle, household domain.Household) money.Amount {
	if cost, ok := r.data.CityCosts[city]; ok {
		return pickCost(cost, lifestyle, household)
	}
	if defaultCity, ok := r.data.CountryDefaultCity[country]; ok {
		if cost, ok := r.data.CityCosts[defaultCity]; ok {
			return pickCost(cost, lifestyle, household)
		}
	}
	if cost, ok := r.data.StudyCountryCosts[country]; ok {
		return pickCost(cost, lifestyle, household)
	}
	r.logger.Debugf("no living cost table for %s/%s, using generic fallback", city, country)
	return pickCost(r.data.GenericCost, lifestyle, household)
}

// StudyAnnual resolves the annual student living cost in $K for a study
// country. The study-country table takes precedence over the default-city
// table here because study destinations include countries with no work
// market in the city tables.
func (r *LivingCostResolver) StudyAnnual(country string, lifestyle domain.Lifestyle) money.Amount {
	if cost, ok := r.data.StudyCountryCosts[country]; ok {
		return pickCost(cost, lifestyle, domain.HouseholdStudent)
	}
	if defaultCity, ok := r.data.CountryDefaultCity[country]; ok {
		if cost, ok := r.data.CityCosts[defaultCity]; ok {
			return pickCost(cost, lifestyle, domain.HouseholdStudent)
		}
	}
	r.logger.Debugf("no study living cost table for %s, using generic fallback", country)
	return pickCost(r.data.GenericCost, lifestyle, domain.HouseholdStudent)
}

// HomeAnnual resolves the annual living cost in $K for the stay-home
// baseline and the home-career track.
func (r *LivingCostResolver) HomeAnnual(lifestyle domain.Lifestyle, household domain.Household) money.Amount {
	return pickCost(r.data.CityCosts["Pakistan"], lifestyle, household)
}

func pickCost(cost refdata.LivingCost, lifestyle domain.Lifestyle, household domain.Household) money.Amount {
	tier := cost.Frugal
	if lifestyle == domain.LifestyleComfortable {
		tier = cost.Comfortable
	}
	switch household {
	case domain.HouseholdStudent:
		return tier.Student
	case domain.HouseholdFamily:
		return tier.Family
	default:
		return tier.Single
	}
}
