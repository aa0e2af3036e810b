package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func newLivingResolver(t *testing.T) *LivingCostResolver {
	t.Helper()
	return NewLivingCostResolver(refdata.Default(), nil)
}

func TestAnnualExactCity(t *testing.T) {
	living := newLivingResolver(t)

	tests := []struct {
		name      string
		lifestyle domain.Lifestyle
		household domain.Household
		want      float64
	}{
		{"frugal_student", domain.LifestyleFrugal, domain.HouseholdStudent, 25},
		{"frugal_single", domain.LifestyleFrugal, domain.HouseholdSingle, 42},
		{"frugal_family", domain.LifestyleFrugal, domain.HouseholdFamily, 95},
		{"comfortable_single", domain.LifestyleComfortable, domain.HouseholdSingle, 54},
		{"comfortable_family", domain.LifestyleComfortable, domain.HouseholdFamily, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := living.Annual("Seattle", "USA", tt.lifestyle, tt.household)
			assert.True(t, got.Equal(money.New(tt.want)), "got %s, want %v", got, tt.want)
		})
	}
}

func TestAnnualCountryDefaultCityFallback(t *testing.T) {
	living := newLivingResolver(t)

	// An unknown German city falls back to Berlin.
	got := living.Annual("Bielefeld", "Germany", domain.LifestyleFrugal, domain.HouseholdSingle)
	assert.True(t, got.Equal(money.New(26)), "got %s", got)
}

func TestAnnualStudyCountryFallback(t *testing.T) {
	living := newLivingResolver(t)

	// Lebanon's default city has no cost table, so the study-country
	// table applies.
	got := living.Annual("Beirut", "Lebanon", domain.LifestyleFrugal, domain.HouseholdSingle)
	assert.True(t, got.Equal(money.New(14)), "got %s", got)
}

func TestAnnualGenericFallback(t *testing.T) {
	living := newLivingResolver(t)

	got := living.Annual("Nowhere", "Atlantis", domain.LifestyleFrugal, domain.HouseholdSingle)
	assert.True(t, got.Equal(money.New(22)), "got %s", got)
}

func TestStudyAnnual(t *testing.T) {
	living := newLivingResolver(t)

	// The study-country table wins over the default city.
	egypt := living.StudyAnnual("Egypt", domain.LifestyleFrugal)
	assert.True(t, egypt.Equal(money.New(4)), "got %s", egypt)

	// Countries without a study entry use the default city's student tier.
	germany := living.StudyAnnual("Germany", domain.LifestyleFrugal)
	assert.True(t, germany.Equal(money.New(13)), "got %s", germany)

	// Last resort is the generic student cost.
	unknown := living.StudyAnnual("Atlantis", domain.LifestyleFrugal)
	assert.True(t, unknown.Equal(money.New(12)), "got %s", unknown)
}

func TestHomeAnnual(t *testing.T) {
	living := newLivingResolver(t)

	single := living.HomeAnnual(domain.LifestyleFrugal, domain.HouseholdSingle)
	assert.True(t, single.Equal(money.New(8.7)), "got %s", single)

	family := living.HomeAnnual(domain.LifestyleFrugal, domain.HouseholdFamily)
	assert.True(t, family.Equal(money.New(15.6)), "got %s", family)

	comfortable := living.HomeAnnual(domain.LifestyleComfortable, domain.HouseholdFamily)
	assert.True(t, comfortable.Equal(money.New(22)), "got %s", comfortable)
}
