package domain

import "fmt"

// Performance, risk, language, and aptitude levels accepted on a profile.
var (
	ValidPerformance = []string{"top", "strong", "average", "below"}
	ValidRisk        = []string{"high", "moderate", "low"}
	ValidEnglish     = []string{"native", "professional", "intermediate", "basic"}
	ValidQuant       = []string{"strong", "moderate", "weak"}
)

// UserProfile captures the factors the calibration engine turns into edge
// multipliers. Pointer fields are optional; nil means not supplied.
type UserProfile struct {
	YearsExperience     float64  `yaml:"years_experience" json:"years_experience" validate:"gte=0"`
	PerformanceRating   string   `yaml:"performance_rating" json:"performance_rating" validate:"oneof=top strong average below"`
	RiskTolerance       string   `yaml:"risk_tolerance" json:"risk_tolerance" validate:"oneof=high moderate low"`
	AvailableSavingsUSD float64  `yaml:"available_savings_usd" json:"available_savings_usd" validate:"gte=0"`
	EnglishLevel        string   `yaml:"english_level" json:"english_level" validate:"oneof=native professional intermediate basic"`
	GPA                 *float64 `yaml:"gpa,omitempty" json:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	GREScore            *int     `yaml:"gre_score,omitempty" json:"gre_score,omitempty" validate:"omitempty,gte=260,lte=340"`
	IELTSScore          *float64 `yaml:"ielts_score,omitempty" json:"ielts_score,omitempty" validate:"omitempty,gte=0,lte=9"`
	HasPublications     bool     `yaml:"has_publications" json:"has_publications"`
	HasFreelanceProfile bool     `yaml:"has_freelance_profile" json:"has_freelance_profile"`
	HasSideProjects     bool     `yaml:"has_side_projects" json:"has_side_projects"`
	QuantAptitude       string   `yaml:"quant_aptitude" json:"quant_aptitude" validate:"oneof=strong moderate weak"`
	CurrentSalaryPKR    float64  `yaml:"current_salary_pkr" json:"current_salary_pkr" validate:"gte=0"`
}

// DefaultProfile returns the baseline profile: every multiplier rule
// evaluates to 1.0 against it.
func DefaultProfile() UserProfile {
	gpa := 3.5
	return UserProfile{
		YearsExperience:     2.0,
		PerformanceRating:   "strong",
		RiskTolerance:       "moderate",
		AvailableSavingsUSD: 5000,
		EnglishLevel:        "professional",
		GPA:                 &gpa,
		QuantAptitude:       "moderate",
		CurrentSalaryPKR:    220000,
	}
}

// Validate checks enum and range constraints, returning the first
// violation.
func (p UserProfile) Validate() error {
	if !contains(ValidPerformance, p.PerformanceRating) {
		return fmt.Errorf("performance_rating must be one of %v, got %q", ValidPerformance, p.PerformanceRating)
	}
	if !contains(ValidRisk, p.RiskTolerance) {
		return fmt.Errorf("risk_tolerance must be one of %v, got %q", ValidRisk, p.RiskTolerance)
	}
	if !contains(ValidEnglish, p.EnglishLevel) {
		return fmt.Errorf("english_level must be one of %v, got %q", ValidEnglish, p.EnglishLevel)
	}
	if !contains(ValidQuant, p.QuantAptitude) {
		return fmt.Errorf("quant_aptitude must be one of %v, got %q", ValidQuant, p.QuantAptitude)
	}
	if p.YearsExperience < 0 {
		return fmt.Errorf("years_experience must be >= 0")
	}
	if p.AvailableSavingsUSD < 0 {
		return fmt.Errorf("available_savings_usd must be >= 0")
	}
	if p.GPA != nil && (*p.GPA < 0 || *p.GPA > 4.0) {
		return fmt.Errorf("gpa must be between 0 and 4.0")
	}
	if p.GREScore != nil && (*p.GREScore < 260 || *p.GREScore > 340) {
		return fmt.Errorf("gre_score must be between 260 and 340")
	}
	if p.IELTSScore != nil && (*p.IELTSScore < 0 || *p.IELTSScore > 9.0) {
		return fmt.Errorf("ielts_score must be between 0 and 9.0")
	}
	return nil
}

func contains(valid []string, v string) bool {
	for _, s := range valid {
		if s == v {
			return true
		}
	}
	return false
}
