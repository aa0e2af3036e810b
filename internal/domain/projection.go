package domain

import (
	"github.com/shopspring/decimal"

	"github.com/Simba256/Decision-Tree/pkg/money"
)

// Phase labels which stage of a track a ledger year belongs to.
type Phase string

const (
	PhaseStudy Phase = "study"
	PhaseWork  Phase = "work"
)

// CashFlowYear is one row of a projection ledger. All amounts are annual
// $K USD; Cumulative carries the running savings balance including any
// upfront capital outlay.
type CashFlowYear struct {
	Year       int          `json:"year"`
	Phase      Phase        `json:"phase"`
	Household  Household    `json:"household"`
	Gross      money.Amount `json:"gross"`
	AfterTax   money.Amount `json:"after_tax"`
	LivingCost money.Amount `json:"living"`
	Tuition    money.Amount `json:"tuition"`
	Ongoing    money.Amount `json:"ongoing_cost"`
	Savings    money.Amount `json:"annual_savings"`
	Cumulative money.Amount `json:"cumulative"`
}

// TaxPaid returns the tax implied by the gross and after-tax amounts.
func (y CashFlowYear) TaxPaid() money.Amount {
	return y.Gross.Sub(y.AfterTax)
}

// BaselineResult is the stay-home counterfactual a track is compared
// against.
type BaselineResult struct {
	TotalSavingsK money.Amount   `json:"total_savings_k"`
	Years         []CashFlowYear `json:"years"`
}

// ProgramProjection is the full result of projecting one graduate program
// under one aid scenario.
type ProgramProjection struct {
	ProgramID   string      `json:"program_id"`
	University  string      `json:"university"`
	Program     string      `json:"program"`
	Field       string      `json:"field"`
	Tier        string      `json:"tier"`
	AidScenario AidScenario `json:"aid_scenario"`
	Lifestyle   Lifestyle   `json:"lifestyle"`

	WorkCountry string `json:"work_country"`
	WorkCity    string `json:"work_city"`
	USState     string `json:"us_state,omitempty"`

	TuitionPaidK      money.Amount `json:"tuition_paid_k"`
	ScholarshipK      money.Amount `json:"scholarship_k"`
	InitialCapitalUSD money.Amount `json:"initial_capital_usd"`
	StudyCostK        money.Amount `json:"study_cost_k"`
	StudyLivingK      money.Amount `json:"study_living_k"`
	CoopAppliedK      money.Amount `json:"coop_applied_k"`
	WorkSavingsK      money.Amount `json:"work_savings_k"`

	NetWorthK   money.Amount `json:"networth_k"`
	BaselineK   money.Amount `json:"baseline_k"`
	NetBenefitK money.Amount `json:"net_benefit_k"`

	EffectiveTaxY1  decimal.Decimal `json:"effective_tax_y1"`
	EffectiveTaxY10 decimal.Decimal `json:"effective_tax_y10"`

	Years []CashFlowYear `json:"years"`
}

// Beats reports whether the program outperforms the baseline.
func (p ProgramProjection) Beats() bool {
	return p.NetBenefitK.IsPositive()
}

// CareerProjection is the result of projecting one career-graph node over
// the home-career horizon.
type CareerProjection struct {
	NodeID    string    `json:"node_id"`
	Label     string    `json:"label"`
	NodeType  NodeType  `json:"node_type"`
	Lifestyle Lifestyle `json:"lifestyle"`

	InitialCapitalK money.Amount `json:"initial_capital_k"`
	OngoingAnnualK  money.Amount `json:"ongoing_annual_k"`
	Year10IncomeK   money.Amount `json:"year10_income_k"`

	NetWorthK   money.Amount `json:"networth_k"`
	BaselineK   money.Amount `json:"baseline_k"`
	NetBenefitK money.Amount `json:"net_benefit_k"`

	EffectiveTaxY1  decimal.Decimal `json:"effective_tax_y1"`
	EffectiveTaxY10 decimal.Decimal `json:"effective_tax_y10"`

	ParentEdges []ParentEdge   `json:"parent_edges,omitempty"`
	Years       []CashFlowYear `json:"years"`
}

// GroupStat summarizes net benefit across one grouping key.
type GroupStat struct {
	Avg   money.Amount `json:"avg"`
	Count int          `json:"count"`
	Min   money.Amount `json:"min"`
	Max   money.Amount `json:"max"`
}

// RankedProgram is the condensed view used in top/bottom lists.
type RankedProgram struct {
	University  string       `json:"university"`
	Program     string       `json:"program"`
	Field       string       `json:"field"`
	WorkCountry string       `json:"work_country"`
	NetBenefitK money.Amount `json:"net_benefit_k"`
}

// ProgramRanking is the batch result over all programs: projections sorted
// by net benefit plus grouped summaries.
type ProgramRanking struct {
	BaselineK     money.Amount         `json:"baseline_k"`
	Projections   []ProgramProjection  `json:"projections"`
	Total         int                  `json:"total"`
	PositiveCount int                  `json:"positive_count"`
	Top           []RankedProgram      `json:"top_5"`
	Bottom        []RankedProgram      `json:"bottom_5"`
	ByTier        map[string]GroupStat `json:"by_tier"`
	ByField       map[string]GroupStat `json:"by_field"`
	ByWorkCountry map[string]GroupStat `json:"by_work_country"`
	Assumptions   map[string]string    `json:"assumptions"`
}

// RankedNode is the condensed career-node view used in top/bottom lists.
type RankedNode struct {
	NodeID        string       `json:"node_id"`
	Label         string       `json:"label"`
	NodeType      NodeType     `json:"node_type"`
	Year10IncomeK money.Amount `json:"year10_income_k"`
	NetBenefitK   money.Amount `json:"net_benefit_k"`
}

// CareerRanking is the batch result over career-graph nodes.
type CareerRanking struct {
	BaselineK     money.Amount         `json:"baseline_k"`
	Projections   []CareerProjection   `json:"projections"`
	Total         int                  `json:"total"`
	PositiveCount int                  `json:"positive_count"`
	Top           []RankedNode         `json:"top_5"`
	Bottom        []RankedNode         `json:"bottom_5"`
	ByType        map[string]GroupStat `json:"by_type"`
	Assumptions   map[string]string    `json:"assumptions"`
}

// AffordabilityBand classifies a program against available savings.
type AffordabilityBand string

const (
	BandAffordable   AffordabilityBand = "affordable"
	BandStretch      AffordabilityBand = "stretch"
	BandNeedsFunding AffordabilityBand = "needs_funding"
)

// AffordabilityEntry is one program's capital requirement compared with
// the funds the user can raise before the program starts.
type AffordabilityEntry struct {
	ProgramID         string            `json:"program_id"`
	University        string            `json:"university"`
	Program           string            `json:"program"`
	NetBenefitK       money.Amount      `json:"net_benefit_k"`
	InitialCapitalUSD money.Amount      `json:"initial_capital_usd"`
	ShortfallUSD      money.Amount      `json:"shortfall_usd"`
	AffordabilityPct  money.Amount      `json:"affordability_pct"`
	Band              AffordabilityBand `json:"affordability_tier"`
}

// AffordabilityReport groups programs by how reachable their upfront
// capital is given current savings plus prep-period side income.
type AffordabilityReport struct {
	AvailableSavingsUSD  money.Amount         `json:"available_savings_usd"`
	MonthlySideIncomeUSD money.Amount         `json:"monthly_side_income_usd"`
	PrepMonths           int                  `json:"prep_months"`
	TotalAvailableUSD    money.Amount         `json:"total_available_usd"`
	AidScenario          AidScenario          `json:"aid_scenario"`
	Affordable           []AffordabilityEntry `json:"affordable"`
	Stretch              []AffordabilityEntry `json:"stretch"`
	NeedsFunding         []AffordabilityEntry `json:"needs_funding"`
}
