// Package domain defines the entities the projection and calibration
// engines operate on: graduate programs, career-graph nodes and edges, the
// user profile, and the projection ledgers they produce.
package domain

import (
	"fmt"

	"github.com/Simba256/Decision-Tree/pkg/money"
)

// Lifestyle selects the spending tier used for living costs.
type Lifestyle string

const (
	LifestyleFrugal      Lifestyle = "frugal"
	LifestyleComfortable Lifestyle = "comfortable"
)

// Household is the household shape a projection year is costed at.
type Household string

const (
	HouseholdStudent Household = "student"
	HouseholdSingle  Household = "single"
	HouseholdFamily  Household = "family"
)

// AidScenario selects which financial-aid assumption a program projection
// uses.
type AidScenario string

const (
	AidScenarioNone     AidScenario = "no_aid"
	AidScenarioExpected AidScenario = "expected"
	AidScenarioBestCase AidScenario = "best_case"
)

// AidType describes how a program's aid is granted. Guaranteed funding
// changes the upfront capital requirement, scholarships only reduce
// tuition.
type AidType string

const (
	AidTypeNone              AidType = "none"
	AidTypeScholarship       AidType = "scholarship"
	AidTypeGuaranteedFunding AidType = "guaranteed_funding"
)

// NodeType classifies career-graph nodes.
type NodeType string

const (
	NodeTypeCareer    NodeType = "career"
	NodeTypeTrading   NodeType = "trading"
	NodeTypeStartup   NodeType = "startup"
	NodeTypeFreelance NodeType = "freelance"
)

// EdgeType classifies career-graph edges. Only child edges participate in
// the sum-to-one constraint within a parent's group; the other kinds keep
// independent probabilities.
type EdgeType string

const (
	EdgeTypeChild      EdgeType = "child"
	EdgeTypeTransition EdgeType = "transition"
	EdgeTypeFallback   EdgeType = "fallback"
	EdgeTypeEnables    EdgeType = "enables"
)

// GraduateProgram is one graduate-study option: where it is, what it
// costs, and what the market it feeds pays.
type GraduateProgram struct {
	ID                string       `yaml:"id" json:"id"`
	University        string       `yaml:"university" json:"university"`
	Name              string       `yaml:"name" json:"program"`
	Field             string       `yaml:"field" json:"field"`
	Tier              string       `yaml:"tier" json:"tier"`
	UniversityCountry string       `yaml:"university_country" json:"university_country"`
	TuitionK          money.Amount `yaml:"tuition_k" json:"tuition_k"`
	DurationYears     float64      `yaml:"duration_years" json:"duration_years"`
	PrimaryMarket     string       `yaml:"primary_market" json:"primary_market"`
	Year1SalaryK      money.Amount `yaml:"year1_salary_k" json:"year1_salary_k"`
	Year5SalaryK      money.Amount `yaml:"year5_salary_k" json:"year5_salary_k"`
	Year10SalaryK     money.Amount `yaml:"year10_salary_k" json:"year10_salary_k"`
	AidType           AidType      `yaml:"aid_type" json:"aid_type"`
	ExpectedAidK      money.Amount `yaml:"expected_aid_k" json:"expected_aid_k"`
	BestCaseAidK      money.Amount `yaml:"best_case_aid_k" json:"best_case_aid_k"`
	CoopEarningsK     money.Amount `yaml:"coop_earnings_k" json:"coop_earnings_k"`
	InitialCapitalUSD money.Amount `yaml:"initial_capital_usd" json:"initial_capital_usd"`
	Notes             string       `yaml:"notes" json:"notes"`
}

// StudyYears returns the whole study years the program occupies. Programs
// default to two years when no duration is recorded.
func (p GraduateProgram) StudyYears() int {
	d := p.DurationYears
	if d <= 0 {
		d = 2.0
	}
	years := int(d)
	if years < 1 {
		years = 1
	}
	return years
}

// CareerNode is one outcome state in the home-career decision graph.
// Incomes are annual $K; capital and ongoing costs are recorded in full
// USD on the source records and converted by the engine.
type CareerNode struct {
	ID                string       `yaml:"id" json:"node_id"`
	Label             string       `yaml:"label" json:"label"`
	Type              NodeType     `yaml:"type" json:"node_type"`
	Phase             int          `yaml:"phase" json:"phase"`
	Year1IncomeK      money.Amount `yaml:"year1_income_k" json:"year1_income_k"`
	Year5IncomeK      money.Amount `yaml:"year5_income_k" json:"year5_income_k"`
	Year10IncomeK     money.Amount `yaml:"year10_income_k" json:"year10_income_k"`
	InitialCapitalUSD money.Amount `yaml:"initial_capital_usd" json:"initial_capital_usd"`
	OngoingMonthlyUSD money.Amount `yaml:"ongoing_monthly_usd" json:"ongoing_monthly_usd"`
	Notes             string       `yaml:"notes" json:"notes"`
}

// HasIncome reports whether the node carries any income signal worth
// projecting. Nodes with neither a first- nor tenth-year income are
// structural placeholders.
func (n CareerNode) HasIncome() bool {
	return !n.Year1IncomeK.IsZero() || !n.Year10IncomeK.IsZero()
}

// Edge is one directed link in the career graph with its base probability.
type Edge struct {
	SourceID    string   `yaml:"source" json:"source_id"`
	TargetID    string   `yaml:"target" json:"target_id"`
	Probability float64  `yaml:"probability" json:"probability"`
	Type        EdgeType `yaml:"type" json:"link_type"`
	Note        string   `yaml:"note,omitempty" json:"note,omitempty"`
}

// Graph bundles the career nodes and edges loaded from one input file.
type Graph struct {
	Nodes []CareerNode `yaml:"nodes" json:"nodes"`
	Edges []Edge       `yaml:"edges" json:"edges"`
}

// Node returns the node with the given ID.
func (g Graph) Node(id string) (CareerNode, error) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, nil
		}
	}
	return CareerNode{}, fmt.Errorf("career node %q not found", id)
}

// IsLeaf reports whether the node is not the source of any child edge.
// Leaves are terminal outcomes; interior nodes only route probability.
func (g Graph) IsLeaf(nodeID string) bool {
	for _, e := range g.Edges {
		if e.Type == EdgeTypeChild && e.SourceID == nodeID {
			return false
		}
	}
	return true
}

// ParentEdges returns the child edges that target the node, as
// (parent, probability) pairs.
func (g Graph) ParentEdges(nodeID string) []ParentEdge {
	var parents []ParentEdge
	for _, e := range g.Edges {
		if e.Type == EdgeTypeChild && e.TargetID == nodeID {
			parents = append(parents, ParentEdge{
				ParentID:    e.SourceID,
				Probability: e.Probability,
			})
		}
	}
	return parents
}

// ParentEdge is the inbound-probability view of a node used in career
// projections.
type ParentEdge struct {
	ParentID    string  `json:"parent_id"`
	Probability float64 `json:"probability"`
}
