// Package config loads the program catalog, career graph, and user
// profile from YAML input files and validates them before the engines
// see them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

// InputParser handles parsing of input data files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// programsFile is the YAML shape of the program catalog.
type programsFile struct {
	Programs []domain.GraduateProgram `yaml:"programs"`
}

// LoadPrograms loads the graduate program catalog from a YAML file
func (ip *InputParser) LoadPrograms(filename string) ([]domain.GraduateProgram, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file programsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePrograms(file.Programs); err != nil {
		return nil, fmt.Errorf("program validation failed: %w", err)
	}

	return file.Programs, nil
}

// LoadGraph loads the career decision graph from a YAML file
func (ip *InputParser) LoadGraph(filename string) (domain.Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Graph{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var graph domain.Graph
	if err := yaml.Unmarshal(data, &graph); err != nil {
		return domain.Graph{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateGraph(&graph); err != nil {
		return domain.Graph{}, fmt.Errorf("graph validation failed: %w", err)
	}

	return graph, nil
}

// LoadProfile loads the user profile from a YAML file. Missing fields
// fall back to the default profile.
func (ip *InputParser) LoadProfile(filename string) (domain.UserProfile, error) {
	profile := domain.DefaultProfile()

	data, err := os.ReadFile(filename)
	if err != nil {
		return profile, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return profile, fmt.Errorf("profile validation failed: %w", err)
	}

	return profile, nil
}

// ValidatePrograms validates the loaded program catalog
func (ip *InputParser) ValidatePrograms(programs []domain.GraduateProgram) error {
	if len(programs) == 0 {
		return fmt.Errorf("no programs provided")
	}

	seen := make(map[string]bool, len(programs))
	for i, p := range programs {
		if err := ip.validateProgram(&p); err != nil {
			return fmt.Errorf("program %d (%s) validation failed: %w", i, p.ID, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		seen[p.ID] = true
	}

	return nil
}

// validateProgram validates a single program's data
func (ip *InputParser) validateProgram(p *domain.GraduateProgram) error {
	if p.ID == "" {
		return fmt.Errorf("program id is required")
	}
	if p.University == "" {
		return fmt.Errorf("university is required")
	}
	if p.Name == "" {
		return fmt.Errorf("program name is required")
	}
	if p.UniversityCountry == "" {
		return fmt.Errorf("university country is required")
	}
	if p.TuitionK.IsNegative() {
		return fmt.Errorf("tuition cannot be negative")
	}
	if p.DurationYears < 0 || p.DurationYears > 6 {
		return fmt.Errorf("duration years must be between 0 and 6")
	}
	if p.Year1SalaryK.IsNegative() || p.Year5SalaryK.IsNegative() || p.Year10SalaryK.IsNegative() {
		return fmt.Errorf("salary anchors cannot be negative")
	}
	if p.Year1SalaryK.GreaterThan(p.Year5SalaryK) {
		return fmt.Errorf("year 5 salary cannot be less than year 1")
	}
	if p.Year5SalaryK.GreaterThan(p.Year10SalaryK) {
		return fmt.Errorf("year 10 salary cannot be less than year 5")
	}
	if p.ExpectedAidK.IsNegative() || p.BestCaseAidK.IsNegative() {
		return fmt.Errorf("aid amounts cannot be negative")
	}
	if p.ExpectedAidK.GreaterThan(p.BestCaseAidK) {
		return fmt.Errorf("best case aid cannot be less than expected aid")
	}
	if p.CoopEarningsK.IsNegative() {
		return fmt.Errorf("co-op earnings cannot be negative")
	}
	if p.InitialCapitalUSD.IsNegative() {
		return fmt.Errorf("initial capital cannot be negative")
	}

	switch p.AidType {
	case "", domain.AidTypeNone, domain.AidTypeScholarship, domain.AidTypeGuaranteedFunding:
	default:
		return fmt.Errorf("aid type must be 'none', 'scholarship', or 'guaranteed_funding'")
	}

	return nil
}

// ValidateGraph validates the loaded career graph
func (ip *InputParser) ValidateGraph(graph *domain.Graph) error {
	if len(graph.Nodes) == 0 {
		return fmt.Errorf("no career nodes provided")
	}

	ids := make(map[string]bool, len(graph.Nodes))
	for i, n := range graph.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d: id is required", i)
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true

		switch n.Type {
		case domain.NodeTypeCareer, domain.NodeTypeTrading, domain.NodeTypeStartup, domain.NodeTypeFreelance:
		default:
			return fmt.Errorf("node %s: type must be 'career', 'trading', 'startup', or 'freelance'", n.ID)
		}
		if n.Year1IncomeK.IsNegative() || n.Year5IncomeK.IsNegative() || n.Year10IncomeK.IsNegative() {
			return fmt.Errorf("node %s: income anchors cannot be negative", n.ID)
		}
		if n.InitialCapitalUSD.IsNegative() {
			return fmt.Errorf("node %s: initial capital cannot be negative", n.ID)
		}
		if n.OngoingMonthlyUSD.IsNegative() {
			return fmt.Errorf("node %s: ongoing monthly cost cannot be negative", n.ID)
		}
	}

	for i, e := range graph.Edges {
		if e.SourceID == "" || e.TargetID == "" {
			return fmt.Errorf("edge %d: source and target are required", i)
		}
		if !ids[e.SourceID] && e.SourceID != "root" {
			return fmt.Errorf("edge %d: unknown source node %q", i, e.SourceID)
		}
		if !ids[e.TargetID] {
			return fmt.Errorf("edge %d: unknown target node %q", i, e.TargetID)
		}
		if e.Probability < 0 || e.Probability > 1 {
			return fmt.Errorf("edge %d (%s -> %s): probability must be between 0 and 1", i, e.SourceID, e.TargetID)
		}
		switch e.Type {
		case domain.EdgeTypeChild, domain.EdgeTypeTransition, domain.EdgeTypeFallback, domain.EdgeTypeEnables:
		default:
			return fmt.Errorf("edge %d (%s -> %s): type must be 'child', 'transition', 'fallback', or 'enables'", i, e.SourceID, e.TargetID)
		}
	}

	return nil
}

// CreateExamplePrograms creates a small example program catalog
func (ip *InputParser) CreateExamplePrograms() []domain.GraduateProgram {
	return []domain.GraduateProgram{
		{
			ID:                "uw-cs-ms",
			University:        "University of Washington",
			Name:              "MS Computer Science",
			Field:             "CS",
			Tier:              "partial_aid",
			UniversityCountry: "USA",
			TuitionK:          money.New(50),
			DurationYears:     2.0,
			PrimaryMarket:     "USA (Seattle)",
			Year1SalaryK:      money.New(180),
			Year5SalaryK:      money.New(250),
			Year10SalaryK:     money.New(350),
			AidType:           domain.AidTypeScholarship,
			ExpectedAidK:      money.New(10),
			BestCaseAidK:      money.New(25),
		},
		{
			ID:                "kaust-cs-ms",
			University:        "KAUST",
			Name:              "MS Computer Science",
			Field:             "CS",
			Tier:              "fully_funded",
			UniversityCountry: "Saudi Arabia",
			TuitionK:          money.New(0),
			DurationYears:     2.0,
			PrimaryMarket:     "Saudi Arabia",
			Year1SalaryK:      money.New(60),
			Year5SalaryK:      money.New(90),
			Year10SalaryK:     money.New(130),
			AidType:           domain.AidTypeGuaranteedFunding,
		},
		{
			ID:                "tum-informatics-ms",
			University:        "TUM",
			Name:              "MSc Informatics",
			Field:             "CS",
			Tier:              "low_cost",
			UniversityCountry: "Germany",
			TuitionK:          money.New(1),
			DurationYears:     2.0,
			PrimaryMarket:     "Germany",
			Year1SalaryK:      money.New(65),
			Year5SalaryK:      money.New(95),
			Year10SalaryK:     money.New(130),
			AidType:           domain.AidTypeNone,
		},
	}
}

// CreateExampleGraph creates a small example career graph
func (ip *InputParser) CreateExampleGraph() domain.Graph {
	return domain.Graph{
		Nodes: []domain.CareerNode{
			{
				ID:            "root",
				Label:         "Current role",
				Type:          domain.NodeTypeCareer,
				Phase:         0,
				Year1IncomeK:  money.New(9.5),
				Year5IncomeK:  money.New(14),
				Year10IncomeK: money.New(20),
			},
			{
				ID:            "p1_promoted",
				Label:         "Promoted to senior",
				Type:          domain.NodeTypeCareer,
				Phase:         1,
				Year1IncomeK:  money.New(13),
				Year5IncomeK:  money.New(20),
				Year10IncomeK: money.New(30),
			},
			{
				ID:                "p1_trading",
				Label:             "Trading side income",
				Type:              domain.NodeTypeTrading,
				Phase:             1,
				Year1IncomeK:      money.New(10),
				Year5IncomeK:      money.New(18),
				Year10IncomeK:     money.New(35),
				InitialCapitalUSD: money.New(5000),
				OngoingMonthlyUSD: money.New(50),
			},
			{
				ID:                "p1_freelance",
				Label:             "Freelance on the side",
				Type:              domain.NodeTypeFreelance,
				Phase:             1,
				Year1IncomeK:      money.New(11),
				Year5IncomeK:      money.New(19),
				Year10IncomeK:     money.New(28),
				OngoingMonthlyUSD: money.New(30),
			},
		},
		Edges: []domain.Edge{
			{SourceID: "root", TargetID: "p1_promoted", Probability: 0.5, Type: domain.EdgeTypeChild},
			{SourceID: "root", TargetID: "p1_trading", Probability: 0.3, Type: domain.EdgeTypeChild},
			{SourceID: "root", TargetID: "p1_freelance", Probability: 0.2, Type: domain.EdgeTypeChild},
		},
	}
}
