package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadPrograms_Success(t *testing.T) {
	testPrograms := "programs:\n" +
		"  - id: \"uw-cs-ms\"\n" +
		"    university: \"University of Washington\"\n" +
		"    name: \"MS Computer Science\"\n" +
		"    field: \"CS\"\n" +
		"    tier: \"partial_aid\"\n" +
		"    university_country: \"USA\"\n" +
		"    tuition_k: 50\n" +
		"    duration_years: 2.0\n" +
		"    primary_market: \"USA (Seattle)\"\n" +
		"    year1_salary_k: 180\n" +
		"    year5_salary_k: 250\n" +
		"    year10_salary_k: 350\n" +
		"    aid_type: \"scholarship\"\n" +
		"    expected_aid_k: 10\n" +
		"    best_case_aid_k: 25\n" +
		"  - id: \"kaust-cs-ms\"\n" +
		"    university: \"KAUST\"\n" +
		"    name: \"MS Computer Science\"\n" +
		"    field: \"CS\"\n" +
		"    tier: \"fully_funded\"\n" +
		"    university_country: \"Saudi Arabia\"\n" +
		"    tuition_k: 0\n" +
		"    duration_years: 2.0\n" +
		"    primary_market: \"Saudi Arabia\"\n" +
		"    year1_salary_k: 60\n" +
		"    year5_salary_k: 90\n" +
		"    year10_salary_k: 130\n" +
		"    aid_type: \"guaranteed_funding\"\n"

	tmpfile, err := os.CreateTemp("", "test_programs_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testPrograms))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	programs, err := parser.LoadPrograms(tmpfile.Name())

	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "uw-cs-ms", programs[0].ID)
	assert.Equal(t, "KAUST", programs[1].University)
	assert.Equal(t, domain.AidTypeGuaranteedFunding, programs[1].AidType)
	assert.True(t, programs[0].TuitionK.Equal(money.New(50)))
}

func TestLoadPrograms_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	programs, err := parser.LoadPrograms("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, programs)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadPrograms_InvalidYAML(t *testing.T) {
	testPrograms := "programs:\n\t- id: broken\n\t\ttuition_k: \"not-a-number\"\n"

	tmpfile, err := os.CreateTemp("", "test_programs_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testPrograms))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	programs, err := parser.LoadPrograms(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, programs)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidatePrograms_Success(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidatePrograms(parser.CreateExamplePrograms())
	assert.NoError(t, err)
}

func TestValidatePrograms_Empty(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidatePrograms(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no programs provided")
}

func TestValidatePrograms_DuplicateID(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()
	programs[1].ID = programs[0].ID

	err := parser.ValidatePrograms(programs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate program id")
}

func TestValidateProgram_MissingID(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()
	programs[0].ID = ""

	err := parser.ValidatePrograms(programs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "program id is required")
}

func TestValidateProgram_NegativeTuition(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()
	programs[0].TuitionK = money.New(-5)

	err := parser.ValidatePrograms(programs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tuition cannot be negative")
}

func TestValidateProgram_SalaryOrdering(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()
	programs[0].Year5SalaryK = money.New(100)
	programs[0].Year1SalaryK = money.New(180)

	err := parser.ValidatePrograms(programs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "year 5 salary cannot be less than year 1")
}

func TestValidateProgram_AidOrdering(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()
	programs[0].ExpectedAidK = money.New(30)
	programs[0].BestCaseAidK = money.New(10)

	err := parser.ValidatePrograms(programs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "best case aid cannot be less than expected aid")
}

func TestValidateProgram_InvalidAidType(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()
	programs[0].AidType = "full_ride"

	err := parser.ValidatePrograms(programs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aid type must be")
}

func TestLoadGraph_Success(t *testing.T) {
	testGraph := "nodes:\n" +
		"  - id: \"root\"\n" +
		"    label: \"Current role\"\n" +
		"    type: \"career\"\n" +
		"    year1_income_k: 9.5\n" +
		"    year10_income_k: 20\n" +
		"  - id: \"p1_promoted\"\n" +
		"    label: \"Promoted\"\n" +
		"    type: \"career\"\n" +
		"    year1_income_k: 13\n" +
		"    year10_income_k: 30\n" +
		"edges:\n" +
		"  - source: \"root\"\n" +
		"    target: \"p1_promoted\"\n" +
		"    probability: 0.5\n" +
		"    type: \"child\"\n"

	tmpfile, err := os.CreateTemp("", "test_graph_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testGraph))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	graph, err := parser.LoadGraph(tmpfile.Name())

	require.NoError(t, err)
	assert.Len(t, graph.Nodes, 2)
	assert.Len(t, graph.Edges, 1)
	assert.Equal(t, domain.EdgeTypeChild, graph.Edges[0].Type)
}

func TestValidateGraph_Success(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()

	err := parser.ValidateGraph(&graph)
	assert.NoError(t, err)
}

func TestValidateGraph_NoNodes(t *testing.T) {
	parser := NewInputParser()
	graph := domain.Graph{}

	err := parser.ValidateGraph(&graph)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no career nodes provided")
}

func TestValidateGraph_DuplicateNodeID(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()
	graph.Nodes[1].ID = graph.Nodes[0].ID

	err := parser.ValidateGraph(&graph)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate node id")
}

func TestValidateGraph_InvalidNodeType(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()
	graph.Nodes[0].Type = "masters"

	err := parser.ValidateGraph(&graph)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "type must be 'career', 'trading', 'startup', or 'freelance'")
}

func TestValidateGraph_UnknownTarget(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()
	graph.Edges[0].TargetID = "p9_missing"

	err := parser.ValidateGraph(&graph)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target node")
}

func TestValidateGraph_ProbabilityRange(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()
	graph.Edges[0].Probability = 1.5

	err := parser.ValidateGraph(&graph)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "probability must be between 0 and 1")
}

func TestValidateGraph_InvalidEdgeType(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()
	graph.Edges[0].Type = "sibling"

	err := parser.ValidateGraph(&graph)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "type must be 'child', 'transition', 'fallback', or 'enables'")
}

func TestLoadProfile_Success(t *testing.T) {
	testProfile := "years_experience: 4\n" +
		"performance_rating: \"top\"\n" +
		"risk_tolerance: \"high\"\n" +
		"available_savings_usd: 12000\n" +
		"english_level: \"native\"\n" +
		"quant_aptitude: \"strong\"\n" +
		"current_salary_pkr: 250000\n"

	tmpfile, err := os.CreateTemp("", "test_profile_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testProfile))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	profile, err := parser.LoadProfile(tmpfile.Name())

	require.NoError(t, err)
	assert.Equal(t, 4.0, profile.YearsExperience)
	assert.Equal(t, "top", profile.PerformanceRating)
	assert.Equal(t, "high", profile.RiskTolerance)
	// Fields not in the file keep their defaults.
	require.NotNil(t, profile.GPA)
	assert.Equal(t, 3.5, *profile.GPA)
}

func TestLoadProfile_InvalidEnum(t *testing.T) {
	testProfile := "performance_rating: \"legendary\"\n"

	tmpfile, err := os.CreateTemp("", "test_profile_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testProfile))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	_, err = parser.LoadProfile(tmpfile.Name())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "performance_rating must be one of")
}

func TestCreateExamplePrograms(t *testing.T) {
	parser := NewInputParser()
	programs := parser.CreateExamplePrograms()

	assert.Len(t, programs, 3)
	err := parser.ValidatePrograms(programs)
	assert.NoError(t, err)
}

func TestCreateExampleGraph(t *testing.T) {
	parser := NewInputParser()
	graph := parser.CreateExampleGraph()

	assert.NotEmpty(t, graph.Nodes)
	assert.NotEmpty(t, graph.Edges)
	err := parser.ValidateGraph(&graph)
	assert.NoError(t, err)
}
