package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/calibration"
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func sampleProgramRanking() *domain.ProgramRanking {
	return &domain.ProgramRanking{
		BaselineK: money.New(25),
		Projections: []domain.ProgramProjection{
			{
				ProgramID:       "uw-cs-ms",
				University:      "University of Washington",
				Program:         "CS MS",
				Field:           "CS",
				WorkCountry:     "USA",
				WorkCity:        "Seattle",
				TuitionPaidK:    money.New(50),
				NetWorthK:       money.New(900),
				NetBenefitK:     money.New(875),
				EffectiveTaxY10: decimal.NewFromFloat(0.31),
			},
			{
				ProgramID:   "tum-informatics-ms",
				University:  "TUM",
				Program:     "Informatics MS",
				Field:       "CS",
				WorkCountry: "Germany",
				WorkCity:    "Munich",
				NetWorthK:   money.New(300),
				NetBenefitK: money.New(275),
			},
		},
		Total:         2,
		PositiveCount: 2,
		ByTier: map[string]domain.GroupStat{
			"top": {Avg: money.New(875), Count: 1, Min: money.New(875), Max: money.New(875)},
		},
	}
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName("text"))
	assert.Equal(t, "console", NormalizeFormatName(" TXT "))
	assert.Equal(t, "json", NormalizeFormatName("json-pretty"))
	assert.Equal(t, "csv", NormalizeFormatName("csv-summary"))
	assert.Equal(t, "json", NormalizeFormatName("JSON"))
	assert.Equal(t, "html", NormalizeFormatName("html"))
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "text", "json", "csv-summary"} {
		assert.NotNil(t, GetFormatterByName(name), name)
	}
	assert.Nil(t, GetFormatterByName("html"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "text")
}

func TestConsoleFormatterPrograms(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(&Report{Programs: sampleProgramRanking()})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "GRADUATE PROGRAMS BY NET BENEFIT")
	assert.Contains(t, text, "University of Washington")
	assert.Contains(t, text, "BY FUNDING TIER")
	assert.Contains(t, text, "+$875K")
}

func TestConsoleFormatterCalibration(t *testing.T) {
	summary := &calibration.Summary{
		TotalEdges:   4,
		ChildEdges:   3,
		EdgesChanged: 1,
		Changes: []calibration.EdgeChange{
			{
				SourceID: "root", TargetID: "p1_trading",
				BaseProbability: 0.3, CalibratedProbability: 0.3733,
				Change: 0.0733, Multiplier: 1.4,
			},
		},
	}
	data, err := ConsoleFormatter{}.Format(&Report{Calibration: summary})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "CALIBRATION SUMMARY")
	assert.Contains(t, text, "1 of 3 child edges changed (of 4 total edges)")
	assert.Contains(t, text, "p1_trading")
}

func TestCSVSummarizerPrograms(t *testing.T) {
	data, err := CSVSummarizer{}.Format(&Report{Programs: sampleProgramRanking()})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + two programs

	assert.Equal(t, "Rank", records[0][0])
	assert.Equal(t, "uw-cs-ms", records[1][1])
	assert.Equal(t, "tum-informatics-ms", records[2][1])
}

func TestCSVSummarizerCareer(t *testing.T) {
	ranking := &domain.CareerRanking{
		Projections: []domain.CareerProjection{
			{
				NodeID: "p1_trading", NodeType: domain.NodeTypeTrading,
				Label: "Part-time trading", Year10IncomeK: money.New(35),
				NetWorthK: money.New(40), NetBenefitK: money.New(12),
			},
		},
		Total: 1,
	}
	data, err := CSVSummarizer{}.Format(&Report{Career: ranking})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "p1_trading", records[1][1])
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, strings.Repeat("a", 4), clip(strings.Repeat("a", 9), 4))
}
