package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/config"
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/output"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/pkg/money"
)

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$123.45K", output.FormatMoney(money.New(123.45)))
	assert.Equal(t, "+$45K", output.FormatBenefit(money.New(45)))
	assert.Equal(t, "-$45K", output.FormatBenefit(money.New(-45)))
	assert.Equal(t, "12.3%", output.FormatPercentage(decimal.NewFromFloat(0.1234)))
}

func TestReportGeneration_AllFormats(t *testing.T) {
	parser := config.NewInputParser()
	programs, err := parser.LoadPrograms("../testdata/programs.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine(refdata.Default(), nil)
	ranking := engine.RankPrograms(programs, calculation.ProgramParams{})
	report := &output.Report{Programs: &ranking}

	// Report files land in the working directory, so run from a temp dir.
	orig, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	defer func() { _ = os.Chdir(orig) }()

	for _, format := range []string{"console", "json", "csv"} {
		assert.NoError(t, output.GenerateReport(report, format), format)
	}
	assert.Error(t, output.GenerateReport(report, "html"))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	parser := config.NewInputParser()
	programs, err := parser.LoadPrograms("../testdata/programs.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine(refdata.Default(), nil)
	ranking := engine.RankPrograms(programs, calculation.ProgramParams{AidScenario: domain.AidScenarioExpected})

	data, err := output.JSONFormatter{}.Format(&output.Report{Programs: &ranking})
	require.NoError(t, err)

	var decoded struct {
		Programs struct {
			Total       int `json:"total"`
			Projections []struct {
				ProgramID string `json:"program_id"`
			} `json:"projections"`
		} `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded.Programs.Total)
	assert.Len(t, decoded.Programs.Projections, 3)
}

func TestSaveProfile_WritesFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "profile.yaml")

	require.NoError(t, output.SaveProfile(domain.DefaultProfile(), path))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}
