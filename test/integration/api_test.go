package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/config"
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/refdata"
	"github.com/Simba256/Decision-Tree/internal/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	parser := config.NewInputParser()
	programs, err := parser.LoadPrograms("../testdata/programs.yaml")
	require.NoError(t, err)
	graph, err := parser.LoadGraph("../testdata/career_graph.yaml")
	require.NoError(t, err)

	engine := calculation.NewEngine(refdata.Default(), nil)
	srv := server.NewServer(engine, programs, graph, domain.DefaultProfile(), nil)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestAPIHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	status := getJSON(t, ts.URL+"/api/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestAPINetWorth(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Total         int `json:"total"`
		TotalFiltered int `json:"total_filtered"`
		Projections   []struct {
			ProgramID string           `json:"program_id"`
			Years     []map[string]any `json:"years"`
		} `json:"projections"`
	}
	status := getJSON(t, ts.URL+"/api/networth?compact=true&aid_scenario=expected", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, 3, body.TotalFiltered)
	for _, p := range body.Projections {
		assert.Empty(t, p.Years)
	}

	// Filters narrow the list without touching the full totals.
	status = getJSON(t, ts.URL+"/api/networth?work_country=Germany", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, body.TotalFiltered)
}

func TestAPINetWorthValidation(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/networth?lifestyle=lavish", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/networth?family_year=99", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/networth?aid_scenario=maybe", nil))
}

func TestAPIProgramNetWorth(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		ProgramID string           `json:"program_id"`
		Years     []map[string]any `json:"years"`
		Baseline  struct {
			Years []map[string]any `json:"years"`
		} `json:"baseline"`
	}
	status := getJSON(t, ts.URL+"/api/networth/uw-cs-ms", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "uw-cs-ms", body.ProgramID)
	assert.Len(t, body.Years, 12)
	assert.Len(t, body.Baseline.Years, 12)

	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/networth/no-such-id", nil))
}

func TestAPIProgramCompare(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Scenarios map[string]struct {
			NetBenefitK string `json:"net_benefit_k"`
		} `json:"scenarios"`
	}
	status := getJSON(t, ts.URL+"/api/networth/uw-cs-ms/compare", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.Scenarios, 3)
	assert.Contains(t, body.Scenarios, "no_aid")
	assert.Contains(t, body.Scenarios, "expected")
	assert.Contains(t, body.Scenarios, "best_case")
}

func TestAPICareerNetWorth(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Total       int `json:"total"`
		Projections []struct {
			NodeID string `json:"node_id"`
		} `json:"projections"`
	}
	status := getJSON(t, ts.URL+"/api/networth/career", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, body.Total)

	status = getJSON(t, ts.URL+"/api/networth/career?node_type=trading", &body)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body.Projections, 1)
	assert.Equal(t, "p1_trading", body.Projections[0].NodeID)

	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/networth/career/no-such-node", nil))
}

func TestAPIProfileUpdate(t *testing.T) {
	ts := newTestServer(t)

	payload := bytes.NewBufferString(`{"risk_tolerance":"high","available_savings_usd":12000}`)
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/profile", payload)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Profile domain.UserProfile `json:"profile"`
	}
	status := getJSON(t, ts.URL+"/api/profile", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "high", body.Profile.RiskTolerance)
	assert.Equal(t, float64(12000), body.Profile.AvailableSavingsUSD)
	// Untouched fields keep their defaults.
	assert.Equal(t, "strong", body.Profile.PerformanceRating)

	// Invalid enums are rejected.
	bad := bytes.NewBufferString(`{"risk_tolerance":"reckless"}`)
	req, err = http.NewRequest(http.MethodPut, ts.URL+"/api/profile", bad)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPICalibrationSummary(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		TotalEdges int `json:"total_edges"`
		ChildEdges int `json:"child_edges"`
	}
	status := getJSON(t, ts.URL+"/api/calibration-summary", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, body.TotalEdges)
	assert.Equal(t, 3, body.ChildEdges)
}

func TestAPIAffordability(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		TotalAvailableUSD string         `json:"total_available_usd"`
		Summary           map[string]int `json:"summary"`
	}
	status := getJSON(t, ts.URL+"/api/affordability?available_savings=2000&monthly_side_income=500&prep_months=4", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, body.Summary["total_programs"])
	assert.Equal(t, "4000", body.TotalAvailableUSD)
}
