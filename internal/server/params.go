package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Simba256/Decision-Tree/internal/domain"
)

// Family-year upper bounds. The top value means "never": one past the last
// projection year on each track.
const (
	maxFamilyYearProgram = 13
	maxFamilyYearCareer  = 11
)

func parseLifestyle(q url.Values) (domain.Lifestyle, error) {
	switch v := q.Get("lifestyle"); v {
	case "":
		return domain.LifestyleFrugal, nil
	case string(domain.LifestyleFrugal), string(domain.LifestyleComfortable):
		return domain.Lifestyle(v), nil
	default:
		return "", fmt.Errorf("%w: lifestyle must be 'frugal' or 'comfortable', got %q", domain.ErrValidation, v)
	}
}

func parseAidScenario(q url.Values, def domain.AidScenario) (domain.AidScenario, error) {
	switch v := q.Get("aid_scenario"); v {
	case "":
		return def, nil
	case string(domain.AidScenarioNone), string(domain.AidScenarioExpected), string(domain.AidScenarioBestCase):
		return domain.AidScenario(v), nil
	default:
		return "", fmt.Errorf("%w: aid_scenario must be 'no_aid', 'expected', or 'best_case', got %q", domain.ErrValidation, v)
	}
}

// parseFamilyYear returns 0 when the parameter is absent, leaving the
// track default in place.
func parseFamilyYear(q url.Values, max int) (int, error) {
	v := q.Get("family_year")
	if v == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: family_year must be an integer, got %q", domain.ErrValidation, v)
	}
	if year < 1 || year > max {
		return 0, fmt.Errorf("%w: family_year must be between 1 and %d, got %d", domain.ErrValidation, max, year)
	}
	return year, nil
}

func parseNodeType(q url.Values) (domain.NodeType, error) {
	switch v := q.Get("node_type"); v {
	case "":
		return "", nil
	case string(domain.NodeTypeCareer), string(domain.NodeTypeTrading),
		string(domain.NodeTypeStartup), string(domain.NodeTypeFreelance):
		return domain.NodeType(v), nil
	default:
		return "", fmt.Errorf("%w: node_type must be 'career', 'trading', 'startup', or 'freelance', got %q", domain.ErrValidation, v)
	}
}

func parseSortKey(q url.Values, valid []string, def string) (string, error) {
	v := q.Get("sort_by")
	if v == "" {
		return def, nil
	}
	for _, key := range valid {
		if v == key {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: sort_by must be one of %v, got %q", domain.ErrValidation, valid, v)
}

// parseOptionalInt returns (0, false, nil) when the parameter is absent.
func parseOptionalInt(q url.Values, name string) (int, bool, error) {
	v := q.Get(name)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrValidation, name, v)
	}
	return n, true, nil
}

// parseOptionalFloat returns (0, false, nil) when the parameter is absent.
func parseOptionalFloat(q url.Values, name string) (float64, bool, error) {
	v := q.Get(name)
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be a number, got %q", domain.ErrValidation, name, v)
	}
	return f, true, nil
}

func parseBool(q url.Values, name string, def bool) bool {
	v := q.Get(name)
	if v == "" {
		return def
	}
	return v == "true" || v == "1"
}
