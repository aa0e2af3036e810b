package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/output"
)

// emit renders the report to stdout, or to a timestamped file when save is
// set.
func emit(report *output.Report, format string, save bool) error {
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format %q, try one of: %s (aliases: %s)",
			format,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", "))
	}

	if save {
		ext := f.Name()
		if ext == "console" {
			ext = "txt"
		}
		filename, err := output.WriteFormatted(f, report, ext)
		if err != nil {
			return err
		}
		fmt.Printf("report written to %s\n", filename)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func parseLifestyleFlag(v string) (domain.Lifestyle, error) {
	switch v {
	case "", string(domain.LifestyleFrugal):
		return domain.LifestyleFrugal, nil
	case string(domain.LifestyleComfortable):
		return domain.LifestyleComfortable, nil
	default:
		return "", fmt.Errorf("lifestyle must be 'frugal' or 'comfortable', got %q", v)
	}
}

func parseAidScenarioFlag(v string, def domain.AidScenario) (domain.AidScenario, error) {
	switch v {
	case "":
		return def, nil
	case string(domain.AidScenarioNone), string(domain.AidScenarioExpected), string(domain.AidScenarioBestCase):
		return domain.AidScenario(v), nil
	default:
		return "", fmt.Errorf("aid-scenario must be 'no_aid', 'expected', or 'best_case', got %q", v)
	}
}

func parseNodeTypeFlag(v string) (domain.NodeType, error) {
	switch v {
	case "":
		return "", nil
	case string(domain.NodeTypeCareer), string(domain.NodeTypeTrading),
		string(domain.NodeTypeStartup), string(domain.NodeTypeFreelance):
		return domain.NodeType(v), nil
	default:
		return "", fmt.Errorf("node-type must be 'career', 'trading', 'startup', or 'freelance', got %q", v)
	}
}
