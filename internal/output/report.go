package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Simba256/Decision-Tree/internal/calibration"
	"github.com/Simba256/Decision-Tree/internal/domain"
)

// Report bundles the sections a formatter can render. Sections are
// optional; a formatter renders what is present.
type Report struct {
	Programs      *domain.ProgramRanking      `json:"programs,omitempty"`
	Career        *domain.CareerRanking       `json:"career,omitempty"`
	Affordability *domain.AffordabilityReport `json:"affordability,omitempty"`
	Calibration   *calibration.Summary        `json:"calibration,omitempty"`
}

// GenerateReport runs the named formatter and writes the output to a
// timestamped file.
func GenerateReport(report *Report, format string) error {
	if f := GetFormatterByName(format); f != nil {
		ext := f.Name()
		if ext == "console" {
			ext = "txt"
		}
		_, err := WriteFormatted(f, report, ext)
		return err
	}
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
		ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "),
		strings.Join(AvailableFormatAliases(), ", "))
}

// SaveProfile writes a user profile back to a YAML file.
func SaveProfile(profile domain.UserProfile, filename string) error {
	b, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
