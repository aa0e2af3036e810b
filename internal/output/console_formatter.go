package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/Simba256/Decision-Tree/internal/calibration"
	"github.com/Simba256/Decision-Tree/internal/domain"
)

// ConsoleFormatter renders a plain-text report of whichever sections the
// report carries.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	if report.Programs != nil {
		c.writePrograms(&buf, report.Programs)
	}
	if report.Career != nil {
		c.writeCareer(&buf, report.Career)
	}
	if report.Affordability != nil {
		c.writeAffordability(&buf, report.Affordability)
	}
	if report.Calibration != nil {
		c.writeCalibration(&buf, report.Calibration)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writePrograms(buf *bytes.Buffer, r *domain.ProgramRanking) {
	fmt.Fprintln(buf, "GRADUATE PROGRAMS BY NET BENEFIT")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Baseline (stay home): %s over 12 years\n", FormatMoney(r.BaselineK))
	fmt.Fprintf(buf, "Positive benefit: %d/%d programs\n\n", r.PositiveCount, r.Total)

	fmt.Fprintf(buf, "%-3s %-24s %-20s %-14s %9s %9s %8s\n",
		"#", "University", "Program", "Work Country", "NetWorth", "Benefit", "EffTax")
	for i, p := range r.Projections {
		fmt.Fprintf(buf, "%-3d %-24s %-20s %-14s %9s %9s %8s\n",
			i+1,
			clip(p.University, 24),
			clip(p.Program, 20),
			clip(p.WorkCountry, 14),
			FormatMoney(p.NetWorthK),
			FormatBenefit(p.NetBenefitK),
			FormatPercentage(p.EffectiveTaxY10),
		)
	}

	c.writeGroups(buf, "BY FUNDING TIER", r.ByTier)
	c.writeGroups(buf, "BY FIELD", r.ByField)
	c.writeGroups(buf, "BY WORK COUNTRY", r.ByWorkCountry)
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeCareer(buf *bytes.Buffer, r *domain.CareerRanking) {
	fmt.Fprintln(buf, "CAREER PATHS BY NET BENEFIT")
	fmt.Fprintln(buf, "===========================")
	fmt.Fprintf(buf, "Baseline (stay in role): %s over 10 years\n", FormatMoney(r.BaselineK))
	fmt.Fprintf(buf, "Positive benefit: %d/%d paths\n\n", r.PositiveCount, r.Total)

	fmt.Fprintf(buf, "%-3s %-10s %-36s %8s %9s %9s\n",
		"#", "Type", "Path", "Y10", "NetWorth", "Benefit")
	for i, p := range r.Projections {
		label := p.Label
		if label == "" {
			label = p.NodeID
		}
		fmt.Fprintf(buf, "%-3d %-10s %-36s %8s %9s %9s\n",
			i+1,
			clip(string(p.NodeType), 10),
			clip(strings.ReplaceAll(label, "\n", " "), 36),
			FormatMoney(p.Year10IncomeK),
			FormatMoney(p.NetWorthK),
			FormatBenefit(p.NetBenefitK),
		)
	}

	c.writeGroups(buf, "BY TYPE", r.ByType)
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeAffordability(buf *bytes.Buffer, r *domain.AffordabilityReport) {
	fmt.Fprintln(buf, "AFFORDABILITY")
	fmt.Fprintln(buf, "=============")
	fmt.Fprintf(buf, "Savings: $%s  Side income: $%s/mo x %d months  Total: $%s\n\n",
		r.AvailableSavingsUSD.Decimal.StringFixed(0),
		r.MonthlySideIncomeUSD.Decimal.StringFixed(0),
		r.PrepMonths,
		r.TotalAvailableUSD.Decimal.StringFixed(0),
	)

	bands := []struct {
		name    string
		entries []domain.AffordabilityEntry
	}{
		{"AFFORDABLE", r.Affordable},
		{"STRETCH", r.Stretch},
		{"NEEDS FUNDING", r.NeedsFunding},
	}
	for _, band := range bands {
		fmt.Fprintf(buf, "%s (%d)\n", band.name, len(band.entries))
		for _, e := range band.entries {
			fmt.Fprintf(buf, "  %-24s %-20s capital $%-8s benefit %s\n",
				clip(e.University, 24),
				clip(e.Program, 20),
				e.InitialCapitalUSD.Decimal.StringFixed(0),
				FormatBenefit(e.NetBenefitK),
			)
		}
	}
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeCalibration(buf *bytes.Buffer, s *calibration.Summary) {
	fmt.Fprintln(buf, "CALIBRATION SUMMARY")
	fmt.Fprintln(buf, "===================")
	fmt.Fprintf(buf, "%d of %d child edges changed (of %d total edges)\n\n",
		s.EdgesChanged, s.ChildEdges, s.TotalEdges)

	for _, ch := range s.Changes {
		fmt.Fprintf(buf, "  %-22s -> %-24s %.4f -> %.4f (%+.4f, x%.4f)\n",
			clip(ch.SourceID, 22), clip(ch.TargetID, 24),
			ch.BaseProbability, ch.CalibratedProbability,
			ch.Change, ch.Multiplier)
	}
	fmt.Fprintln(buf)
}

// writeGroups prints grouped net benefit stats sorted by average
// descending.
func (c ConsoleFormatter) writeGroups(buf *bytes.Buffer, title string, groups map[string]domain.GroupStat) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(buf, "\n%s\n", title)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return groups[keys[i]].Avg.GreaterThan(groups[keys[j]].Avg)
	})

	for _, k := range keys {
		stat := groups[k]
		fmt.Fprintf(buf, "  %-20s avg %9s (n=%d, %s to %s)\n",
			clip(k, 20), FormatMoney(stat.Avg), stat.Count,
			FormatMoney(stat.Min), FormatMoney(stat.Max))
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
