package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer implements the summary CSV output: one row per ranked
// program followed by one row per ranked career path. Rows keep the
// ranking order of the report.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if report.Programs != nil {
		header := []string{"Rank", "ProgramID", "University", "Program", "Field", "WorkCountry", "WorkCity", "TuitionK", "NetWorthK", "NetBenefitK", "EffectiveTaxY10"}
		if err := w.Write(header); err != nil {
			return nil, err
		}
		for i, p := range report.Programs.Projections {
			row := []string{
				strconv.Itoa(i + 1),
				p.ProgramID,
				p.University,
				p.Program,
				p.Field,
				p.WorkCountry,
				p.WorkCity,
				p.TuitionPaidK.Decimal.StringFixed(2),
				p.NetWorthK.Decimal.StringFixed(2),
				p.NetBenefitK.Decimal.StringFixed(2),
				p.EffectiveTaxY10.StringFixed(4),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	if report.Career != nil {
		header := []string{"Rank", "NodeID", "Type", "Label", "Year10IncomeK", "NetWorthK", "NetBenefitK"}
		if err := w.Write(header); err != nil {
			return nil, err
		}
		for i, p := range report.Career.Projections {
			row := []string{
				strconv.Itoa(i + 1),
				p.NodeID,
				string(p.NodeType),
				p.Label,
				p.Year10IncomeK.Decimal.StringFixed(2),
				p.NetWorthK.Decimal.StringFixed(2),
				p.NetBenefitK.Decimal.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
