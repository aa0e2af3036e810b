package main

import (
	"github.com/spf13/cobra"

	"github.com/Simba256/Decision-Tree/internal/calibration"
	"github.com/Simba256/Decision-Tree/internal/output"
)

func calibrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Show how the profile shifts career-graph probabilities",
		Long: `Calibrate applies the profile's multiplier rules to the career
graph's child edges, renormalizes each parent's group, and reports the
edges whose probabilities moved.

Examples:
  decision-tree calibrate
  decision-tree calibrate --profile profile.yaml --format json`,
		RunE: runCalibrate,
	}

	cmd.Flags().String("format", "console", "output format (console, json, csv)")
	cmd.Flags().Bool("save", false, "write the report to a timestamped file")

	return cmd
}

func runCalibrate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	graph, err := a.loadGraph()
	if err != nil {
		return err
	}
	profile, err := a.loadProfile()
	if err != nil {
		return err
	}

	summary := calibration.Summarize(graph.Edges, profile)

	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")
	return emit(&output.Report{Calibration: &summary}, format, save)
}
