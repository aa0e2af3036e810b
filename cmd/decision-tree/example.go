package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/output"
)

func exampleConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write example input files to get started",
		Long: `Example-config writes a small program catalog, a career graph, and
the default profile as YAML files ready to edit.`,
		RunE: runExampleConfig,
	}

	cmd.Flags().String("dir", ".", "directory to write the example files into")

	return cmd
}

func runExampleConfig(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")

	programs := a.parser.CreateExamplePrograms()
	programsOut, err := yaml.Marshal(map[string][]domain.GraduateProgram{"programs": programs})
	if err != nil {
		return err
	}
	programsPath := filepath.Join(dir, "programs.yaml")
	if err := os.WriteFile(programsPath, programsOut, 0644); err != nil {
		return err
	}

	graph := a.parser.CreateExampleGraph()
	graphOut, err := yaml.Marshal(graph)
	if err != nil {
		return err
	}
	graphPath := filepath.Join(dir, "career_graph.yaml")
	if err := os.WriteFile(graphPath, graphOut, 0644); err != nil {
		return err
	}

	profilePath := filepath.Join(dir, "profile.yaml")
	if err := output.SaveProfile(domain.DefaultProfile(), profilePath); err != nil {
		return err
	}

	fmt.Printf("wrote %s, %s, %s\n", programsPath, graphPath, profilePath)
	return nil
}
