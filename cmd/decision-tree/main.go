// Package main contains the decision-tree CLI commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Simba256/Decision-Tree/internal/calculation"
	"github.com/Simba256/Decision-Tree/internal/config"
	"github.com/Simba256/Decision-Tree/internal/domain"
	"github.com/Simba256/Decision-Tree/internal/refdata"
)

var (
	cfgFile string
	vip     *viper.Viper

	rootCmd = &cobra.Command{
		Use:   "decision-tree",
		Short: "Career decision financial modeling",
		Long: `decision-tree compares career paths by projected net worth: graduate
programs abroad against staying in the home job market, with per-country
progressive taxes, per-city living costs, financial aid scenarios, and
profile-calibrated outcome probabilities.`,
	}
)

func init() {
	vip = config.NewViper()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().String("programs", "programs.yaml", "programs YAML file")
	rootCmd.PersistentFlags().String("graph", "career_graph.yaml", "career graph YAML file")
	rootCmd.PersistentFlags().String("profile", "", "user profile YAML file (default profile if unset)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = vip.BindPFlag("programs_file", rootCmd.PersistentFlags().Lookup("programs"))
	_ = vip.BindPFlag("graph_file", rootCmd.PersistentFlags().Lookup("graph"))
	_ = vip.BindPFlag("profile_file", rootCmd.PersistentFlags().Lookup("profile"))
	_ = vip.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(rankCmd())
	rootCmd.AddCommand(careerCmd())
	rootCmd.AddCommand(programCmd())
	rootCmd.AddCommand(affordabilityCmd())
	rootCmd.AddCommand(calibrateCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exampleConfigCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles the dependencies the subcommands share.
type app struct {
	cfg    config.AppConfig
	logger calculation.Logger
	parser *config.InputParser
	engine *calculation.Engine
}

func newApp() (*app, error) {
	cfg, err := config.LoadAppConfig(vip, cfgFile)
	if err != nil {
		return nil, err
	}

	logger := calculation.ConsoleLogger{Verbose: cfg.Verbose}
	return &app{
		cfg:    cfg,
		logger: logger,
		parser: config.NewInputParser(),
		engine: calculation.NewEngine(refdata.Default(), logger),
	}, nil
}

func (a *app) loadPrograms() ([]domain.GraduateProgram, error) {
	programs, err := a.parser.LoadPrograms(a.cfg.ProgramsFile)
	if err != nil {
		return nil, fmt.Errorf("loading programs: %w", err)
	}
	return programs, nil
}

func (a *app) loadGraph() (domain.Graph, error) {
	graph, err := a.parser.LoadGraph(a.cfg.GraphFile)
	if err != nil {
		return domain.Graph{}, fmt.Errorf("loading career graph: %w", err)
	}
	return graph, nil
}

// loadProfile falls back to the default profile when no file is
// configured.
func (a *app) loadProfile() (domain.UserProfile, error) {
	if a.cfg.ProfileFile == "" {
		return domain.DefaultProfile(), nil
	}
	profile, err := a.parser.LoadProfile(a.cfg.ProfileFile)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}
	return profile, nil
}
