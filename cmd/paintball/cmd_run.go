package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lkopocinski/paintball-go/internal/config"
	"github.com/lkopocinski/paintball-go/internal/emit"
	"github.com/lkopocinski/paintball-go/internal/impedance"
	"github.com/lkopocinski/paintball-go/internal/knowledgesource"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
	"github.com/lkopocinski/paintball-go/internal/orchestrator"
	"github.com/lkopocinski/paintball-go/internal/transmittance"
	"github.com/lkopocinski/paintball-go/internal/wordnet"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var outPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Spread activation from a knowledge source and extract lead synsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(configPath, outPath, workers)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "paintball.yaml", "path to the YAML configuration file")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (defaults to stdout)")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of goroutines to fan knowledge-source entries across")
	return cmd
}

func runRun(configPath, outPath string, workers int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lex, err := loadGraph(cfg.PaintballGraphPath)
	if err != nil {
		return err
	}
	syn, err := loadGraph(cfg.SynsetGraphPath)
	if err != nil {
		return err
	}

	impFile, err := os.Open(cfg.ImpedanceTablePath)
	if err != nil {
		return fmt.Errorf("%w: open impedance table: %v", config.ErrConfig, err)
	}
	defer impFile.Close()
	impTable, err := impedance.LoadCSV(impFile)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfig, err)
	}

	oracle := wordnet.StaticOracle{}
	if cfg.SynsetLengthsPath != "" {
		lenFile, err := os.Open(cfg.SynsetLengthsPath)
		if err != nil {
			return fmt.Errorf("%w: open synset lengths: %v", config.ErrConfig, err)
		}
		defer lenFile.Close()
		oracle, err = wordnet.LoadCSV(lenFile)
		if err != nil {
			return fmt.Errorf("%w: %v", config.ErrConfig, err)
		}
	}

	entries, err := knowledgesource.LoadDir(cfg.KnowledgeSourceDir)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfig, err)
	}

	sealed := lexgraph.Seal(lex, transmittance.DefaultTable())

	eng := &orchestrator.Engine{
		Lexical:   sealed.Graph(),
		Synsets:   syn,
		Impedance: impTable,
		Oracle:    oracle,
		Params:    cfg.Params,
	}

	results, err := eng.RunParallel(entries, workers)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output %q: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	return emit.Write(out, results)
}

func loadGraph(path string) (*lexgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open graph %q: %v", config.ErrConfig, path, err)
	}
	defer f.Close()
	lg, err := lexgraph.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w: load graph %q: %v", config.ErrConfig, path, err)
	}
	return lg, nil
}
