package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lkopocinski/paintball-go/internal/config"
	"github.com/lkopocinski/paintball-go/internal/evaluate"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
)

func newEvaluateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "evaluate <results-file> <gold-file>",
		Short: "Histogram shortest distances from results to their gold synsets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(configPath, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "paintball.yaml", "path to the YAML configuration file")
	return cmd
}

// runEvaluate reads a results file (one source lemma per line) and a gold
// file (lines "source_lemma;id1,id2,..."), computes Distances for every
// source lemma present in both, and prints the combined Histogram.
func runEvaluate(configPath, resultsPath, goldPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	synFile, err := os.Open(cfg.SynsetGraphPath)
	if err != nil {
		return fmt.Errorf("%w: open synset graph: %v", config.ErrConfig, err)
	}
	defer synFile.Close()

	gold, err := loadGoldFile(goldPath)
	if err != nil {
		return err
	}

	sources, err := loadLines(resultsPath)
	if err != nil {
		return err
	}

	synGraph, err := lexgraph.Load(synFile)
	if err != nil {
		return fmt.Errorf("%w: load synset graph: %v", config.ErrConfig, err)
	}

	var all []int
	for _, source := range sources {
		goldIDs, ok := gold[source]
		if !ok {
			continue
		}
		distances, err := evaluate.Distances(synGraph, source, goldIDs)
		if err != nil {
			return err
		}
		all = append(all, distances...)
	}

	hist := evaluate.Histogram(all)
	keys := make([]int, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Printf("%d\t%d\n", k, hist[k])
	}
	return nil
}

func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func loadGoldFile(path string) (map[string][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	gold := make(map[string][]int)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ";", 2)
		if len(parts) != 2 {
			continue
		}
		source := strings.TrimSpace(parts[0])
		var ids []int
		for _, raw := range strings.Split(parts[1], ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			id, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		gold[source] = ids
	}
	return gold, scanner.Err()
}
