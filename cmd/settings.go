package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/config"
	"github.com/abhisek/kuku/internal/drill"
)

// loadConfig reads KUKU_* from the environment, then lets any flag the user
// actually set take priority over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.From, _ = flags.GetInt("from")
	}
	if flags.Changed("to") {
		cfg.To, _ = flags.GetInt("to")
	}
	if flags.Changed("chant") {
		cfg.Chant, _ = flags.GetBool("chant")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return cfg, nil
}

// loadDrill resolves the config plus its validated range and a seeded
// generator.
func loadDrill(cmd *cobra.Command) (*config.Config, drill.Range, *drill.Generator, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, drill.Range{}, nil, err
	}
	r, err := cfg.Range()
	if err != nil {
		return nil, drill.Range{}, nil, fmt.Errorf("dan range: %w", err)
	}
	gen, err := drill.NewGenerator(cfg.Seed)
	if err != nil {
		return nil, drill.Range{}, nil, fmt.Errorf("seed generator: %w", err)
	}
	return cfg, r, gen, nil
}
