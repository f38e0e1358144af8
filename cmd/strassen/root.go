// SPDX-License-Identifier: MIT

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/config"
)

// flag names shared by registration and override resolution.
const (
	flagSize        = "size"
	flagSeed        = "seed"
	flagMaxDepth    = "max-depth"
	flagBoundsCheck = "bounds-check"
	flagSequential  = "sequential"
	flagRowGrain    = "row-grain"
	flagQuiet       = "quiet"
	flagVerify      = "verify"
	flagEnvFile     = "env-file"
)

func newRootCmd() *cobra.Command {
	var (
		flags   config.Config
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "strassen",
		Short:         "Compare parallel Strassen and naive matrix multiplication",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cfg *config.Config
				err error
			)
			if envFile != "" {
				cfg, err = config.LoadFile(envFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, &flags)
			if err = cfg.Validate(); err != nil {
				return err
			}

			d := &driver{
				cfg: cfg,
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
				log: log.New(cmd.ErrOrStderr(), "strassen: ", log.LstdFlags),
			}

			return d.run()
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.IntVarP(&flags.Size, flagSize, "n", def.Size, "row length N of the N×N matrices (0 prompts on stdin)")
	f.Int64Var(&flags.Seed, flagSeed, def.Seed, "random seed (0 uses the current time)")
	f.IntVar(&flags.MaxDepth, flagMaxDepth, def.MaxDepth, "deepest recursion level that still forks")
	f.BoolVar(&flags.BoundsCheck, flagBoundsCheck, def.BoundsCheck, "bounds-check every element access")
	f.BoolVar(&flags.Sequential, flagSequential, def.Sequential, "run Strassen without goroutines")
	f.IntVar(&flags.RowGrain, flagRowGrain, def.RowGrain, "minimum rows per concurrent band")
	f.BoolVarP(&flags.Quiet, flagQuiet, "q", def.Quiet, "do not print matrices")
	f.BoolVar(&flags.Verify, flagVerify, def.Verify, "cross-check the product against gonum")
	f.StringVar(&envFile, flagEnvFile, "", "explicit .env file (default: nearest .env)")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded configuration so the
// precedence is flag > environment > .env > default.
func applyFlags(cmd *cobra.Command, cfg, flags *config.Config) {
	f := cmd.Flags()
	if f.Changed(flagSize) {
		cfg.Size = flags.Size
	}
	if f.Changed(flagSeed) {
		cfg.Seed = flags.Seed
	}
	if f.Changed(flagMaxDepth) {
		cfg.MaxDepth = flags.MaxDepth
	}
	if f.Changed(flagBoundsCheck) {
		cfg.BoundsCheck = flags.BoundsCheck
	}
	if f.Changed(flagSequential) {
		cfg.Sequential = flags.Sequential
	}
	if f.Changed(flagRowGrain) {
		cfg.RowGrain = flags.RowGrain
	}
	if f.Changed(flagQuiet) {
		cfg.Quiet = flags.Quiet
	}
	if f.Changed(flagVerify) {
		cfg.Verify = flags.Verify
	}
}
