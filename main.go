// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/avl"
)

var version = "v0.1.0"

func main() {
	var deletes []string
	var cmdBuild = &cobra.Command{
		Use:   "build [values...]",
		Short: "Insert values into a fresh tree and print it",
		Long:  "Build inserts every value in order, then removes each --delete value, and prints the resulting tree",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBuild(cmd.OutOrStdout(), loadConfig(), args, deletes); err != nil {
				log.Fatalf("Error building tree: %v", err)
			}
		},
	}
	cmdBuild.Flags().StringSliceVarP(&deletes, "delete", "d", nil, "values to delete after inserting")

	var cmdRun = &cobra.Command{
		Use:   "run <script>",
		Short: "Apply an operation script",
		Long:  "Run applies insert, delete, search, clear and print operations from a script file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runScript(cmd.OutOrStdout(), cmd.InOrStdin(), loadConfig(), args[0]); err != nil {
				log.Fatalf("Error running script: %v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Check tree invariants under a random workload",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			options := config.Stress

			flags := cmd.Flags()
			if flags.Changed("ops") {
				options.Operations, _ = flags.GetInt("ops")
			}
			if flags.Changed("range") {
				options.ValueRange, _ = flags.GetInt("range")
			}
			if flags.Changed("readers") {
				options.Readers, _ = flags.GetInt("readers")
			}
			if flags.Changed("seed") {
				options.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("progress") {
				options.Progress, _ = flags.GetBool("progress")
			}
			if options.Seed == 0 {
				options.Seed = time.Now().UnixNano()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			result, err := RunStress(ctx, options, out)
			printStressResult(out, NewStyles(config.Report.Color), result)
			if err != nil {
				log.Fatalf("Stress run failed: %v", err)
			}
		},
	}
	cmdStress.Flags().Int("ops", defaultConfig.Stress.Operations, "number of random operations")
	cmdStress.Flags().Int("range", defaultConfig.Stress.ValueRange, "values are drawn from [0, range)")
	cmdStress.Flags().Int("readers", defaultConfig.Stress.Readers, "concurrent readers checking sorted order")
	cmdStress.Flags().Int64("seed", 0, "random seed (0 picks one from the clock)")
	cmdStress.Flags().Bool("progress", defaultConfig.Stress.Progress, "show a progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(cmd.OutOrStdout(), NewStyles(loadConfig().Report.Color)); err != nil {
				log.Fatalf("Error showing settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Short:   "Self-balancing search tree playground",
		Long:    "avltree builds and inspects AVL trees of integers, reporting every rebalancing rotation",
	}
	rootCmd.AddCommand(cmdBuild, cmdRun, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return DefaultConfig()
	}
	return config
}

// runBuild inserts values, deletes the deletes, and prints the report.
func runBuild(w io.Writer, config *Config, values []string, deletes []string) error {
	inserts, err := avl.ParseValues(values)
	if err != nil {
		return err
	}
	removals, err := avl.ParseValues(deletes)
	if err != nil {
		return err
	}

	tree := avl.New()
	var rotations []avl.Rotation
	for _, v := range inserts {
		rotations = append(rotations, tree.Insert(v)...)
	}
	for _, v := range removals {
		rotations = append(rotations, tree.Delete(v)...)
	}

	styles := NewStyles(config.Report.Color)
	fmt.Fprint(w, NewReport(tree, rotations).Render(styles, config.Report))
	return nil
}

// runScript parses the script at path ("-" for in) and applies it to an
// empty tree. The final tree is always printed.
func runScript(w io.Writer, in io.Reader, config *Config, path string) error {
	var r io.Reader = in
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	ops, err := ParseScript(r)
	if err != nil {
		return err
	}

	session := NewSession(avl.New(), w, config)
	session.Run(ops)
	fmt.Fprint(w, session.Report())
	return nil
}
