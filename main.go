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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/avl"
)

// set at build time with -ldflags "-X main.version=..."
var version = "dev"

var errCheckFailed = errors.New("tree check failed")

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing search trees, one rotation at a time [Version: %s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, color.GreenString(version))

	var (
		configPath string
		logLevel   string
		cfg        *Config
	)

	var rootCmd = &cobra.Command{
		Use:           "avltree",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				color.NoColor = true
			}
			loaded, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.Log.Level = logLevel
			}
			if cmd.Flags().Changed("natural-order") {
				loaded.Driver.NaturalOrder, _ = cmd.Flags().GetBool("natural-order")
			}
			if cmd.Flags().Changed("insert-only") {
				loaded.Driver.InsertOnly, _ = cmd.Flags().GetBool("insert-only")
			}
			if err := setupLogger(os.Stderr, loaded.Log.Level, !isTerminal(os.Stderr)); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			cfg = loaded
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.avltree.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("natural-order", false, `run object steps as 1, 2, ..., 10 instead of byte order "1", "10", "2"`)
	rootCmd.PersistentFlags().Bool("insert-only", false, "skip every script step that is not an Insert")

	var cmdRun = &cobra.Command{
		Use:   "run FILE",
		Short: "Apply a script and print the tree record",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Run applies every operation of the script to an empty tree and prints the final record.

Object steps run in byte order of their names ("1", "10", "2"); pass
--natural-order to run them numerically. Delete, DeleteMin and Find
steps are applied too and change the resulting tree; pass --insert-only
to apply Insert steps alone.`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cfg.Output.Format, _ = cmd.Flags().GetString("format")
			}
			if cmd.Flags().Changed("validate") {
				cfg.Driver.Validate, _ = cmd.Flags().GetBool("validate")
			}
			if cmd.Flags().Changed("progress") {
				cfg.Driver.Progress, _ = cmd.Flags().GetBool("progress")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			s, err := loadSession(cfg, args[0])
			if err != nil {
				return err
			}
			return WriteRecord(os.Stdout, s.Tree().Record(), cfg.Output.Format, cfg.Output.Indent)
		},
	}
	cmdRun.Flags().String("format", FormatJSON, "output format: json, yaml or cbor")
	cmdRun.Flags().Bool("validate", false, "validate the script against its JSON schema first")
	cmdRun.Flags().Bool("progress", false, "draw a progress bar on stderr")

	var cmdShow = &cobra.Command{
		Use:   "show FILE",
		Short: "Apply a script and draw the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cfg, args[0])
			if err != nil {
				return err
			}
			label := NodeLabeler(NewColorScheme(), !isTerminal(os.Stdout))
			fmt.Print(s.Render("show", label))
			return nil
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats FILE",
		Short: "Apply a script and list every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cfg, args[0])
			if err != nil {
				return err
			}
			writeStats(os.Stdout, s.Tree())
			return nil
		},
	}

	var cmdCheck = &cobra.Command{
		Use:   "check FILE",
		Short: "Apply a script and verify the tree invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cfg, args[0])
			if err != nil {
				return err
			}
			if !writeCheck(os.Stdout, s.Tree()) {
				return errCheckFailed
			}
			return nil
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [FILE]",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI to insert, delete and find keys while watching the tree`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := NewSession(cfg.Explore)
			if len(args) == 1 {
				var err error
				if s, err = loadSession(cfg, args[0]); err != nil {
					return err
				}
			}
			return runExplorer(s, cfg)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltree configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Display the effective settings, creating ~/.avltree.yaml with defaults if missing`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(os.Stdout, configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(cmdRun, cmdShow, cmdStats, cmdCheck, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		}
		os.Exit(1)
	}
}

func writeStats(w io.Writer, tree *avl.Tree) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Key", "Height", "Balance", "Left", "Right", "Parent"})

	keyOf := func(n *avl.Node) any {
		if n == nil {
			return "-"
		}
		return n.Key()
	}
	tree.InOrder(func(n *avl.Node) bool {
		t.AppendRow(table.Row{n.Key(), n.Height(), fmt.Sprintf("%+d", n.BalanceFactor()), keyOf(n.Left()), keyOf(n.Right()), keyOf(n.Parent())})
		return true
	})
	t.AppendFooter(table.Row{"", "", "", "", "Nodes", humanize.Comma(int64(tree.Size()))})
	t.Render()

	fmt.Fprintf(w, "%s nodes, height %d, root %v\n", humanize.Comma(int64(tree.Size())), tree.Height(), keyOf(tree.Root()))
}

// writeCheck reports the structural and balance checks and returns
// whether both passed.
func writeCheck(w io.Writer, tree *avl.Tree) bool {
	ok := true
	report := func(name string, err error) {
		if err == nil {
			fmt.Fprintf(w, "%s %s\n", color.GreenString("OK  "), name)
			return
		}
		ok = false
		fmt.Fprintf(w, "%s %s\n", color.RedString("FAIL"), name)
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "     %s\n", line)
		}
	}
	report("structure", tree.Verify())
	report("balance", tree.CheckBalance())
	return ok
}
