/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package commands contains the nsx CLI commands.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dirpx.dev/nsx"
	"dirpx.dev/nsx/builder"
	"dirpx.dev/nsx/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries the global flags and the logger built from them.
type app struct {
	cfgFile string
	verbose bool
	logger  *log.Logger
}

// NewRootCommand returns the nsx command tree. Each call returns an
// independent tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "nsx",
		Short: "Inspect serialized class path resolution",
		Long: titleStyle.Render("nsx") + subtitleStyle.Render(" - serialized class path resolution") + `

nsx shows how legacy class paths found in serialized payloads are
translated to their current location, and whether the located class
may be constructed.

` + subtitleStyle.Render("Examples:") + `
  nsx resolve langchain.schema.messages.AIMessage
  nsx locate langchain.schema.AIMessage some.unknown.Widget
  nsx tables
  nsx tables legacy
  nsx check`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (toml, yaml or json)")

	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newLocateCmd(a))
	root.AddCommand(newTablesCmd(a))
	root.AddCommand(newCheckCmd(a))
	return root
}

// init loads configuration and installs it as the global snapshot.
func (a *app) init(cmd *cobra.Command) error {
	level := log.WarnLevel
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "nsx",
		Level:  level,
	})

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if err := nsx.SetAll(&cfg, builder.New(builder.WithLogger(a.logger))); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.logger.Debug("configuration loaded", "file", a.cfgFile, "layers", nsx.Resolver().Layers())
	return nil
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
