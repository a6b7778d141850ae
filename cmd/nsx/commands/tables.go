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

package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx"
	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/tables"
)

func newTablesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables [LAYER]",
		Short: "List the active layers, or the entries of one layer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active := nsx.Tables()
			if len(args) == 1 {
				i := slices.IndexFunc(active, func(t apis.Table) bool { return t.Name() == args[0] })
				if i < 0 {
					return fmt.Errorf("%w: %q is not active", tables.ErrUnknownLayer, args[0])
				}
				printEntries(cmd, active[i])
				return nil
			}
			return printLayers(cmd, active)
		},
	}
}

func printLayers(cmd *cobra.Command, active []apis.Table) error {
	compiled, err := tables.Compiled()
	if err != nil {
		return err
	}
	descriptions := make(map[string]string, len(compiled))
	for _, l := range compiled {
		descriptions[l.Name()] = l.Description
	}
	descriptions[tables.LayerOverlay] = "Caller-supplied overrides from configuration."

	out := cmd.OutOrStdout()
	st := newStyles(out)
	fmt.Fprintln(out, st.title.Render("Layers, highest precedence first:"))
	for _, t := range active {
		fmt.Fprintf(out, "  %s %4d  %s\n", st.name.Render(t.Name()), t.Count(), st.muted.Render(descriptions[t.Name()]))
	}
	return nil
}

func printEntries(cmd *cobra.Command, t apis.Table) {
	out := cmd.OutOrStdout()
	st := newStyles(out)
	fmt.Fprintln(out, st.title.Render(fmt.Sprintf("%s (%d entries)", t.Name(), t.Count())))
	for _, e := range t.Entries() {
		if e.From.Equal(e.To) {
			fmt.Fprintf(out, "  %s %s\n", e.From, st.muted.Render("(current)"))
			continue
		}
		fmt.Fprintf(out, "  %s -> %s\n", e.From, st.path.Render(e.To.String()))
		if t.Shadows(e.From) {
			fmt.Fprintf(out, "    %s\n", st.muted.Render("overrides a lower layer"))
		}
	}
}
