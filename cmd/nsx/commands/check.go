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
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx"
	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/tables"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [LAYER_FILE.cue...]",
		Short: "Validate the active layers, plus any extra layer documents",
		Long: `Validate the active layers, plus any extra layer documents.

Extra documents are validated against the layer schema and checked
below the active layers: keys they share with an active layer must be
declared in their overlaps list, and no mapping target may be remapped
again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := nsx.Tables()
			for _, file := range args {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read layer %s: %w", file, err)
				}
				l, err := tables.Decode(data, file)
				if err != nil {
					return err
				}
				a.logger.Debug("decoded layer", "file", file, "name", l.Name(), "entries", l.Count())
				set = append(set, apis.Table(l))
			}

			// The overlay may override anything; only the rest must be disjoint.
			disjoint := set
			if len(set) > 0 && set[0].Name() == tables.LayerOverlay {
				disjoint = set[1:]
			}
			if err := tables.CheckOverlaps(disjoint); err != nil {
				return err
			}
			if err := tables.CheckSingleHop(set); err != nil {
				return err
			}

			total := 0
			for _, t := range set {
				total += t.Count()
			}
			st := newStyles(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d layers, %d entries\n", st.success.Render("ok:"), len(set), total)
			return nil
		},
	}
}
