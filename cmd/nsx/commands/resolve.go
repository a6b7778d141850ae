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

	"github.com/spf13/cobra"

	"dirpx.dev/nsx"
	upath "dirpx.dev/nsx/utils/path"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH...",
		Short: "Translate dotted class paths without applying the allow-list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyles(out)
			for _, arg := range args {
				p, err := upath.Parse(arg)
				if err != nil {
					return err
				}
				res, err := nsx.Resolve(p)
				if err != nil {
					return err
				}
				switch {
				case res.Found():
					fmt.Fprintf(out, "%s -> %s %s\n", arg, st.path.Render(res.Path.String()), st.muted.Render("("+res.Layer+")"))
				case res.Layer != "":
					fmt.Fprintf(out, "%s %s\n", arg, st.muted.Render("(current, "+res.Layer+")"))
				default:
					fmt.Fprintf(out, "%s %s\n", arg, st.muted.Render("(not found)"))
				}
				a.logger.Debug("resolved", "path", arg, "status", res.Status, "layer", res.Layer)
			}
			return nil
		},
	}
}
