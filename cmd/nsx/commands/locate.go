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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/nsx"
	"dirpx.dev/nsx/guard"
	upath "dirpx.dev/nsx/utils/path"
)

// errRefused is returned when at least one path was refused.
var errRefused = errors.New("one or more paths were refused")

func newLocateCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locate PATH...",
		Short: "Resolve dotted class paths and apply the allow-list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyles(out)
			refused := 0
			for _, arg := range args {
				p, err := upath.Parse(arg)
				if err != nil {
					return err
				}
				target, err := nsx.Locate(p)
				var re *guard.RefusalError
				switch {
				case errors.As(err, &re):
					refused++
					fmt.Fprintf(out, "%s %s %s\n", arg, st.err.Render("refused:"), re.Reason)
				case err != nil:
					return err
				default:
					fmt.Fprintf(out, "%s %s %s\n", arg, st.success.Render("->"), st.path.Render(target.String()))
				}
			}
			if refused > 0 {
				return fmt.Errorf("%w (%d of %d)", errRefused, refused, len(args))
			}
			return nil
		},
	}
}
