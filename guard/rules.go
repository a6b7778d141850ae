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

package guard

import (
	"errors"
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"dirpx.dev/nsx/apis"
)

// ErrRule wraps failures to compile or evaluate an allow rule.
var ErrRule = errors.New("nsx(guard): allow rule")

// rule is a compiled expr-lang predicate over a path.
// Programs are read-only after compilation and safe to run concurrently.
type rule struct {
	src     string
	program *exprvm.Program
}

// ruleEnv is the evaluation environment exposed to rules:
//
//	path    []string  all segments
//	root    string    first segment
//	module  string    dotted module path
//	class   string    last segment
//	dotted  string    the whole path, dotted
type ruleEnv struct {
	Path   []string `expr:"path"`
	Root   string   `expr:"root"`
	Module string   `expr:"module"`
	Class  string   `expr:"class"`
	Dotted string   `expr:"dotted"`
}

func envFor(p apis.Path) ruleEnv {
	return ruleEnv{
		Path:   p,
		Root:   p.Root(),
		Module: p.Module().String(),
		Class:  p.Class(),
		Dotted: p.String(),
	}
}

// compileRule type-checks src against ruleEnv and requires a bool result.
func compileRule(src string) (rule, error) {
	if src == "" {
		return rule{}, fmt.Errorf("%w: expression must not be empty", ErrRule)
	}
	program, err := exprlang.Compile(src, exprlang.Env(ruleEnv{}), exprlang.AsBool())
	if err != nil {
		return rule{}, fmt.Errorf("%w: compile %q: %w", ErrRule, src, err)
	}
	return rule{src: src, program: program}, nil
}

// match runs the rule for p.
func (r rule) match(p apis.Path) (bool, error) {
	out, err := exprlang.Run(r.program, envFor(p))
	if err != nil {
		return false, fmt.Errorf("%w: evaluate %q: %w", ErrRule, r.src, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
