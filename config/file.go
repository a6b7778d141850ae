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

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"dirpx.dev/nsx/apis"
)

// EnvPrefix prefixes environment overrides, e.g. NSX_PRECEDENCE="core serializable".
const EnvPrefix = "NSX"

// Keys understood by Load.
const (
	KeyPrecedence     = "precedence"
	KeyOverlay        = "overlay"
	KeyNamespaces     = "namespaces"
	KeyPathLoadDenied = "path_load_denied"
	KeyAllow          = "allow"
	KeyRules          = "rules"
)

// overlayEntry is one [[overlay]] item. Overlay is a list rather than a
// table because viper lowercases map keys and class names are case sensitive.
type overlayEntry struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Load builds an apis.Config from defaults, then the config file (if file is
// non-empty; format chosen by extension: toml, yaml or json), then NSX_*
// environment variables. List values from the environment are
// whitespace-separated; a variable set to "" clears the list (an empty
// precedence still falls back to the default order).
func Load(file string) (apis.Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyPrecedence, defaults.Precedence)
	v.SetDefault(KeyNamespaces, defaults.Namespaces)
	v.SetDefault(KeyPathLoadDenied, defaults.PathLoadDenied)
	v.SetDefault(KeyAllow, []string{})
	v.SetDefault(KeyRules, []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return apis.Config{}, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	var overlay []overlayEntry
	if err := v.UnmarshalKey(KeyOverlay, &overlay); err != nil {
		return apis.Config{}, fmt.Errorf("failed to parse %s: %w", KeyOverlay, err)
	}
	m := make(map[string]string, len(overlay))
	for i, e := range overlay {
		if e.From == "" || e.To == "" {
			return apis.Config{}, fmt.Errorf("failed to parse %s[%d]: from and to are required", KeyOverlay, i)
		}
		if prev, dup := m[e.From]; dup && prev != e.To {
			return apis.Config{}, fmt.Errorf("failed to parse %s[%d]: %s mapped to both %s and %s", KeyOverlay, i, e.From, prev, e.To)
		}
		m[e.From] = e.To
	}

	return NewConfig(
		WithPrecedence(v.GetStringSlice(KeyPrecedence)...),
		WithOverlay(m),
		WithNamespaces(v.GetStringSlice(KeyNamespaces)...),
		WithPathLoadDenied(v.GetStringSlice(KeyPathLoadDenied)...),
		WithAllow(v.GetStringSlice(KeyAllow)...),
		WithRules(v.GetStringSlice(KeyRules)...),
	), nil
}
