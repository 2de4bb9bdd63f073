// Manifest loading declares CLI-managed variables from variables.yaml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

const manifestFileName = "variables"

// defaultManifestYAML seeds a commented starter manifest on init.
const defaultManifestYAML = `# Larder variable declarations
#
# Example:
#
# variables:
#   - name: worker_count
#     type: integer
#     default: 4
#     rules:
#       - presence
#       - name: greater_than
#         value: 0
variables: []
`

// loadManifest reads variables.yaml from configDir and declares each entry
// in the registry. A missing manifest leaves the registry empty.
func loadManifest(r *settings.Registry, configDir string) error {
	v := viper.New()
	v.SetConfigName(manifestFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read manifest: %w", err)
	}

	var entries []manifestEntry
	if err := v.UnmarshalKey("variables", &entries); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}
	for _, e := range entries {
		if err := declareEntry(r, e); err != nil {
			return err
		}
	}
	return nil
}

// manifestEntry is one variable declaration as it appears in variables.yaml.
type manifestEntry struct {
	Name    string
	Type    string
	Default any
	Rules   []any
}

func declareEntry(r *settings.Registry, e manifestEntry) error {
	typ, err := settings.ParseType(e.Type)
	if err != nil {
		return fmt.Errorf("variable %q: %w", e.Name, err)
	}
	spec := settings.Variable{Name: e.Name, Type: typ}
	if e.Default != nil {
		switch d := e.Default.(type) {
		case []any:
			spec.Default = d
		case map[string]any:
			spec.Default = d
		default:
			// Scalars round-trip through the coercer so the default
			// carries the declared type.
			spec.Default = settings.Coerce(typ, fmt.Sprint(d))
		}
	}
	for _, raw := range e.Rules {
		rule, err := parseRule(raw)
		if err != nil {
			return fmt.Errorf("variable %q: %w", e.Name, err)
		}
		spec.Rules = append(spec.Rules, rule)
	}
	if err := r.Declare(spec); err != nil {
		return fmt.Errorf("declare %q: %w", e.Name, err)
	}
	return nil
}

// parseRule accepts either a bare rule name or a map with a name key whose
// remaining keys become rule parameters.
func parseRule(raw any) (settings.Rule, error) {
	switch rv := raw.(type) {
	case string:
		return settings.RuleNamed(rv, nil), nil
	case map[string]any:
		name, _ := rv["name"].(string)
		if name == "" {
			return settings.Rule{}, fmt.Errorf("rule entry missing name")
		}
		params := make(map[string]any, len(rv)-1)
		for k, val := range rv {
			if k != "name" {
				params[k] = val
			}
		}
		return settings.RuleNamed(name, params), nil
	default:
		return settings.Rule{}, fmt.Errorf("rule entry must be a name or a map, got %T", raw)
	}
}

// ensureDefaultManifest writes a starter manifest when none exists.
func ensureDefaultManifest(configDir string) error {
	path := filepath.Join(configDir, manifestFileName+"."+configFileType)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat manifest: %w", err)
	}
	return os.WriteFile(path, []byte(defaultManifestYAML), 0o644)
}
