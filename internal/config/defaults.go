package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"tenets_dir":   "./docs/tenets",
		"bindings_dir": "./docs/bindings",
		"version_file": "./VERSION",
		"workers":      0,
		"show_context": true,
		"no_color":     false,
	}
}
