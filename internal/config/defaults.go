package config

import _ "embed"

//go:embed stories.yaml
var defaultStories []byte

// Default returns the built-in stories document.
func Default() (*Config, error) {
	return Parse("built-in stories", defaultStories)
}
