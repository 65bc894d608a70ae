package config

import (
	_ "embed"
)

//go:embed defaults/brickfall.yaml
var defaultYAML []byte
