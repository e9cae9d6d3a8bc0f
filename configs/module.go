package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Schema is the closed struct body every config file must satisfy.
var Schema = `
strict_lexing?: bool
`

type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths ConfigPaths
	if p := os.Getenv("JASP_CONFIG"); p != "" {
		paths = append(paths, p)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "jasp", "jasp.cue"))
	}
	return paths
}

func (Module) Loader(
	paths ConfigPaths,
) Loader {
	return NewLoader(paths, Schema)
}
