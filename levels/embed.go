package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// Default is the level the front ends start on.
const Default = "ridge.json"

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Load reads a level from disk when the path exists, otherwise from the
// embedded set.
func Load(name string) (*Level, error) {
	if data, err := os.ReadFile(name); err == nil {
		return Parse(data)
	}
	return LoadLevelFromFS(name)
}

// Names lists the embedded levels.
func Names() []string {
	matches, _ := fs.Glob(LevelsFS, "*.json")
	return matches
}
