package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/vinehop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the level a new run starts on.
const DefaultLevel = "garden"

// LevelNames lists the embedded levels, sorted, without extension.
func LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".tmx" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel parses the embedded level called name.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.Load(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		return nil, err
	}
	level.Name = name
	return level, nil
}

// MustLoadLevel is LoadLevel for levels shipped with the game.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
