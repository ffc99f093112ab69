package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

type LevelLoader struct {
	levels map[string]*leveldata.Level
	names  []string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels parses every embedded level. A broken level file is a build
// problem, so it panics.
func (l *LevelLoader) MustLoadLevels() []string {
	if l.levels != nil {
		return l.names
	}

	levels, names, err := leveldata.LoadAllLevels(assetFS, config.Level.Dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	l.levels = levels
	l.names = names

	return names
}

// Level returns the named level, falling back to the built-in layout when the
// name is unknown.
func (l *LevelLoader) Level(name string) *leveldata.Level {
	l.MustLoadLevels()
	if level, ok := l.levels[name]; ok {
		return level
	}
	return leveldata.Default()
}
