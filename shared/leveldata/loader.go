package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/metroidvania/shared/tilegrid"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidLevel is returned for maps the movement core cannot use.
var ErrInvalidLevel = errors.New("invalid level")

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (game) or os.DirFS (simulator).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.TileWidth != levelMap.TileHeight || levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("%w: %s has %dx%d tiles, want square",
			ErrInvalidLevel, tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		TileSize: float64(levelMap.TileWidth),
	}

	// Parse solid cells from the solid layer
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		level.Cells = make([][]int, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			row := make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				if tile := layer.Tiles[y*levelMap.Width+x]; tile != nil && !tile.IsNil() {
					row[x] = tilegrid.Solid
				}
			}
			level.Cells[y] = row
		}
		break
	}
	if level.Cells == nil {
		return nil, fmt.Errorf("%w: %s has no %q layer", ErrInvalidLevel, tmxPath, SolidLayer)
	}

	// The first object of the spawn group places the actor
	level.Spawn = math.NewVec2(float64(level.Width())/2, 0)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup || len(og.Objects) == 0 {
			continue
		}
		level.Spawn = math.NewVec2(og.Objects[0].X, og.Objects[0].Y)
		break
	}

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// Default is the built-in 20x12 level of 32px tiles: open air over a five row
// floor, spawn centred at the top.
func Default() *Level {
	const rows, cols = 12, 20

	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		if r < 7 {
			continue
		}
		for c := range cells[r] {
			cells[r][c] = tilegrid.Solid
		}
	}

	return &Level{
		Name:     "default",
		Cells:    cells,
		TileSize: 32,
		Spawn:    math.NewVec2(320, 0),
	}
}
