package assets

import (
	"embed"
	"fmt"
	"io/fs"

	cfg "github.com/kokaton/musou/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:stages
var stageFS embed.FS

// StageLayout is the playfield description read from a Tiled map.
type StageLayout struct {
	Width, Height int

	PlayerSpawnX, PlayerSpawnY float64 // Player center

	LaneX, LaneY, LaneW, LaneH float64 // Enemy spawn lane
	MinStop, MaxStop           float64 // Enemy stop altitude range (center y)
}

// DefaultLayout builds the layout from config values alone.
func DefaultLayout() *StageLayout {
	l := &StageLayout{
		Width:        cfg.C.Width,
		Height:       cfg.C.Height,
		PlayerSpawnX: cfg.Player.SpawnX,
		PlayerSpawnY: cfg.Player.SpawnY,
		LaneW:        float64(cfg.C.Width),
		MinStop:      float64(cfg.Enemy.MinStop),
		MaxStop:      float64(cfg.Enemy.MaxStop),
	}
	l.applyDefaults()
	return l
}

// LoadStage parses an embedded stage map.
func LoadStage(tmxPath string) (*StageLayout, error) {
	return LoadStageFS(stageFS, tmxPath)
}

// LoadStageOrDefault parses an embedded stage map and falls back to
// DefaultLayout when it cannot be read. The error is still returned so the
// caller can report it.
func LoadStageOrDefault(tmxPath string) (*StageLayout, error) {
	l, err := LoadStage(tmxPath)
	if err != nil {
		return DefaultLayout(), err
	}
	return l, nil
}

// LoadStageFS parses a stage map from fsys. The map needs no tile layers: the
// playfield size comes from the map dimensions and the spawn data from the
// PlayerSpawn and EnemyLane object groups.
func LoadStageFS(fsys fs.FS, tmxPath string) (*StageLayout, error) {
	stageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &StageLayout{
		Width:        stageMap.Width * stageMap.TileWidth,
		Height:       stageMap.Height * stageMap.TileHeight,
		PlayerSpawnX: cfg.Player.SpawnX,
		PlayerSpawnY: cfg.Player.SpawnY,
		MinStop:      float64(cfg.Enemy.MinStop),
		MaxStop:      float64(cfg.Enemy.MaxStop),
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("stage %s has no size", tmxPath)
	}
	l.LaneW = float64(l.Width)

	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				l.PlayerSpawnX = og.Objects[0].X
				l.PlayerSpawnY = og.Objects[0].Y
			}
		case "EnemyLane":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			l.LaneX, l.LaneY = o.X, o.Y
			l.LaneW, l.LaneH = o.Width, o.Height
			if v := o.Properties.GetInt("minStop"); v > 0 {
				l.MinStop = float64(v)
			}
			if v := o.Properties.GetInt("maxStop"); v > 0 {
				l.MaxStop = float64(v)
			}
		}
	}

	l.applyDefaults()
	if l.MinStop > l.MaxStop {
		return nil, fmt.Errorf("stage %s: minStop %v above maxStop %v", tmxPath, l.MinStop, l.MaxStop)
	}
	return l, nil
}

func (l *StageLayout) applyDefaults() {
	if l.MaxStop <= 0 {
		l.MaxStop = float64(l.Height) / 2
	}
	if l.LaneW <= 0 {
		l.LaneW = float64(l.Width)
	}
}
