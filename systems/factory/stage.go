package factory

import (
	"math/rand/v2"

	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/assets"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage sets up the singletons of a run (stage state, score, collision
// space) and spawns the player. It returns the player entry.
func CreateStage(ecs *ecs.ECS, layout *assets.StageLayout, seed uint64, best int) *donburi.Entry {
	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{
		Width:        float64(layout.Width),
		Height:       float64(layout.Height),
		Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		PlayerSpawnX: layout.PlayerSpawnX,
		PlayerSpawnY: layout.PlayerSpawnY,
		EnemyLane: components.Rect{
			X: layout.LaneX, Y: layout.LaneY,
			W: layout.LaneW, H: layout.LaneH,
		},
		MinStop: layout.MinStop,
		MaxStop: layout.MaxStop,
	})

	score := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(score, components.ScoreData{Best: best})

	CreateSpace(ecs, layout.Width, layout.Height, cfg.Stage.TileSize, cfg.Stage.TileSize)

	return CreatePlayer(ecs, layout.PlayerSpawnX, layout.PlayerSpawnY)
}
