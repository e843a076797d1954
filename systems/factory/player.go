package factory

import (
	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (cx, cy), facing right.
func CreatePlayer(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	attachObject(ecs, player, cx-w/2, cy-h/2, w, h, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		Facing: components.Vector{X: 1, Y: 0},
		Speed:  cfg.Player.Speed,
		State:  components.PlayerNormal,
	})

	return player
}
