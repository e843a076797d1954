package factory

import (
	"math"

	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBeam fires a beam along the player's facing rotated by offset
// degrees. It spawns one player size ahead of the player center.
func CreateBeam(ecs *ecs.ECS, player *donburi.Entry, offset float64) *donburi.Entry {
	p := components.Player.Get(player)
	po := components.Object.Get(player)

	angle, dx, dy := gamemath.BeamDirection(p.Facing.X, p.Facing.Y, offset)
	cx := po.CenterX() + po.W*dx
	cy := po.CenterY() + po.H*dy

	beam := archetypes.Beam.Spawn(ecs)
	w, h := gamemath.RotatedBounds(cfg.Beam.Width, cfg.Beam.Height, angle)
	attachObject(ecs, beam, cx-w/2, cy-h/2, w, h, tags.ResolvBeam)

	components.Beam.SetValue(beam, components.BeamData{Angle: angle})
	components.Velocity.SetValue(beam, components.VelocityData{
		Dir:   components.Vector{X: dx, Y: dy},
		Speed: cfg.Beam.Speed,
	})
	// Screen rotation runs clockwise
	components.Sprite.SetValue(beam, components.SpriteData{Rotation: -angle * math.Pi / 180})

	return beam
}

// CreateSpread fires n beams fanned evenly over spread degrees around the
// player's facing.
func CreateSpread(ecs *ecs.ECS, player *donburi.Entry, n int, spread float64) []*donburi.Entry {
	angles := gamemath.FanAngles(n, spread)
	beams := make([]*donburi.Entry, 0, len(angles))
	for _, a := range angles {
		beams = append(beams, CreateBeam(ecs, player, a))
	}
	return beams
}
