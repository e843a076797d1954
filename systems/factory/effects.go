package factory

import (
	"github.com/kokaton/musou/archetypes"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/shared/gamemath"
	"github.com/kokaton/musou/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion spawns an explosion centered on (cx, cy) lasting life frames.
// Explosions are not part of the collision space.
func CreateExplosion(ecs *ecs.ECS, cx, cy float64, life int) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)

	s := cfg.Explosion.Size
	components.Object.SetValue(explosion, components.ObjectData{
		Object: newDetachedObject(explosion, cx-s/2, cy-s/2, s, s),
	})
	components.Explosion.SetValue(explosion, components.ExplosionData{Life: life})

	return explosion
}

// CreateShield spawns the shield in front of the player.
func CreateShield(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	shield := archetypes.Shield.Spawn(ecs)

	p := components.Player.Get(player)
	po := components.Object.Get(player)
	angle := gamemath.FacingAngle(p.Facing.X, p.Facing.Y)
	w, h := gamemath.RotatedBounds(cfg.PowerUp.ShieldWidth, cfg.ShieldHeight(), angle)
	ox, oy := gamemath.ShieldOffset(po.W, po.H, p.Facing.X, p.Facing.Y)
	cx, cy := po.CenterX()+ox, po.CenterY()+oy

	attachObject(ecs, shield, cx-w/2, cy-h/2, w, h, tags.ResolvShield)
	components.Shield.SetValue(shield, components.ShieldData{
		Life:     cfg.PowerUp.ShieldLife,
		Rotation: angle,
	})
	components.Fade.SetValue(shield, newFadeIn())

	return shield
}

// CreateEMP spawns the EMP overlay. Jamming enemies and slowing bombs is done
// by the activation, not here.
func CreateEMP(ecs *ecs.ECS) *donburi.Entry {
	emp := archetypes.EMP.Spawn(ecs)
	components.EMP.SetValue(emp, components.EMPData{Duration: cfg.PowerUp.EMPDuration})
	components.Fade.SetValue(emp, newFadeIn())
	return emp
}

// CreateGravity spawns the full-screen gravity field.
func CreateGravity(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	gravity := archetypes.Gravity.Spawn(ecs)
	attachObject(ecs, gravity, 0, 0, width, height, tags.ResolvGravity)
	components.Gravity.SetValue(gravity, components.GravityData{Life: cfg.PowerUp.GravityLife})
	components.Fade.SetValue(gravity, newFadeIn())
	return gravity
}

func newFadeIn() components.FadeData {
	return components.FadeData{
		Tween: gween.New(0, 1, cfg.PowerUp.FadeInSeconds, ease.OutQuad),
	}
}
