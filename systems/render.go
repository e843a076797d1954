package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kokaton/musou/assets"
	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(assets.BackgroundImage(), drawOp)
}

// DrawPlayer renders the bird posed along its facing. While invincible it
// blinks between the normal and the edge-filtered look.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	stage := GetStage(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		edge := player.State == components.PlayerInvincible && (stage.Frame/4)%2 == 0
		drawSprite(screen, assets.PlayerImage(int(player.Expression)), obj, sprite, edge, 1)
	})
}

func DrawBeams(ecs *ecs.ECS, screen *ebiten.Image) {
	img := assets.BeamImage()
	tags.Beam.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, img, components.Object.Get(e), components.Sprite.Get(e), false, 1)
	})
}

// DrawEnemies renders enemies, jammed ones edge-filtered.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		drawSprite(screen, assets.EnemyImage(enemy.Variant), components.Object.Get(e), components.Sprite.Get(e), enemy.Jammed, 1)
	})
}

func DrawBombs(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Bomb.Each(ecs.World, func(e *donburi.Entry) {
		bomb := components.Bomb.Get(e)
		obj := components.Object.Get(e)
		vector.FillCircle(screen, float32(obj.CenterX()), float32(obj.CenterY()), float32(bomb.Radius), bomb.Color, true)
	})
}

func DrawExplosions(ecs *ecs.ECS, screen *ebiten.Image) {
	img := assets.ExplosionImage()
	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		drawSprite(screen, img, components.Object.Get(e), components.Sprite.Get(e), false, 1)
	})
}

// DrawOverlays renders the full-screen tint of active EMP and gravity effects.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	tags.EMP.Each(ecs.World, func(e *donburi.Entry) {
		alpha := cfg.PowerUp.EMPAlpha * float64(components.Fade.Get(e).Alpha)
		vector.FillRect(screen, 0, 0, w, h, color.NRGBA{R: 255, G: 255, A: uint8(alpha)}, false)
	})
	tags.Gravity.Each(ecs.World, func(e *donburi.Entry) {
		alpha := cfg.PowerUp.GravityAlpha * float64(components.Fade.Get(e).Alpha)
		vector.FillRect(screen, 0, 0, w, h, color.NRGBA{A: uint8(alpha)}, false)
	})
}

func DrawShield(ecs *ecs.ECS, screen *ebiten.Image) {
	img := assets.ShieldImage()
	tags.Shield.Each(ecs.World, func(e *donburi.Entry) {
		shield := components.Shield.Get(e)
		fade := components.Fade.Get(e)
		// Shield rotation is counter-clockwise in degrees
		sprite := &components.SpriteData{Rotation: -shield.Rotation * math.Pi / 180}
		drawSprite(screen, img, components.Object.Get(e), sprite, false, fade.Alpha)
	})
}

// drawSprite draws img centered on the bounding box, mirrored and rotated
// about its center.
func drawSprite(screen, img *ebiten.Image, obj *components.ObjectData, sprite *components.SpriteData, edge bool, alpha float32) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	sx, sy := 1.0, 1.0
	if sprite.FlipX {
		sx = -1
	}
	if sprite.FlipY {
		sy = -1
	}
	drawOp.GeoM.Scale(sx, sy)
	drawOp.GeoM.Rotate(sprite.Rotation)
	drawOp.GeoM.Translate(obj.CenterX(), obj.CenterY())
	drawOp.ColorScale.ScaleAlpha(alpha)

	if edge && assets.EdgeShader != nil {
		shaderOp.GeoM = drawOp.GeoM
		shaderOp.ColorScale = drawOp.ColorScale
		shaderOp.Images[0] = img
		screen.DrawRectShader(w, h, assets.EdgeShader, shaderOp)
		return
	}
	if edge {
		drawOp.ColorScale.Scale(0.4, 0.4, 1, 1)
	}
	screen.DrawImage(img, drawOp)
}
