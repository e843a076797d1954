package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kokaton/musou/components"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box and prints frame statistics.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvBomb):
			c = color.RGBA{255, 140, 0, 255}
		case obj.HasTags(tags.ResolvShield):
			c = color.RGBA{0, 255, 0, 255}
		case obj.HasTags(tags.ResolvGravity):
			continue
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	stage := GetStage(ecs)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("frame %d  tps %.1f  objects %d",
		stage.Frame, ebiten.ActualTPS(), len(space.Objects())), 8, 8)
}
