package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/fonts"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders "Score: N" centered near the bottom-left corner, pulsing
// when points are scored, with the best score below it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	score := GetScore(ecs)
	height := float64(screen.Bounds().Dy())

	face := fonts.Score.Get()
	label := fmt.Sprintf("Score: %d", score.Value)
	bounds := text.BoundString(face, label)

	cx, cy := cfg.UI.ScoreX, height-cfg.UI.ScoreY
	scale := 1 + float64(score.PulseScale)

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-float64(bounds.Dx())/2, float64(bounds.Dy())/2)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(cx, cy)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.UI.ScoreColor)
	text.DrawWithOptions(screen, label, face, hudDrawOp)

	small := fonts.Small.Get()
	best := fmt.Sprintf("Best: %d", score.Best)
	bestBounds := text.BoundString(small, best)
	text.Draw(screen, best, small, int(cx)-bestBounds.Dx()/2, int(cy)+bounds.Dy()+8, cfg.UI.BestColor)
}
