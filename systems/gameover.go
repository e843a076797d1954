package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/fonts"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the game-over banner while the exit countdown runs.
func DrawGameOver(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOver(ecs) {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, float32(height)/2-70, float32(width), 140, cfg.UI.GameOverOverlay, false)

	title := "Game Over"
	face := fonts.GameOver.Get()
	b := text.BoundString(face, title)
	text.Draw(screen, title, face, (width-b.Dx())/2, height/2, cfg.UI.GameOverColor)

	final := fmt.Sprintf("Score: %d", GetScore(ecs).Value)
	small := fonts.Small.Get()
	fb := text.BoundString(small, final)
	text.Draw(screen, final, small, (width-fb.Dx())/2, height/2+40, cfg.White)
}
