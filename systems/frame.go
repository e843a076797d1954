package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameplaySystems returns the per-frame simulation in execution order. Each
// one is skipped while paused or after game over.
func GameplaySystems() []ecs.System {
	ordered := []ecs.System{
		UpdatePowerUps,
		UpdateSpawns,
		UpdatePlayer,
		UpdateEnemies,
		UpdateProjectiles,
		UpdateEffects,
		UpdateGravity,
		UpdateCollisions,
	}
	for i, s := range ordered {
		ordered[i] = WithGameplayChecks(s)
	}
	return ordered
}

// Renderers returns the draw functions in back-to-front order.
func Renderers() []func(*ecs.ECS, *ebiten.Image) {
	return []func(*ecs.ECS, *ebiten.Image){
		DrawBackground,
		DrawPlayer,
		DrawBeams,
		DrawEnemies,
		DrawBombs,
		DrawExplosions,
		DrawOverlays,
		DrawHUD,
		DrawShield,
		DrawDebug,
		DrawGameOver,
	}
}
