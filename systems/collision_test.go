package systems

import (
	"testing"

	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems/factory"
	"github.com/kokaton/musou/tags"
)

func TestBombHitEndsGame(t *testing.T) {
	e, player := newTestStage(t)
	po := components.Object.Get(player)
	factory.SpawnBomb(e, po.CenterX(), po.CenterY(), 0, 1, 10, cfg.Red)

	UpdateCollisions(e)

	if !IsGameOver(e) {
		t.Fatal("expected game over after a bomb hit")
	}
	if got := count(e, tags.Bomb); got != 0 {
		t.Errorf("bombs = %d, want 0", got)
	}
	if got := components.Player.Get(player).Expression; got != components.ExpressionSad {
		t.Errorf("expression = %v, want sad", got)
	}
	if !queued(e, cfg.SoundGameOver) {
		t.Error("game over sound not queued")
	}

	for i := 0; i < cfg.Stage.GameOverDelay-1; i++ {
		UpdateStage(e)
	}
	if GetStage(e).Quit {
		t.Fatal("quit before the game over delay elapsed")
	}
	UpdateStage(e)
	if !GetStage(e).Quit {
		t.Fatal("expected quit once the game over delay elapsed")
	}
}

func TestInvinciblePlayerAbsorbsBomb(t *testing.T) {
	e, player := newTestStage(t)
	setScore(e, cfg.PowerUp.HyperCost)
	if !ActivateHyper(e) {
		t.Fatal("hyper should activate with enough score")
	}

	po := components.Object.Get(player)
	factory.SpawnBomb(e, po.CenterX(), po.CenterY(), 0, 1, 10, cfg.Red)
	UpdateCollisions(e)

	if IsGameOver(e) {
		t.Fatal("invincible player must survive a bomb")
	}
	if got := GetScore(e).Value; got != cfg.Score.BombByHyper {
		t.Errorf("score = %d, want %d", got, cfg.Score.BombByHyper)
	}
	if got := count(e, tags.Bomb); got != 0 {
		t.Errorf("bombs = %d, want 0", got)
	}
	if got := count(e, tags.Explosion); got != 1 {
		t.Fatalf("explosions = %d, want 1", got)
	}
	ex, _ := tags.Explosion.First(e.World)
	if got := components.Explosion.Get(ex).Life; got != cfg.Explosion.HyperKillLife {
		t.Errorf("explosion life = %d, want %d", got, cfg.Explosion.HyperKillLife)
	}
}

func TestBeamKillsEnemy(t *testing.T) {
	e, player := newTestStage(t)
	beam := factory.CreateBeam(e, player, 0)
	bo := components.Object.Get(beam)

	enemy := factory.SpawnEnemy(e, 0, 100, 100, 0)
	moveTo(enemy, bo.CenterX(), bo.CenterY())

	UpdateCollisions(e)

	if got := count(e, tags.Enemy); got != 0 {
		t.Errorf("enemies = %d, want 0", got)
	}
	if got := count(e, tags.Beam); got != 0 {
		t.Errorf("beams = %d, want 0", got)
	}
	if got := GetScore(e).Value; got != cfg.Score.EnemyByBeam {
		t.Errorf("score = %d, want %d", got, cfg.Score.EnemyByBeam)
	}
	p := components.Player.Get(player)
	if p.Expression != components.ExpressionHappy || p.ExpressionFrames != cfg.Player.ReactionFrames {
		t.Errorf("expression = %v (%d frames), want happy (%d frames)",
			p.Expression, p.ExpressionFrames, cfg.Player.ReactionFrames)
	}
	ex, ok := tags.Explosion.First(e.World)
	if !ok {
		t.Fatal("expected an explosion")
	}
	if got := components.Explosion.Get(ex).Life; got != cfg.Explosion.EnemyLife {
		t.Errorf("explosion life = %d, want %d", got, cfg.Explosion.EnemyLife)
	}
}

func TestBeamKillsBomb(t *testing.T) {
	e, player := newTestStage(t)
	beam := factory.CreateBeam(e, player, 0)
	bo := components.Object.Get(beam)
	factory.SpawnBomb(e, bo.CenterX(), bo.CenterY(), 0, 1, 5, cfg.Blue)

	UpdateCollisions(e)

	if got := count(e, tags.Bomb); got != 0 {
		t.Errorf("bombs = %d, want 0", got)
	}
	if got := count(e, tags.Beam); got != 0 {
		t.Errorf("beams = %d, want 0", got)
	}
	if got := GetScore(e).Value; got != cfg.Score.BombByBeam {
		t.Errorf("score = %d, want %d", got, cfg.Score.BombByBeam)
	}
	if IsGameOver(e) {
		t.Error("unexpected game over")
	}
}

func TestBeamConsumedByEnemyFirst(t *testing.T) {
	e, player := newTestStage(t)
	beam := factory.CreateBeam(e, player, 0)
	bo := components.Object.Get(beam)

	enemy := factory.SpawnEnemy(e, 0, 100, 100, 0)
	moveTo(enemy, bo.CenterX(), bo.CenterY())
	factory.SpawnBomb(e, bo.CenterX(), bo.CenterY(), 0, 1, 5, cfg.Blue)

	UpdateCollisions(e)

	if got := count(e, tags.Enemy); got != 0 {
		t.Errorf("enemies = %d, want 0", got)
	}
	if got := count(e, tags.Bomb); got != 1 {
		t.Errorf("bombs = %d, want 1: the beam is gone before bombs are checked", got)
	}
	if got := GetScore(e).Value; got != cfg.Score.EnemyByBeam {
		t.Errorf("score = %d, want %d", got, cfg.Score.EnemyByBeam)
	}
}

func TestShieldBlocksBomb(t *testing.T) {
	e, _ := newTestStage(t)
	setScore(e, cfg.PowerUp.ShieldCost)
	if !ActivateShield(e) {
		t.Fatal("shield should activate with enough score")
	}
	shield, _ := tags.Shield.First(e.World)
	so := components.Object.Get(shield)
	factory.SpawnBomb(e, so.CenterX(), so.Y+10, 0, 1, 5, cfg.Green)

	UpdateCollisions(e)

	if got := count(e, tags.Bomb); got != 0 {
		t.Errorf("bombs = %d, want 0", got)
	}
	if got := GetScore(e).Value; got != 0 {
		t.Errorf("score = %d, want 0: shield kills are not scored", got)
	}
	if got := count(e, tags.Explosion); got != 0 {
		t.Errorf("explosions = %d, want 0", got)
	}
	if IsGameOver(e) {
		t.Error("unexpected game over")
	}
	if !queued(e, cfg.SoundShieldBlock) {
		t.Error("shield block sound not queued")
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	e, player := newTestStage(t)
	po := components.Object.Get(player)
	// Bomb box starts exactly where the player box ends
	factory.SpawnBomb(e, po.X+po.W+10, po.CenterY(), 0, 1, 10, cfg.Red)

	UpdateCollisions(e)

	if IsGameOver(e) {
		t.Error("rectangles sharing an edge must not collide")
	}
	if got := count(e, tags.Bomb); got != 1 {
		t.Errorf("bombs = %d, want 1", got)
	}
}
