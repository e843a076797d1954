package systems

import (
	"math"
	"testing"

	"github.com/kokaton/musou/components"
	cfg "github.com/kokaton/musou/config"
	"github.com/kokaton/musou/systems/factory"
	"github.com/kokaton/musou/tags"
	"github.com/yohamta/donburi/ecs"
)

func TestPowerUpsNeedScore(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		activate func(*ecs.ECS) bool
	}{
		{"hyper", cfg.PowerUp.HyperCost, ActivateHyper},
		{"emp", cfg.PowerUp.EMPCost, ActivateEMP},
		{"gravity", cfg.PowerUp.GravityCost, ActivateGravity},
		{"shield", cfg.PowerUp.ShieldCost, ActivateShield},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestStage(t)
			setScore(e, tt.cost-1)

			if tt.activate(e) {
				t.Fatal("activated without enough score")
			}
			if got := GetScore(e).Value; got != tt.cost-1 {
				t.Errorf("score = %d, want %d", got, tt.cost-1)
			}
			if components.Player.Get(player).State != components.PlayerNormal {
				t.Error("player state changed")
			}
			if count(e, tags.EMP)+count(e, tags.Gravity)+count(e, tags.Shield) != 0 {
				t.Error("power-up entity spawned")
			}

			setScore(e, tt.cost)
			if !tt.activate(e) {
				t.Fatal("expected activation with exact cost")
			}
			if got := GetScore(e).Value; got != 0 {
				t.Errorf("score = %d, want 0", got)
			}
		})
	}
}

func TestHyperInvincibility(t *testing.T) {
	e, player := newTestStage(t)
	setScore(e, 30)
	if !ActivateHyper(e) {
		t.Fatal("hyper should activate")
	}
	p := components.Player.Get(player)
	if p.State != components.PlayerInvincible || p.InvincibleFrames != cfg.Player.HyperFrames {
		t.Fatalf("state = %v frames = %d", p.State, p.InvincibleFrames)
	}

	for i := 0; i < cfg.Player.HyperFrames-1; i++ {
		UpdatePlayer(e)
	}
	if p.State != components.PlayerInvincible {
		t.Fatal("invincibility ended early")
	}
	UpdatePlayer(e)
	if p.State != components.PlayerNormal {
		t.Errorf("state = %v after %d frames, want normal", p.State, cfg.Player.HyperFrames)
	}
}

func TestSingleShield(t *testing.T) {
	e, _ := newTestStage(t)
	setScore(e, 100)

	if !ActivateShield(e) {
		t.Fatal("first shield should activate")
	}
	if ActivateShield(e) {
		t.Fatal("second shield must be refused")
	}
	if got := GetScore(e).Value; got != 50 {
		t.Errorf("score = %d, want 50", got)
	}
	if got := count(e, tags.Shield); got != 1 {
		t.Errorf("shields = %d, want 1", got)
	}
}

func TestShieldInFrontOfPlayer(t *testing.T) {
	e, player := newTestStage(t)
	setScore(e, cfg.PowerUp.ShieldCost)
	ActivateShield(e)

	shield, _ := tags.Shield.First(e.World)
	so := components.Object.Get(shield)
	po := components.Object.Get(player)
	if so.CenterX() != po.CenterX()+po.W || so.CenterY() != po.CenterY() {
		t.Errorf("shield center = (%v, %v), want (%v, %v)",
			so.CenterX(), so.CenterY(), po.CenterX()+po.W, po.CenterY())
	}
	if so.W != cfg.PowerUp.ShieldWidth || so.H != cfg.ShieldHeight() {
		t.Errorf("shield size = %vx%v", so.W, so.H)
	}

	// Facing up rotates the shield and moves it above the player
	components.Player.Get(player).Facing = components.Vector{X: 0, Y: -1}
	UpdateEffects(e)
	if math.Abs(so.W-cfg.ShieldHeight()) > 1e-9 || math.Abs(so.H-cfg.PowerUp.ShieldWidth) > 1e-9 {
		t.Errorf("rotated shield size = %vx%v", so.W, so.H)
	}
	if math.Abs(so.CenterY()-(po.CenterY()-po.H)) > 1e-9 {
		t.Errorf("shield center y = %v, want %v", so.CenterY(), po.CenterY()-po.H)
	}
}

func TestEMP(t *testing.T) {
	e, _ := newTestStage(t)
	enemy := factory.SpawnEnemy(e, 200, 100, 50, 0)
	bomb := factory.SpawnBomb(e, 500, 300, 0, 1, 10, cfg.Red)
	setScore(e, cfg.PowerUp.EMPCost)

	if !ActivateEMP(e) {
		t.Fatal("emp should activate")
	}
	if !components.Enemy.Get(enemy).Jammed {
		t.Error("live enemy not jammed")
	}
	if got := components.Velocity.Get(bomb).Speed; got != cfg.Bomb.Speed/2 {
		t.Errorf("bomb speed = %v, want %v", got, cfg.Bomb.Speed/2)
	}

	later := factory.SpawnEnemy(e, 400, 100, 50, 0)
	if components.Enemy.Get(later).Jammed {
		t.Error("enemy spawned after the emp must not be jammed")
	}

	for i := 0; i < cfg.PowerUp.EMPDuration; i++ {
		UpdateEffects(e)
	}
	if got := count(e, tags.EMP); got != 1 {
		t.Fatalf("emp removed after %d updates", cfg.PowerUp.EMPDuration)
	}
	UpdateEffects(e)
	if got := count(e, tags.EMP); got != 0 {
		t.Errorf("emps = %d, want 0", got)
	}
}

func TestJammedEnemyNeverDrops(t *testing.T) {
	e, _ := newTestStage(t)
	enemy := factory.SpawnEnemy(e, 200, 100, 50, 0)
	en := components.Enemy.Get(enemy)
	en.Phase = components.EnemyStopped
	en.Jammed = true

	GetStage(e).Frame = 100
	UpdateSpawns(e)

	if got := count(e, tags.Bomb); got != 0 {
		t.Errorf("bombs = %d, want 0", got)
	}
}

func TestGravitySweep(t *testing.T) {
	e, _ := newTestStage(t)
	factory.SpawnBomb(e, 200, 300, 0, 1, 10, cfg.Red)
	factory.SpawnBomb(e, 400, 300, 0, 1, 20, cfg.Blue)
	enemy := factory.SpawnEnemy(e, 600, 100, 50, 0)
	moveTo(enemy, 600, 100)
	setScore(e, cfg.PowerUp.GravityCost)

	if !ActivateGravity(e) {
		t.Fatal("gravity should activate")
	}
	want := 2*cfg.Score.BombByGravity + cfg.Score.EnemyByGravity
	for frame := 1; frame <= 10; frame++ {
		UpdateGravity(e)
		// Each kill is scored exactly once
		if got := GetScore(e).Value; got != want {
			t.Fatalf("frame %d: score = %d, want %d", frame, got, want)
		}
	}
	if got := count(e, tags.Gravity); got != 1 {
		t.Errorf("gravity fields = %d, want 1", got)
	}
	if count(e, tags.Bomb) != 0 || count(e, tags.Enemy) != 0 {
		t.Error("gravity left bombs or enemies alive")
	}
	if got := count(e, tags.Explosion); got != 3 {
		t.Errorf("explosions = %d, want 3", got)
	}
	if IsGameOver(e) {
		t.Error("gravity must not hurt the player")
	}
}

func TestGravityLifetime(t *testing.T) {
	e, _ := newTestStage(t)
	factory.CreateGravity(e, 1100, 650)

	for i := 0; i < cfg.PowerUp.GravityLife; i++ {
		UpdateGravity(e)
	}
	if got := count(e, tags.Gravity); got != 1 {
		t.Fatalf("gravity removed after %d updates", cfg.PowerUp.GravityLife)
	}

	// Still sweeps on its last frame
	factory.SpawnBomb(e, 200, 300, 0, 1, 10, cfg.Red)
	UpdateGravity(e)
	if got := count(e, tags.Gravity); got != 0 {
		t.Errorf("gravity fields = %d, want 0", got)
	}
	if got := count(e, tags.Bomb); got != 0 {
		t.Errorf("bombs = %d, want 0", got)
	}
}

func TestSpreadShot(t *testing.T) {
	e, player := newTestStage(t)
	components.Player.Get(player).Facing = components.Vector{X: 0, Y: -1}

	beams := Fire(e, true)
	want := []float64{40, 65, 90, 115, 140}
	if len(beams) != len(want) {
		t.Fatalf("beams = %d, want %d", len(beams), len(want))
	}
	for i, b := range beams {
		if got := components.Beam.Get(b).Angle; math.Abs(got-want[i]) > 1e-9 {
			t.Errorf("beam %d angle = %v, want %v", i, got, want[i])
		}
	}
	if !queued(e, cfg.SoundBeam) {
		t.Error("beam sound not queued")
	}
}

func TestFireFromInput(t *testing.T) {
	e, _ := newTestStage(t)

	SetActions(e, cfg.ActionFire)
	UpdatePowerUps(e)
	if got := count(e, tags.Beam); got != 1 {
		t.Fatalf("beams = %d, want 1", got)
	}

	// Holding the button does not fire again
	SetActions(e, cfg.ActionFire)
	UpdatePowerUps(e)
	if got := count(e, tags.Beam); got != 1 {
		t.Errorf("beams = %d, want 1", got)
	}

	SetActions(e)
	SetActions(e, cfg.ActionFire, cfg.ActionBoost)
	UpdatePowerUps(e)
	if got := count(e, tags.Beam); got != 1+cfg.Beam.SpreadCount {
		t.Errorf("beams = %d, want %d", got, 1+cfg.Beam.SpreadCount)
	}
}

func TestPowerUpKeys(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		cost   int
		tag    func(*ecs.ECS) int
	}{
		{"hyper", cfg.ActionHyper, cfg.PowerUp.HyperCost, nil},
		{"emp", cfg.ActionEMP, cfg.PowerUp.EMPCost, func(e *ecs.ECS) int { return count(e, tags.EMP) }},
		{"gravity", cfg.ActionGravity, cfg.PowerUp.GravityCost, func(e *ecs.ECS) int { return count(e, tags.Gravity) }},
		{"shield", cfg.ActionShield, cfg.PowerUp.ShieldCost, func(e *ecs.ECS) int { return count(e, tags.Shield) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestStage(t)
			setScore(e, tt.cost)

			SetActions(e, tt.action)
			UpdatePowerUps(e)

			if got := GetScore(e).Value; got != 0 {
				t.Errorf("score = %d, want 0", got)
			}
			if !queued(e, cfg.SoundPowerUp) {
				t.Error("power-up sound not queued")
			}
			if tt.tag == nil {
				if components.Player.Get(player).State != components.PlayerInvincible {
					t.Error("player not invincible")
				}
				return
			}
			if got := tt.tag(e); got != 1 {
				t.Errorf("entities = %d, want 1", got)
			}
		})
	}
}

func TestDeniedPowerUpSound(t *testing.T) {
	e, _ := newTestStage(t)
	SetActions(e, cfg.ActionGravity)
	UpdatePowerUps(e)

	if !queued(e, cfg.SoundDenied) {
		t.Error("denied sound not queued")
	}
	if queued(e, cfg.SoundPowerUp) {
		t.Error("power-up sound queued without activation")
	}
}
