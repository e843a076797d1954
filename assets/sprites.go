package assets

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/kokaton/musou/config"
)

// Sprite images are generated on first use and cached for the process.
var (
	playerImages    = map[int]*ebiten.Image{}
	enemyImages     = map[int]*ebiten.Image{}
	beamImage       *ebiten.Image
	explosionImage  *ebiten.Image
	shieldImage     *ebiten.Image
	backgroundImage *ebiten.Image
)

var (
	birdBody   = color.RGBA{R: 250, G: 250, B: 245, A: 255}
	birdWing   = color.RGBA{R: 220, G: 220, B: 210, A: 255}
	birdBeak   = color.RGBA{R: 255, G: 170, B: 20, A: 255}
	birdCheek  = color.RGBA{R: 255, G: 150, B: 170, A: 255}
	enemyHulls = []color.RGBA{
		{R: 150, G: 150, B: 170, A: 255},
		{R: 120, G: 170, B: 120, A: 255},
		{R: 180, G: 120, B: 90, A: 255},
	}
	enemyDome = color.RGBA{R: 140, G: 220, B: 255, A: 230}
	beamCore  = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	beamGlow  = color.RGBA{R: 255, G: 120, B: 0, A: 200}
	skyTop    = color.RGBA{R: 60, G: 110, B: 190, A: 255}
	skyBottom = color.RGBA{R: 170, G: 210, B: 240, A: 255}
)

// PlayerImage returns the bird facing right with the given expression.
func PlayerImage(expression int) *ebiten.Image {
	if img, ok := playerImages[expression]; ok {
		return img
	}
	w, h := float32(cfg.Player.Width), float32(cfg.Player.Height)
	img := ebiten.NewImage(int(w), int(h))

	vector.FillCircle(img, w*0.45, h*0.55, h*0.42, birdBody, true)
	vector.FillCircle(img, w*0.30, h*0.62, h*0.22, birdWing, true)
	// Beak
	vector.FillRect(img, w*0.78, h*0.45, w*0.2, h*0.12, birdBeak, true)

	eyeX, eyeY := w*0.62, h*0.38
	switch expression {
	case 1: // happy: closed arcs
		vector.StrokeLine(img, eyeX-4, eyeY+2, eyeX, eyeY-2, 2, color.Black, true)
		vector.StrokeLine(img, eyeX, eyeY-2, eyeX+4, eyeY+2, 2, color.Black, true)
		vector.FillCircle(img, w*0.66, h*0.62, 5, birdCheek, true)
	case 2: // sad: drooping brow and a tear
		vector.FillCircle(img, eyeX, eyeY, 3, color.Black, true)
		vector.StrokeLine(img, eyeX-5, eyeY-8, eyeX+4, eyeY-5, 2, color.Black, true)
		vector.FillCircle(img, eyeX+2, eyeY+9, 3, skyBottom, true)
	default:
		vector.FillCircle(img, eyeX, eyeY, 3.5, color.Black, true)
	}

	playerImages[expression] = img
	return img
}

// EnemyImage returns the saucer for a variant.
func EnemyImage(variant int) *ebiten.Image {
	variant = variant % len(enemyHulls)
	if img, ok := enemyImages[variant]; ok {
		return img
	}
	w, h := float32(cfg.Enemy.Width), float32(cfg.Enemy.Height)
	img := ebiten.NewImage(int(w), int(h))

	vector.FillCircle(img, w/2, h*0.42, h*0.28, enemyDome, true)
	vector.FillRect(img, w*0.05, h*0.5, w*0.9, h*0.22, enemyHulls[variant], true)
	vector.FillCircle(img, w*0.05, h*0.61, h*0.11, enemyHulls[variant], true)
	vector.FillCircle(img, w*0.95, h*0.61, h*0.11, enemyHulls[variant], true)
	for i := 0; i < 4; i++ {
		x := w * (0.2 + 0.2*float32(i))
		vector.FillCircle(img, x, h*0.61, 3, cfg.Yellow, true)
	}

	enemyImages[variant] = img
	return img
}

// BeamImage returns the projectile pointing along +x.
func BeamImage() *ebiten.Image {
	if beamImage != nil {
		return beamImage
	}
	w, h := float32(cfg.Beam.Width), float32(cfg.Beam.Height)
	beamImage = ebiten.NewImage(int(w), int(h))
	vector.FillRect(beamImage, 0, 0, w, h, beamGlow, true)
	vector.FillRect(beamImage, 2, h*0.3, w-4, h*0.4, beamCore, true)
	return beamImage
}

// ExplosionImage returns a starburst; renderers mirror it to animate.
func ExplosionImage() *ebiten.Image {
	if explosionImage != nil {
		return explosionImage
	}
	s := float32(cfg.Explosion.Size)
	explosionImage = ebiten.NewImage(int(s), int(s))
	c := s / 2
	for i := 0; i < 10; i++ {
		a := float64(i) * math.Pi / 5
		r := s * 0.48
		if i%2 == 1 {
			r = s * 0.3
		}
		x := c + r*float32(math.Cos(a))
		y := c + r*float32(math.Sin(a))*0.8
		vector.StrokeLine(explosionImage, c, c, x, y, 6, cfg.Orange, true)
	}
	vector.FillCircle(explosionImage, c, c, s*0.22, cfg.Yellow, true)
	vector.FillCircle(explosionImage, c*0.8, c*0.85, s*0.08, cfg.White, true)
	return explosionImage
}

// ShieldImage returns the unrotated shield wall.
func ShieldImage() *ebiten.Image {
	if shieldImage != nil {
		return shieldImage
	}
	w, h := float32(cfg.PowerUp.ShieldWidth), float32(cfg.ShieldHeight())
	shieldImage = ebiten.NewImage(int(w), int(h))
	vector.FillRect(shieldImage, 0, 0, w, h, cfg.Blue, false)
	return shieldImage
}

// BackgroundImage returns a vertical sky gradient sized to the screen.
func BackgroundImage() *ebiten.Image {
	if backgroundImage != nil {
		return backgroundImage
	}
	w, h := cfg.C.Width, cfg.C.Height
	backgroundImage = ebiten.NewImage(w, h)
	const bands = 64
	bandH := float32(h) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		c := color.RGBA{
			R: lerp8(skyTop.R, skyBottom.R, t),
			G: lerp8(skyTop.G, skyBottom.G, t),
			B: lerp8(skyTop.B, skyBottom.B, t),
			A: 255,
		}
		vector.FillRect(backgroundImage, 0, float32(i)*bandH, float32(w), bandH+1, c, false)
	}
	return backgroundImage
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
