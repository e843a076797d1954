package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// EdgeShader draws the edge-filtered look of invincible and jammed sprites
	EdgeShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	edgeSrc, err := shaderFS.ReadFile("shaders/edge.kage")
	if err != nil {
		return fmt.Errorf("read edge shader: %w", err)
	}
	EdgeShader, err = ebiten.NewShader(edgeSrc)
	if err != nil {
		return fmt.Errorf("compile edge shader: %w", err)
	}

	return nil
}
