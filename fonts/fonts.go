package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Score    FontName = "score"
	Small    FontName = "small"
	GameOver FontName = "game-over"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults parses the bundled Go fonts at the HUD sizes.
func LoadDefaults(scoreSize, smallSize float64) error {
	if err := LoadFontWithSize(Score, goregular.TTF, scoreSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Small, goregular.TTF, smallSize); err != nil {
		return err
	}
	return LoadFontWithSize(GameOver, gobold.TTF, scoreSize*2)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
