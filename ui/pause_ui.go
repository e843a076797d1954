package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const controlsHint = "Arrows: move   L-Shift: boost / spread   Space: fire\n" +
	"R-Shift: hyper (30)   E: EMP (20)   Enter: gravity (200)   Caps Lock: shield (50)\n" +
	"F1: hitboxes   Esc: resume"

// PauseUI is the overlay menu shown while the game is paused.
type PauseUI struct {
	UI *ebitenui.UI

	OnResume func()
	OnQuit   func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewPauseUI(onResume, onQuit func()) *PauseUI {
	ui := &PauseUI{
		OnResume: onResume,
		OnQuit:   onQuit,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 150})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 40, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildButton("Resume", func() {
		if ui.OnResume != nil {
			ui.OnResume()
		}
	}))
	contentContainer.AddChild(ui.buildButton("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text(controlsHint, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) buildButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 100, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 140, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 70, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 160, 255},
			Pressed: color.RGBA{200, 200, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}

func (ui *PauseUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
