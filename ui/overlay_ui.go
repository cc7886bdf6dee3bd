package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlayUI is the end-of-run panel: a title, a summary line and buttons to
// play again or quit.
type OverlayUI struct {
	UI *ebitenui.UI

	OnRestart func()
	OnQuit    func()

	titleLabel   *widget.Label
	summaryLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

func NewOverlayUI(onRestart, onQuit func()) (*OverlayUI, error) {
	ui := &OverlayUI{
		OnRestart: onRestart,
		OnQuit:    onQuit,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *OverlayUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (ui *OverlayUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(ui.titleLabel)

	ui.summaryLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 220, 255},
		}),
	)
	panel.AddChild(ui.summaryLabel)

	panel.AddChild(ui.buildButtons())
	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *OverlayUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(ui.button("Play again", func() {
		if ui.OnRestart != nil {
			ui.OnRestart()
		}
	}))
	container.AddChild(ui.button("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))
	return container
}

func (ui *OverlayUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 160, 255},
			Pressed: color.RGBA{200, 180, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetResult fills in the panel for a finished run.
func (ui *OverlayUI) SetResult(won bool, collected, total int) {
	if won {
		ui.titleLabel.Label = "You found the golden carrot!"
	} else {
		ui.titleLabel.Label = "Out of lives"
	}
	ui.summaryLabel.Label = fmt.Sprintf("Carrots gathered: %d of %d", collected, total)
}

func (ui *OverlayUI) Update() {
	ui.UI.Update()
}
