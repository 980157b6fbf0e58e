package ui

import (
	"image/color"
	"log"

	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/game"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// SettingsPanel 暂停时覆盖在画面上的设置面板
//
// 打开期间场景暂停更新。鼠标点击按钮，或用上下键选择、确认键应用；
// 取消键关闭面板。每次修改后调用 onChange（应用音量、窗口并保存）。
type SettingsPanel struct {
	menu     *settingsMenu
	onChange func()

	ui      *ebitenui.UI
	buttons []*widget.Button
	open    bool
}

// NewSettingsPanel 创建设置面板
func NewSettingsPanel(sm *game.SettingsManager, onChange func()) *SettingsPanel {
	p := &SettingsPanel{
		menu:     newSettingsMenu(sm),
		onChange: onChange,
	}
	p.build()
	return p
}

// build 构建控件树：居中面板，标题加一列按钮
func (p *SettingsPanel) build() {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.ScreenWidth/2, config.ScreenHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Settings", &face, white),
		widget.TextOpts.WidgetOpts(center),
	))

	for i := 0; i < p.menu.Len(); i++ {
		idx := i
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(p.menu.Label(i), &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.choose(idx)
			}),
		)
		p.buttons = append(p.buttons, btn)
		panel.AddChild(btn)
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.Close()
		}),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
}

// IsOpen 面板是否打开
func (p *SettingsPanel) IsOpen() bool {
	return p.open
}

// Toggle 打开或关闭面板
func (p *SettingsPanel) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.open = true
	p.refresh()
	log.Printf("[SettingsPanel] Opened")
}

// Close 关闭面板
func (p *SettingsPanel) Close() {
	if !p.open {
		return
	}
	p.open = false
	log.Printf("[SettingsPanel] Closed")
}

// Update 处理键盘导航并更新控件
func (p *SettingsPanel) Update(input *utils.InputTracker) {
	if !p.open {
		return
	}
	switch {
	case input.JustPressed(types.KeyUp):
		p.menu.Move(-1)
		p.refresh()
	case input.JustPressed(types.KeyDown):
		p.menu.Move(1)
		p.refresh()
	case input.JustPressed(types.KeyConfirm):
		p.choose(p.menu.cursor)
	case input.JustPressed(types.KeyCancel):
		p.Close()
		return
	}
	p.ui.Update()
}

// Draw 绘制面板
func (p *SettingsPanel) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	p.ui.Draw(screen)
}

func (p *SettingsPanel) choose(i int) {
	p.menu.Choose(i)
	p.refresh()
	if p.onChange != nil {
		p.onChange()
	}
}

// refresh 按当前设置重写按钮文字
func (p *SettingsPanel) refresh() {
	for i, btn := range p.buttons {
		if t := btn.Text(); t != nil {
			t.Label = p.menu.Label(i)
		}
	}
}
