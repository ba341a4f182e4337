package game

import (
	"fmt"

	"kartflight/internal/config"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 235)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func drawText(text string, x, y int32, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}

type action int

const (
	actionNone action = iota
	actionFire
	actionPause
	actionFollow
	actionRetune
)

// tuning is the editable part of one kind's config.
type tuning struct {
	MinHeight   float32
	MaxHeight   float32
	ForceUpDown float32
}

const (
	panelWidth  float32 = 260
	rowHeight   float32 = 26
	sliderLimit float32 = 5
	forceLimit  float32 = 60
)

// panel holds the slider values per kind. Changes are written to the
// catalog with apply and reach the next launch of that kind.
type panel struct {
	kinds    []config.Kind
	selected int
	values   map[config.Kind]tuning
	bounds   rl.Rectangle
}

func newPanel(catalog *config.Catalog) *panel {
	p := &panel{values: make(map[config.Kind]tuning)}
	for _, kind := range config.Kinds() {
		cfg, err := catalog.Get(kind)
		if err != nil {
			continue
		}
		p.kinds = append(p.kinds, kind)
		p.values[kind] = tuning{MinHeight: cfg.MinHeight, MaxHeight: cfg.MaxHeight, ForceUpDown: cfg.ForceUpDown}
	}
	return p
}

func (p *panel) kind() config.Kind {
	if len(p.kinds) == 0 {
		return config.Missile
	}
	return p.kinds[p.selected%len(p.kinds)]
}

// set stores new values for the selected kind and reports whether they changed.
// A min height above the max height drags the max height up with it.
func (p *panel) set(t tuning) bool {
	if t.MaxHeight < t.MinHeight {
		t.MaxHeight = t.MinHeight
	}
	kind := p.kind()
	if p.values[kind] == t {
		return false
	}
	p.values[kind] = t
	return true
}

// apply writes the selected kind's values to catalog.
func (p *panel) apply(catalog *config.Catalog) error {
	kind := p.kind()
	t := p.values[kind]
	_, err := catalog.Retune(kind, config.MapSource{
		config.KeyMinHeight:   t.MinHeight,
		config.KeyMaxHeight:   t.MaxHeight,
		config.KeyForceUpDown: t.ForceUpDown,
	})
	return err
}

func (p *panel) hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), p.bounds)
}

func (p *panel) draw(paused, follow bool) action {
	x := float32(rl.GetScreenWidth()) - panelWidth - 12
	y := float32(48)
	p.bounds = rl.Rectangle{X: x - 8, Y: y - 8, Width: panelWidth + 16, Height: 9*rowHeight + 16}
	rl.DrawRectangleRec(p.bounds, colorBgPanel)

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{X: x, Y: y + float32(i)*rowHeight, Width: panelWidth, Height: rowHeight - 4}
	}
	slider := func(i int) rl.Rectangle {
		r := row(i)
		r.X += 90
		r.Width -= 130
		return r
	}

	act := actionNone
	if gui.Button(row(0), fmt.Sprintf("Kind: %s", p.kind())) {
		p.selected = (p.selected + 1) % max(len(p.kinds), 1)
	}

	t := p.values[p.kind()]
	gui.Label(row(1), "Min height")
	t.MinHeight = gui.Slider(slider(1), "", fmt.Sprintf("%.2f", t.MinHeight), t.MinHeight, 0, sliderLimit)
	gui.Label(row(2), "Max height")
	t.MaxHeight = gui.Slider(slider(2), "", fmt.Sprintf("%.2f", t.MaxHeight), t.MaxHeight, 0, sliderLimit)
	gui.Label(row(3), "Force")
	t.ForceUpDown = gui.Slider(slider(3), "", fmt.Sprintf("%.1f", t.ForceUpDown), t.ForceUpDown, 0, forceLimit)
	if p.set(t) {
		act = actionRetune
	}

	if gui.Button(row(5), "Fire (F)") {
		act = actionFire
	}
	pauseLabel := "Pause (Space)"
	if paused {
		pauseLabel = "Resume (Space)"
	}
	if gui.Button(row(6), pauseLabel) {
		act = actionPause
	}
	if gui.CheckBox(rl.Rectangle{X: x, Y: y + 7*rowHeight + 4, Width: 16, Height: 16}, "Follow kart", follow) != follow {
		act = actionFollow
	}
	return act
}
