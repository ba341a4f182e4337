// Package game is the interactive viewer: a raylib window showing a running
// race with a panel for firing and retuning projectiles.
package game

import (
	"fmt"

	"kartflight/internal/audio"
	"kartflight/internal/camera"
	"kartflight/internal/flyable"
	"kartflight/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// maxStep caps the simulated time per frame so a stalled window does not
// tunnel projectiles through karts.
const maxStep float32 = 1.0 / 30

type Game struct {
	World  *world.World
	Camera *camera.OrbitCamera
	Paused bool
	Follow bool // keep the camera on the first kart

	// FireEvery fires automatically every so many seconds. Zero disables it.
	FireEvery float32

	sound     *audio.Mixer
	unsound   []func()
	renderer  *world.Renderer
	panel     *panel
	sinceFire float32
	log       zerolog.Logger
}

func New(w *world.World, log zerolog.Logger) *Game {
	return &Game{
		World:    w,
		Camera:   camera.New(rl.Vector3{}, 60),
		Follow:   true,
		renderer: world.NewRenderer(),
		panel:    newPanel(w.Catalog),
		log:      log.With().Str("component", "viewer").Logger(),
	}
}

// SetSound plays explosion and radar cues through m from now on, replacing
// any earlier mixer. A nil m silences the race.
func (g *Game) SetSound(m *audio.Mixer) {
	for _, remove := range g.unsound {
		remove()
	}
	g.sound, g.unsound = m, nil
	if m == nil {
		return
	}
	g.unsound = append(g.unsound,
		g.World.Projectiles.OnExplosion.AddListener(func(pos rl.Vector3) {
			m.Play(audio.Explosion, world.ToView(pos))
		}),
		g.World.Projectiles.OnRadarBeep.AddListener(func(b flyable.RadarBeep) {
			m.Play(audio.RadarBeep, world.ToView(b.Flyable.Position()))
		}),
	)
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "kartflight")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

func (g *Game) Update(deltaTime float32) {
	dt := min(deltaTime, maxStep)

	if rl.IsKeyPressed(rl.KeySpace) {
		g.Paused = !g.Paused
	}
	if rl.IsKeyPressed(rl.KeyF) {
		g.fire()
	}
	if !g.panel.hovered() {
		g.Camera.Update(dt)
	}

	if !g.Paused {
		g.World.Step(dt)
		if g.FireEvery > 0 {
			g.sinceFire += dt
			if g.sinceFire >= g.FireEvery {
				g.sinceFire = 0
				g.fire()
			}
		}
	}

	if karts := g.World.Karts(); g.Follow && len(karts) > 0 {
		g.Camera.Target = world.ToView(karts[0].Position())
	}
	if g.sound != nil {
		eye := g.Camera.Position()
		g.sound.SetListener(eye, rl.Vector3Subtract(g.Camera.Target, eye), rl.Vector3{Y: 1})
	}
}

func (g *Game) fire() {
	karts := g.World.Karts()
	if len(karts) == 0 {
		return
	}
	if _, err := g.World.Fire(karts[0], g.panel.kind()); err != nil {
		g.log.Error().Err(err).Msg("Failed to fire")
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 32, 255))

	cam := g.Camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	rl.BeginMode3D(cam)
	g.renderer.Draw(g.World, cam, aspect)
	rl.EndMode3D()

	g.drawHUD()
	action := g.panel.draw(g.Paused, g.Follow)
	switch action {
	case actionFire:
		g.fire()
	case actionPause:
		g.Paused = !g.Paused
	case actionFollow:
		g.Follow = !g.Follow
	case actionRetune:
		if err := g.panel.apply(g.World.Catalog); err != nil {
			g.log.Error().Err(err).Msg("Failed to retune")
		}
	}

	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	s := g.World.Summary()
	lines := []string{
		fmt.Sprintf("t %.1fs  frame %d", s.Time, s.Frames),
		fmt.Sprintf("in flight %d  launched %d", s.Active, s.Launched),
		fmt.Sprintf("explosions %d  direct hits %d  splashes %d", s.Explosions, s.DirectHits, s.Splashes),
		fmt.Sprintf("radar beeps %d  culled %d", s.RadarBeeps, g.renderer.Culled),
	}
	for i, line := range lines {
		drawText(line, 12, int32(12+i*22), 18, colorTextSecondary)
	}
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, 12)
}
