package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

// Window and HUD colors.
var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(220, 220, 220, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
)

const (
	fovy       = 45.0
	hudX       = 10
	hudY       = 10
	hudSize    = 20
	hudSpacing = 22
)

type Options struct {
	Width, Height int
	Title         string
	FPS           int
	Logger        zerolog.Logger
}

// BuildFunc creates the solar system once the renderer is ready.
type BuildFunc func(r celestial.Renderer) (*solar.SolarSystem, error)

// App runs the windowed orrery.
type App struct {
	sys    *solar.SolarSystem
	panel  *solar.ControlPanel
	r      *Renderer
	clock  *sim.FixedStep
	camera rl.Camera3D
	log    zerolog.Logger
}

var pressedKeys = []struct {
	rl  int32
	key solar.Key
}{
	{rl.KeyLeft, solar.KeyLeft},
	{rl.KeyRight, solar.KeyRight},
	{rl.KeyUp, solar.KeyUp},
	{rl.KeyDown, solar.KeyDown},
	{rl.KeyLeftBracket, solar.KeyBracketLeft},
	{rl.KeyRightBracket, solar.KeyBracketRight},
}

var heldKeys = []struct {
	rl  int32
	key solar.Key
}{
	{rl.KeyEqual, solar.KeyPlus},
	{rl.KeyKpAdd, solar.KeyPlus},
	{rl.KeyMinus, solar.KeyMinus},
	{rl.KeyKpSubtract, solar.KeyMinus},
	{rl.KeyZ, solar.KeyZ},
	{rl.KeyX, solar.KeyX},
	{rl.KeyR, solar.KeyR},
}

// windowKeys act on the window rather than the scene.
var windowKeys = map[int32]func(){
	rl.KeyF11: rl.ToggleFullscreen,
}

// Run opens the window, builds the system and blocks until the window is
// closed. Meshes are released before the window goes away.
func Run(opts Options, build BuildFunc) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(rl.KeyEscape)

	r := NewRenderer()
	sys, err := build(r)
	if err != nil {
		return err
	}
	defer sys.Cleanup()

	app := &App{
		sys:    sys,
		panel:  solar.NewControlPanel(sys, opts.Logger),
		r:      r,
		clock:  sim.NewFixedStep(opts.FPS),
		camera: cameraFor(*sys.State()),
		log:    opts.Logger,
	}
	app.log.Info().Int("width", opts.Width).Int("height", opts.Height).Msg("window open")
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.pollEvents()

	held := make(solar.KeySet)
	for _, k := range heldKeys {
		if rl.IsKeyDown(k.rl) {
			held[k.key] = true
		}
	}
	a.panel.HandleUserInput(held)

	elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	for n := a.clock.Advance(elapsed); n > 0; n-- {
		a.sys.Update()
	}

	if a.panel.ConsumeRefresh() {
		a.log.Debug().Str("planet", a.panel.SelectedName()).Msg("hud refreshed")
	}
	a.camera = cameraFor(*a.sys.State())
}

func (a *App) pollEvents() {
	for k, fn := range windowKeys {
		if rl.IsKeyPressed(k) {
			fn()
			a.log.Debug().Bool("fullscreen", rl.IsWindowFullscreen()).Msg("window toggled")
		}
	}
	for _, k := range pressedKeys {
		if rl.IsKeyPressed(k.rl) {
			a.panel.HandleEvent(solar.Event{Kind: solar.EventKeyDown, Key: k.key})
			a.panel.RefreshDisplay()
		}
	}

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.panel.HandleEvent(solar.Event{Kind: solar.EventMouseDown, Button: solar.ButtonLeft, X: x, Y: y})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.panel.HandleEvent(solar.Event{Kind: solar.EventMouseUp, Button: solar.ButtonLeft, X: x, Y: y})
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		a.panel.HandleEvent(solar.Event{Kind: solar.EventMouseMotion, X: x, Y: y})
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.panel.HandleEvent(solar.Event{Kind: solar.EventMouseWheel, Wheel: float64(wheel)})
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.r.SetEye(eyeOf(a.camera))
	rl.BeginMode3D(a.camera)
	a.sys.Render()
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	for i, line := range a.panel.Instructions() {
		rl.DrawText(line, hudX, int32(hudY+i*hudSpacing), hudSize, ColText)
	}
	rl.DrawFPS(int32(rl.GetScreenWidth())-90, hudY)
}
