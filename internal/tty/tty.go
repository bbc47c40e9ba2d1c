// Package tty is a terminal front end: a top-down view of the arena drawn
// with tcell, driven by the keyboard and the mouse.
package tty

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"ropepen/internal/config"
	"ropepen/internal/input"
	"ropepen/internal/physics"
	"ropepen/internal/profiling"
	"ropepen/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// pointerHeight is where the vertical pointer ray starts.
const pointerHeight = 5.0

// App is the terminal frame loop.
type App struct {
	screen tcell.Screen
	world  *sim.World
	im     *input.InputManager
	held   holdTracker

	pointer *physics.Ray
	start   time.Time
}

// New wraps an initialized screen. The caller owns screen.Fini.
func New(screen tcell.Screen, w *sim.World) *App {
	screen.EnableMouse()
	screen.HideCursor()
	return &App{
		screen: screen,
		world:  w,
		im:     input.NewInputManager(),
	}
}

// Run polls events and steps the world at sim.TickRate until quit is
// requested, ctx is cancelled or maxTicks frames have run (0 means no limit).
func (a *App) Run(ctx context.Context, maxTicks int) {
	ticker := time.NewTicker(time.Second / sim.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.start = time.Now()
	for !a.world.Done(ctx, maxTicks) {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			a.tick(now)
		}
	}
}

func (a *App) tick(now time.Time) {
	profiling.ResetFrame()
	a.held.apply(a.im, now)
	if a.im.JustPressed(input.ActionToggleProfiling) {
		config.ToggleProfiling()
	}

	a.world.Step(sim.Input{
		Now:        now.Sub(a.start).Seconds(),
		Directions: a.im.Directions(),
		Pointer:    a.pointer,
		Scroll:     a.im.ConsumeScroll(),
	})
	a.draw()
	a.im.PostUpdate()
}

// handleEvent returns false when the user asked to quit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if act, ok := keyAction(ev); ok {
			a.held.press(act, now)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		w, h := a.screen.Size()
		p := ViewFor(a.world.Camera, w, h).ToWorld(x, y)
		a.pointer = &physics.Ray{
			Origin:    mgl32.Vec3{p.X(), pointerHeight, p.Z()},
			Direction: mgl32.Vec3{0, -1, 0},
		}
		btn := ev.Buttons()
		if btn&tcell.WheelUp != 0 {
			a.im.HandleScrollEvent(1)
		}
		if btn&tcell.WheelDown != 0 {
			a.im.HandleScrollEvent(-1)
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func keyAction(ev *tcell.EventKey) (input.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.ActionMoveForward, true
	case tcell.KeyDown:
		return input.ActionMoveBackward, true
	case tcell.KeyLeft:
		return input.ActionMoveLeft, true
	case tcell.KeyRight:
		return input.ActionMoveRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.ActionMoveForward, true
		case 's', 'S':
			return input.ActionMoveBackward, true
		case 'a', 'A':
			return input.ActionMoveLeft, true
		case 'd', 'D':
			return input.ActionMoveRight, true
		case 'v', 'V':
			return input.ActionToggleProfiling, true
		}
	}
	return 0, false
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var (
	groundStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(56, 186, 95))
	ropeStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(102, 191, 255))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (a *App) draw() {
	defer profiling.Track("tty.Draw")()
	a.screen.Clear()
	width, height := a.screen.Size()
	Draw(a.screen, a.world, ViewFor(a.world.Camera, width, height))
	a.screen.Show()
}

// Draw paints w onto screen through v: the arena ground, the rope, the
// animals, the tether and the player, then the status lines on top.
func Draw(screen tcell.Screen, w *sim.World, v View) {
	const arena = 25
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			p := v.ToWorld(x, y)
			if p.X() >= -arena && p.X() <= arena && p.Z() >= -arena && p.Z() <= arena {
				screen.SetContent(x, y, '.', nil, groundStyle)
			}
		}
	}

	put := func(p mgl32.Vec3, r rune, style tcell.Style) {
		if x, y, ok := v.ToCell(p); ok {
			screen.SetContent(x, y, r, nil, style)
		}
	}

	for _, pt := range w.Player.Rope.Points() {
		put(pt, '~', ropeStyle)
	}
	for _, an := range w.Animals {
		name := an.Species().String()
		put(an.Position, rune(name[0]), styleOf(an.Species().Color()))
	}
	tp := w.Player.Tether.Pose()
	put(tp.Position, 'O', styleOf(tp.Color))
	pp := w.Player.Pose()
	put(pp.Position, '@', styleOf(pp.Color))

	lines := []string{
		fmt.Sprintf("frame %d | zoom %.0f | WASD/arrows move, mouse steers the tether, q quits", w.Frame(), w.Camera.FOVY),
	}
	r := w.LastReport()
	lines = append(lines, fmt.Sprintf("hits player:%d rope:%d tether:%d animals:%d",
		r.PlayerAnimal, r.RopeAnimal, r.TetherAnimal, r.AnimalAnimal))
	if config.GetShowProfiling() {
		lines = append(lines, profiling.TopN(4))
	}
	for row, line := range lines {
		if row >= v.Height {
			break
		}
		for col, ch := range []rune(line) {
			if col >= v.Width {
				break
			}
			screen.SetContent(col, row, ch, nil, textStyle)
		}
	}
}
