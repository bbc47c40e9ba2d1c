package sim

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ropepen/internal/config"
	"ropepen/internal/entity"
	"ropepen/internal/physics"
	"ropepen/internal/rng"

	"github.com/go-gl/mathgl/mgl32"
)

func newWorld(t *testing.T, seed int64) *World {
	t.Helper()
	src, _ := rng.New(seed)
	w, err := New(config.Default(), src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNewSpawnsInsideArena(t *testing.T) {
	w := newWorld(t, 1)
	if len(w.Animals) != 10 {
		t.Fatalf("animals = %d, want 10", len(w.Animals))
	}
	for i, a := range w.Animals {
		p := a.Position
		if p.X() < -25 || p.X() > 25 || p.Z() < -25 || p.Z() > 25 || p.Y() != SpawnHeight {
			t.Errorf("animal %d spawned at %v", i, p)
		}
	}
	if got := len(w.Entities()); got != 11 {
		t.Errorf("entities = %d, want 11", got)
	}
	if w.Entities()[0] != entity.Simulatable(w.Player) {
		t.Errorf("player is not updated first")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RopePoints = 1
	src, _ := rng.New(1)
	if _, err := New(cfg, src); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := newWorld(t, 42)
	b := newWorld(t, 42)
	for i := 0; i < 300; i++ {
		in := Input{Now: float64(i+1) / TickRate, Directions: entity.Directions{Forward: i%50 < 25, Right: i%70 < 35}}
		a.Step(in)
		b.Step(in)
	}
	for i := range a.Animals {
		if a.Animals[i].Position != b.Animals[i].Position || a.Animals[i].Species() != b.Animals[i].Species() {
			t.Fatalf("animal %d diverged: %v vs %v", i, a.Animals[i].Position, b.Animals[i].Position)
		}
	}
	if a.Player.Position != b.Player.Position {
		t.Errorf("player diverged")
	}
}

func TestStepKeepsRopePinned(t *testing.T) {
	w := newWorld(t, 7)
	ray := physics.Ray{Origin: mgl32.Vec3{5, 10, -5}, Direction: mgl32.Vec3{0, -1, 0}}
	for i := 0; i < 120; i++ {
		w.Step(Input{
			Now:        float64(i+1) / TickRate,
			Directions: entity.Directions{Backward: true},
			Pointer:    &ray,
		})
		pts := w.Player.Rope.Points()
		if pts[0] != w.Player.Position || pts[len(pts)-1] != w.Player.Tether.Position {
			t.Fatalf("frame %d: rope not pinned to its anchors", i)
		}
		if len(pts) != 15 {
			t.Fatalf("frame %d: rope has %d points", i, len(pts))
		}
	}
	if w.Frame() != 120 {
		t.Errorf("Frame() = %d, want 120", w.Frame())
	}
	if d := w.Player.Tether.Position.Sub(mgl32.Vec3{5, 1, -5}).Len(); d > 1e-3 {
		t.Errorf("tether did not settle under the pointer, %f away", d)
	}
}

func TestStepResolvesBeforeMoving(t *testing.T) {
	cfg := config.Default()
	cfg.Animals = 2
	src, _ := rng.New(5)
	w, err := New(cfg, src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The tether starts at z=10 and the pointer drags it to z=-20 this frame.
	// near touches the tether where it stands; far touches where it lands.
	near, far := w.Animals[0], w.Animals[1]
	near.Position = mgl32.Vec3{0, 1, 10.6}
	near.Target = near.Position
	far.Position = mgl32.Vec3{0, 1, -20}
	far.Target = far.Position

	ray := physics.Ray{Origin: mgl32.Vec3{0, 5, -90}, Direction: mgl32.Vec3{0, -1, 0}}
	report := w.Step(Input{Now: 1.0 / TickRate, Pointer: &ray})

	if report != w.LastReport() {
		t.Errorf("Step() = %+v, LastReport() = %+v", report, w.LastReport())
	}
	if report.TetherAnimal != 1 || report.PlayerAnimal != 0 {
		t.Errorf("report = %+v, want exactly one tether contact", report)
	}
	if z := near.Position.Z(); z < 10.9 {
		t.Errorf("animal at the old tether position was not pushed: z = %f", z)
	}
	if far.Position != (mgl32.Vec3{0, 1, -20}) {
		t.Errorf("animal at the new tether position moved to %v", far.Position)
	}
	if d := w.Player.Tether.Position.Sub(far.Position).Len(); d > 1e-3 {
		t.Errorf("tether ended %f away from the far animal", d)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := newWorld(t, 3)
	for i := 0; i < 60; i++ {
		w.Step(Input{Now: float64(i+1) / TickRate, Directions: entity.Directions{Left: true}})
	}
	want := w.Player.Position.Add(mgl32.Vec3{0, 15, 8})
	if w.Camera.Position != want {
		t.Errorf("camera at %v, want %v", w.Camera.Position, want)
	}
	if w.Camera.Target.Y() != 0 {
		t.Errorf("camera target y = %f, want 0", w.Camera.Target.Y())
	}

	w.Step(Input{Now: 2, Scroll: 5})
	if w.Camera.FOVY >= 60 {
		t.Errorf("scroll did not zoom in: fovy %f", w.Camera.FOVY)
	}
}

func TestPointerRayFromCamera(t *testing.T) {
	w := newWorld(t, 3)
	ray, err := w.PointerRay(640, 360, 1280, 720)
	if err != nil {
		t.Fatalf("PointerRay: %v", err)
	}
	if ray.Origin != w.Camera.Position {
		t.Errorf("ray origin %v, want camera position %v", ray.Origin, w.Camera.Position)
	}
	if _, err := w.PointerRay(0, 0, 0, 0); err == nil {
		t.Errorf("expected error for empty viewport")
	}
}

func TestRunHeadless(t *testing.T) {
	w := newWorld(t, 9)
	var lines []string
	stats := RunHeadless(context.Background(), w, 120, 60, func(format string, args ...any) {
		lines = append(lines, format)
		_ = args
	})
	if stats.Frames != 120 {
		t.Errorf("Frames = %d, want 120", stats.Frames)
	}
	if len(lines) != 2 {
		t.Errorf("logged %d lines, want 2", len(lines))
	}
	if s := w.Summary(); !strings.HasPrefix(s, "frame=120 ") {
		t.Errorf("Summary() = %q", s)
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	w := newWorld(t, 9)
	ctx, cancel := context.WithCancel(context.Background())
	stats := RunHeadless(ctx, w, 600, 1, func(string, ...any) {
		if w.Frame() == 30 {
			cancel()
		}
	})
	if stats.Frames != 30 {
		t.Errorf("Frames = %d, want 30", stats.Frames)
	}
}

func TestDone(t *testing.T) {
	w := newWorld(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if w.Done(ctx, 0) || w.Done(ctx, 1) {
		t.Fatalf("fresh world reported done")
	}
	w.Step(Input{Now: 1.0 / TickRate})
	if !w.Done(ctx, 1) {
		t.Errorf("Done(ctx, 1) = false after one step")
	}
	if w.Done(ctx, 0) {
		t.Errorf("Done(ctx, 0) = true, want no limit")
	}
	cancel()
	if !w.Done(ctx, 0) {
		t.Errorf("Done() = false after cancel")
	}
}

func BenchmarkStep(b *testing.B) {
	src, _ := rng.New(1)
	w, _ := New(config.Default(), src)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Step(Input{Now: float64(i) / TickRate, Directions: entity.Directions{Forward: true}})
	}
}
