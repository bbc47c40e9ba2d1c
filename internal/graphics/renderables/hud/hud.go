package hud

import (
	"fmt"

	"ropepen/internal/config"
	"ropepen/internal/graphics"
	renderer "ropepen/internal/graphics/renderer"
	"ropepen/internal/profiling"
	"ropepen/internal/sim"

	"github.com/go-gl/mathgl/mgl32"
)

// Welcome is shown under the FPS counter.
const Welcome = "Welcome to ropepen! Move with WASD, steer the tether with the mouse."

const fontPixels = 24

var textColor = mgl32.Vec3{1.0, 1.0, 1.0}

// HUD draws the status text and, when enabled, the profiling overlay.
type HUD struct {
	fontRenderer *graphics.FontRenderer
	stats        frameStats
}

// NewHUD creates a new HUD renderable
func NewHUD() *HUD {
	return &HUD{}
}

// Init bakes the font atlas and loads the text shader.
func (h *HUD) Init() error {
	atlas, err := graphics.BuildDefaultFontAtlas(fontPixels)
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}
	fr, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}
	h.fontRenderer = fr
	return nil
}

// Render renders the HUD elements
func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.HUD")()

	h.stats.record(profiling.SumWithPrefix("render.Scene"))

	lines := StatusLines(ctx.World, ctx.FPS)
	if config.GetShowProfiling() {
		lines = append(lines, "")
		lines = append(lines, h.stats.lines()...)
	}
	h.fontRenderer.RenderLines(lines, 10, 30, 20, 0.7, textColor)
}

// Dispose cleans up resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

// SetViewport keeps text laid out in window pixels.
func (h *HUD) SetViewport(width, height int) {
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(float32(width), float32(height))
	}
}

// StatusLines is the always-visible HUD text.
func StatusLines(w *sim.World, fps float64) []string {
	p := w.Player
	r := w.LastReport()
	return []string{
		fmt.Sprintf("FPS: %.0f", fps),
		Welcome,
		fmt.Sprintf("Player: %.2f, %.2f | Tether: %.2f, %.2f | FOV: %.0f",
			p.Position.X(), p.Position.Z(), p.Tether.Position.X(), p.Tether.Position.Z(), w.Camera.FOVY),
		fmt.Sprintf("Hits -> player: %d, rope: %d, tether: %d, animals: %d",
			r.PlayerAnimal, r.RopeAnimal, r.TetherAnimal, r.AnimalAnimal),
	}
}
