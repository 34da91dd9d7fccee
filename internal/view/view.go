package view

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"overland/internal/profiling"
	"overland/internal/world"
)

const (
	tileSize  = 12.0 // pixels per cell
	moveSpeed = 12.0 // cells per second
)

// groundColors maps each biome to its base tile colour; per-cell tile variants
// shift the shade slightly so chunk content is visible at a glance.
var groundColors = [3]color.RGBA{
	world.BiomeForest: {R: 48, G: 110, B: 52, A: 255},
	world.BiomeDesert: {R: 204, G: 176, B: 110, A: 255},
	world.BiomeSnow:   {R: 222, G: 228, B: 236, A: 255},
}

var resourceColors = [3]color.RGBA{
	world.BiomeForest: {R: 96, G: 64, B: 24, A: 255},  // timber
	world.BiomeDesert: {R: 60, G: 130, B: 60, A: 255}, // cactus
	world.BiomeSnow:   {R: 120, G: 150, B: 190, A: 255},
}

// View renders the tile world with its fog overlay and drives the observer
// from keyboard input. It consumes only the world's declared query surface.
type View struct {
	world  *world.World
	width  int
	height int

	pos mgl64.Vec2 // observer, continuous world units (cells)

	showHUD  bool
	prevKeys map[ebiten.Key]bool
}

// New creates a view over the world with the observer at the origin.
func New(w *world.World, width, height int) *View {
	return &View{
		world:    w,
		width:    width,
		height:   height,
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

func (v *View) pressed(k ebiten.Key) bool {
	cur := ebiten.IsKeyPressed(k)
	was := v.prevKeys[k]
	v.prevKeys[k] = cur
	return cur && !was
}

// Update moves the observer and ticks the world once per frame.
func (v *View) Update() error {
	profiling.ResetFrame()
	dt := 1.0 / float64(ebiten.TPS())

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	if dx != 0 || dy != 0 {
		n := math.Hypot(dx, dy)
		v.pos = v.pos.Add(mgl64.Vec2{dx / n * moveSpeed * dt, dy / n * moveSpeed * dt})
	}

	if v.pressed(ebiten.KeyR) {
		v.world.RevealAll()
	}
	if v.pressed(ebiten.KeyH) {
		v.showHUD = !v.showHUD
	}

	v.world.SetObserver(v.pos)
	v.world.Tick(dt)
	return nil
}

// Draw renders the visible cell window centered on the observer.
func (v *View) Draw(screen *ebiten.Image) {
	store := v.world.Store()
	fog := v.world.Fog()
	obs := world.CellAt(v.pos)
	radius := v.world.Config().RevealRadius

	halfW := int(float64(v.width)/tileSize)/2 + 1
	halfH := int(float64(v.height)/tileSize)/2 + 1

	for cy := obs.Y - halfH; cy <= obs.Y+halfH; cy++ {
		for cx := obs.X - halfW; cx <= obs.X+halfW; cx++ {
			cell := world.Cell{X: cx, Y: cy}
			if !fog.Visible(cell) {
				continue // occluded cells stay black
			}

			sx := float32(float64(v.width)/2 + (float64(cx)-v.pos.X())*tileSize)
			sy := float32(float64(v.height)/2 + (float64(cy)-v.pos.Y())*tileSize)

			biome := v.world.BiomeAt(cell)
			clr := groundColors[biome]
			if tile, ok := store.GroundTileAt(cell); ok {
				// Tile variants nudge the shade so generation detail shows.
				shift := uint8(tile % 4 * 6)
				clr.R += shift
				clr.G += shift
				clr.B += shift
			}

			// Memory of previously explored terrain renders dimmed until the
			// observer is back in range.
			ddx := float64(cx - obs.X)
			ddy := float64(cy - obs.Y)
			if ddx*ddx+ddy*ddy > radius*radius {
				clr.R /= 2
				clr.G /= 2
				clr.B /= 2
			}

			vector.DrawFilledRect(screen, sx, sy, tileSize, tileSize, clr, false)

			if v.world.HasResourceAt(cell) {
				rc := resourceColors[biome]
				vector.DrawFilledRect(screen, sx+3, sy+3, tileSize-6, tileSize-6, rc, false)
			}
		}
	}

	// Observer marker.
	vector.DrawFilledCircle(screen,
		float32(v.width)/2, float32(v.height)/2, tileSize/2.5,
		color.RGBA{R: 240, G: 80, B: 60, A: 255}, true)

	if v.showHUD {
		v.drawHUD(screen, obs)
	}
}

func (v *View) drawHUD(screen *ebiten.Image, obs world.Cell) {
	lines := []string{
		fmt.Sprintf("cell %d,%d  biome %s", obs.X, obs.Y, v.world.BiomeAt(obs)),
		fmt.Sprintf("chunks %d  revealed %d", v.world.Store().Count(), v.world.Fog().RevealedCount()),
		fmt.Sprintf("tick %s", profiling.TopN(3)),
		"WASD move  R reveal all  H hud",
	}
	for i, s := range lines {
		text.Draw(screen, s, basicfont.Face7x13, 8, 16+14*i, color.White)
	}
}

// Layout reports the fixed logical screen size.
func (v *View) Layout(_, _ int) (int, int) {
	return v.width, v.height
}
