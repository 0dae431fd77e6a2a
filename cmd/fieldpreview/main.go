// Noise field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/systems"
)

const (
	windowWidth  = 900
	windowHeight = 560
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Noise Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	seed := uint32(12345)
	opts := systems.DefaultNoiseOptions()
	bounds := systems.Bounds{Width: gridSize, Height: gridSize}

	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	field := systems.BuildNoiseField(seed, bounds, opts)
	updateTexture(texture, field)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			field = systems.BuildNoiseField(seed, bounds, opts)
			updateTexture(texture, field)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview, tiled 2x2 at half scale so seams (or their
		// absence) are visible at the wrap boundary.
		for ty := 0; ty < 2; ty++ {
			for tx := 0; tx < 2; tx++ {
				rl.DrawTexturePro(
					texture,
					rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
					rl.Rectangle{
						X:      float32(10 + tx*previewSize/2),
						Y:      float32(10 + ty*previewSize/2),
						Width:  previewSize / 2,
						Height: previewSize / 2,
					},
					rl.Vector2{X: 0, Y: 0},
					0,
					rl.White,
				)
			}
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Noise Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Window slider
		rl.DrawText("Window (sampling half-extent)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWindow := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1.0", "8.0",
			float32(opts.Window), 1.0, 8.0,
		)
		rl.DrawText(fmt.Sprintf("%.1f", opts.Window), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if math.Abs(float64(newWindow)-opts.Window) > 1e-6 {
			opts.Window = float64(newWindow)
			needsRegen = true
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if uint32(newSeed) != seed {
			seed = uint32(newSeed)
			needsRegen = true
		}
		panelY += 35

		// Seamless toggle
		newSeamless := gui.CheckBox(
			rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16},
			"seamless (tileable)", opts.Seamless,
		)
		if newSeamless != opts.Seamless {
			opts.Seamless = newSeamless
			needsRegen = true
		}
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = uint32(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		panelY += 45

		rl.DrawText("Preview is tiled 2x2 to expose seams.", int32(panelX), int32(panelY), 12, rl.Gray)

		rl.EndDrawing()
	}
}

// updateTexture renders the scalar field to the texture in grayscale.
func updateTexture(texture rl.Texture2D, field *systems.NoiseField) {
	w, h := field.Size()
	pixels := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(field.Get(x, y) * 255)
			pixels[y*w+x] = color.RGBA{R: v, G: v, B: v, A: 255}
		}
	}
	rl.UpdateTexture(texture, pixels)
}
