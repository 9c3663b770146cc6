package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run starts the window and main loop. setup runs once after the window and
// GL context exist, so GPU resources (shaders, textures, meshes) are created
// there rather than in main. Each frame calls update (input, camera), then
// clears the screen and calls draw between BeginDrawing/EndDrawing. teardown
// runs after the loop, before the window closes.
// The cursor is captured for mouse-look; close via the window button.
func Run(width, height, fps int32, title string, setup, update, draw, teardown func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.DisableCursor()
	rl.SetTargetFPS(fps)

	setup()
	defer teardown()

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
