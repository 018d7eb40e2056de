package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"chosenoffset.com/lightfan/internal/config"
	"chosenoffset.com/lightfan/internal/game"
	"chosenoffset.com/lightfan/internal/raycaster"
	ebitenrender "chosenoffset.com/lightfan/internal/render/ebiten"
)

func main() {
	scenePath := flag.String("scene", "scene.json", "scene file to render")
	debug := flag.Bool("debug", false, "log engine diagnostics")
	flag.Parse()

	if *debug {
		raycaster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := config.LoadConfig(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	bg, fg := scene.Colors()
	engine := ebitenrender.NewEngine(bg, fg)

	// Set up the window
	engine.SetWindowSize(int(scene.Width), int(scene.Height))
	engine.SetWindowTitle("lightfan - " + scene.Name)
	engine.SetWindowResizable(true)

	log.Printf("Rendering scene %q (%d elements)", scene.Name, len(scene.Elements))
	if err := engine.RunGame(game.New(scene)); err != nil {
		log.Fatal(err)
	}
}
