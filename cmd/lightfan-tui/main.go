package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/lightfan/internal/config"
	"chosenoffset.com/lightfan/internal/render/tui"
)

func main() {
	scenePath := flag.String("scene", "scene.json", "scene file to render")
	flag.Parse()

	scene, err := config.LoadConfig(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	engine := scene.NewEngine(scene.Width, scene.Height)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	draw := func() {
		screen.Clear()
		cols, rows := screen.Size()
		engine.Draw(tui.NewSurface(screen, scene.Width, scene.Height, cols, rows))
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		case nil:
			return
		}
	}
}
