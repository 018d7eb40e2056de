package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/lightfan/internal/config"
	"chosenoffset.com/lightfan/internal/render/gg"
	"chosenoffset.com/lightfan/internal/render/record"
	"chosenoffset.com/lightfan/internal/scenescanner"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to render")
	dir := flag.String("dir", "", "render every scene file in this directory")
	out := flag.String("out", ".", "output directory for PNG files")
	trace := flag.Bool("trace", false, "print the draw calls instead of writing PNGs")
	flag.Parse()

	var scenes []scenescanner.SceneEntry
	switch {
	case *dir != "":
		found, err := scenescanner.ScanDirectory(*dir)
		if err != nil {
			log.Fatalf("Failed to scan scenes: %v", err)
		}
		scenes = found
	case *scenePath != "":
		scenes = []scenescanner.SceneEntry{{Name: "scene", Path: *scenePath}}
	default:
		log.Fatal("either -scene or -dir is required")
	}

	if len(scenes) == 0 {
		log.Println("No scenes found")
		return
	}

	for _, entry := range scenes {
		if err := render(entry, *out, *trace); err != nil {
			log.Fatalf("Failed to render %s: %v", entry.Path, err)
		}
	}
}

func render(entry scenescanner.SceneEntry, outDir string, trace bool) error {
	scene, err := config.LoadConfig(entry.Path)
	if err != nil {
		return err
	}
	engine := scene.NewEngine(scene.Width, scene.Height)

	if trace {
		rec := record.NewRecorder()
		engine.Draw(rec)
		fmt.Printf("# %s\n", entry.Name)
		_, err := rec.WriteTo(os.Stdout)
		return err
	}

	bg, fg := scene.Colors()
	surface := gg.NewImageSurface(int(scene.Width), int(scene.Height), bg, fg)
	engine.Draw(surface)

	path := filepath.Join(outDir, entry.Name+".png")
	if err := surface.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("Wrote %s (%d segments)", path, len(engine.Look()))
	return nil
}
