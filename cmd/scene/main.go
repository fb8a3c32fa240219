package main

import (
	"flag"
	"log"
	"os"

	"github.com/kestrel-labs/raytrace/internal/cliutil"
	"github.com/kestrel-labs/raytrace/internal/scene"
)

var (
	sceneFile = flag.String("scene_file", "", "YAML scene filename to render")
	outFile   = flag.String("out_file", "./tmp/scene.ppm", "PPM filename to write")
)

func main() {
	flag.Parse()
	if *sceneFile == "" {
		log.Fatal("--scene_file is required")
	}

	data, err := os.ReadFile(*sceneFile)
	if err != nil {
		log.Fatal(err)
	}

	world, camera, err := scene.Load(data)
	if err != nil {
		log.Fatal(err)
	}

	canvas := camera.Render(world)
	out, err := cliutil.WritePPM(*outFile, canvas.ToPPM())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", out)
}
