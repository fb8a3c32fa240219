package main

import (
	"flag"
	"log"

	raytracer "github.com/kestrel-labs/raytrace"
	"github.com/kestrel-labs/raytrace/internal/cliutil"
)

var (
	outFile = flag.String("out_file", "./tmp/scene.ppm", "PPM filename to write")
	width   = flag.Int("width", 800, "canvas width in pixels")
	height  = flag.Int("height", 600, "canvas height in pixels")
)

func main() {
	flag.Parse()

	world, camera := raytracer.ExampleScene(*width, *height)
	canvas := camera.Render(world)

	out, err := cliutil.WritePPM(*outFile, canvas.ToPPM())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", out)
}
