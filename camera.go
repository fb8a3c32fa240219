package raytracer

import (
	"math"
	"runtime"
	"sync"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// DefaultRecursionDepth is the default bounce limit passed to
// ColorOfRay by Render. The shading kernel requires at least 5 to let
// two mutually reflective planes terminate with a visible result.
const DefaultRecursionDepth = 5

// Camera projects pixels to primary rays. half_width, half_height,
// and pixel_size are derived once at construction time since every
// pixel's ray computation needs them.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64
	Transform    Transform

	halfWidth, halfHeight, pixelSize float64

	// Depth is the recursion bound passed to ColorOfRay for every
	// pixel. Defaults to DefaultRecursionDepth when left at zero.
	Depth int
}

func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fov,
		Transform:   Identity(),
		Depth:       DefaultRecursionDepth,
	}
	c.deriveDimensions()
	return c
}

func (c *Camera) deriveDimensions() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.HSize)
}

// SetTransform installs a new view transform; dimensions derived from
// field_of_view are unaffected.
func (c *Camera) SetTransform(t Transform) {
	c.Transform = t
}

// RayForPixel computes the world-space primary ray through pixel
// (px, py).
func (c *Camera) RayForPixel(px, py int) Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv := c.Transform.Inverse()
	pixel := inv.TransformPoint(prim.NewPoint(worldX, worldY, -1))
	origin := inv.TransformPoint(prim.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return NewRay(origin, direction)
}

// Render rasterizes world into a new canvas, evaluating every pixel
// independently across a fixed worker pool. Pixel tasks are pure
// functions of (x, y, camera, world): the world and every object in
// it are read-only for the whole render, and each worker writes only
// to its own pixel slot, so no synchronization is needed beyond
// waiting for the pool to drain.
func (c *Camera) Render(world *World) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	depth := c.Depth
	if depth == 0 {
		depth = DefaultRecursionDepth
	}

	type pixel struct{ x, y int }
	tasks := make(chan pixel, c.VSize)
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range tasks {
				ray := c.RayForPixel(p.x, p.y)
				color := world.ColorOfRay(ray, depth)
				canvas.WriteAt(p.x, p.y, color)
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			tasks <- pixel{x, y}
		}
	}
	close(tasks)
	wg.Wait()

	return canvas
}
