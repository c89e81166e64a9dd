// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"

	"lajolla/r3"
)

type ray struct {
	radiance  Spectrum
	origin    r3.Point
	direction r3.Vec
	depth     int
	pixelX    int
	pixelY    int
	rand      *Rand
}

func (r ray) at(t Distance) r3.Point {
	p := r.origin.Add(r.direction.Muls(float64(t)))
	return p
}

// RenderStats collects runtime metrics for the rendering process.
type RenderStats struct {
	RaysExceededDepth uint64        // Total count of rays that exceeded max ray depth.
	RaysLeftScene     uint64        // Total count of rays that left the scene.
	TotalRays         uint64        // Total count of all rays generated.
	RenderTime        time.Duration // How long it took to render the scene.
	Dx                int           // Width of the rendered image.
	Dy                int           // Height of the rendered image.
}

func (stats RenderStats) String() string {
	return fmt.Sprintf("RenderStats{RaysExceededDepth=%d, RaysLeftScene=%d, TotalRays=%d, RenderTime=%s}",
		stats.RaysExceededDepth, stats.RaysLeftScene, stats.TotalRays, stats.RenderTime)
}

func (s RenderStats) PPrint() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		panic(err)
	}
	str := string(data)
	timePerPx := s.RenderTime / time.Duration(s.Dx*s.Dy)
	var maxDepthPercent float64
	var outScenePercent float64
	if s.TotalRays != 0 {
		maxDepthPercent = 100 * float64(s.RaysExceededDepth) / float64(s.TotalRays)
		outScenePercent = 100 * float64(s.RaysLeftScene) / float64(s.TotalRays)
	}
	str += "\n" + fmt.Sprintf("RenderTime: %s (%s per pixel)\n", s.RenderTime, timePerPx)
	str += fmt.Sprintf("TotalRays: %d\n", s.TotalRays)
	str += fmt.Sprintf("RaysExceedingDepth: %d (%.1f%%)\n", s.RaysExceededDepth, maxDepthPercent)
	str += fmt.Sprintf("RaysLeftScene: %d (%.1f%%)\n", s.RaysLeftScene, outScenePercent)
	str += fmt.Sprintf("Rendered %dx%d\n", s.Dx, s.Dy)
	return str
}

type RenderOptions struct {
	Seed         int64 // Random base seed.
	RaysPerPixel int   // Number of rays to generate for each pixel.
	MaxRayDepth  int   // Maximum number of collisions before terminating ray. -1 means unbounded.
	RRDepth      int   // Bounce count at which Russian roulette starts culling paths. 0 disables it.
	Dx           int   // Width of the rendered image in pixels.
	Dy           int   // Height of the rendered image in pixels.
}

func (r RenderOptions) Validate() error {
	if r.Seed < 0 {
		return fmt.Errorf("bad Seed must be non-negative but got %d", r.Seed)
	}
	if r.RaysPerPixel <= 0 {
		return fmt.Errorf("bad RaysPerPixel must be positive but got %d", r.RaysPerPixel)
	}
	if r.MaxRayDepth == 0 || r.MaxRayDepth < -1 {
		return fmt.Errorf("bad MaxRayDepth must be positive or -1 (unbounded) but got %d", r.MaxRayDepth)
	}
	if r.RRDepth < 0 {
		return fmt.Errorf("bad RRDepth must be non-negative but got %d", r.RRDepth)
	}
	if r.Dx <= 0 {
		return fmt.Errorf("bad Dx must be positive but got %d", r.Dx)
	}
	if r.Dy <= 0 {
		return fmt.Errorf("bad Dy must be positive but got %d", r.Dy)
	}
	return nil
}

// RenderArtifact represents the output of a rendering process (a render artifact).
type RenderArtifact struct {
	Image *image.RGBA
	Stats RenderStats
}

type tile struct {
	x0, x1, y0, y1 int
}

func (t tile) String() string {
	return fmt.Sprintf("Tile{xStart=%d, xEnd=%d, yStart=%d, yEnd=%d}", t.x0, t.x1, t.y0, t.y1)
}

// min reports the smaller of a and b.
// It works for any ordered type: integers, floats, strings.
func min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// max reports the larger of a and b.
func max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// clamp reports a if a is in [min, max], min if a < min, and max if a > max.
func clamp[T cmp.Ordered](a, minVal, maxVal T) T {
	if a < minVal {
		return minVal
	}
	if a > maxVal {
		return maxVal
	}
	return a
}

// tracePixelSample runs the volumetric path integrator for one camera
// ray, starting in the scene's declared camera medium (vacuum if < 0).
func tracePixelSample(scene *Scene, r ray, stats *RenderStats) Spectrum {
	if r.origin.IsNaN() || r.origin.IsInf() || r.direction.IsNaN() || r.direction.IsInf() {
		logger.Warnf("invalid ray: %+v", r)
		return Spectrum{}
	}
	return TracePath(scene, r, scene.CameraMediumID, r.rand, stats)
}

// renderPixel renders a single pixel in the image. Any x, y outside the image bounds will be clamped.
func renderPixel(ctx context.Context, scene *Scene, camera Camera, rand *Rand, stats *RenderStats, x, y int, img *image.RGBA) {
	dx := scene.RenderOptions.Dx
	dy := scene.RenderOptions.Dy
	// Clamp pixel coordinates to image bounds.
	cx := clamp(x, 0, dx-1)
	cy := clamp(y, 0, dy-1)
	if x != cx || y != cy {
		logger.Warnf("clamped pixel coordinates: (x, y)=(%d, %d) to (%d, %d)", x, y, cx, cy)
	}
	imgy := dy - 1 - cy // Flip y-axis to match image coordinates.
	rgb := Spectrum{}
	for sample := 0; sample < scene.RenderOptions.RaysPerPixel; sample++ {
		if ctx.Err() != nil {
			return
		}
		var s, tSample float64
		if scene.RenderOptions.RaysPerPixel == 1 {
			// Sample center of the pixel.
			s = (float64(cx) + 0.5) / float64(dx)
			tSample = (float64(cy) + 0.5) / float64(dy)
		} else {
			// Sample randomly within the pixel.
			s = (float64(cx) + rand.Float64()) / float64(dx)
			tSample = (float64(cy) + rand.Float64()) / float64(dy)
		}
		// Cast the ray from the camera.
		ray := camera.Cast(s, tSample, rand)
		ray.pixelX = cx
		ray.pixelY = imgy
		color := tracePixelSample(scene, ray, stats)
		rgb = rgb.Add(color)
	}
	rgb = rgb.Divs(float64(scene.RenderOptions.RaysPerPixel))
	img.Set(x, imgy, color.RGBA{
		R: uint8(math.Min(255, 255.99*rgb.X)),
		G: uint8(math.Min(255, 255.99*rgb.Y)),
		B: uint8(math.Min(255, 255.99*rgb.Z)),
		A: 255,
	})
}

func renderTile(ctx context.Context, scene *Scene, camera Camera, t tile, img *image.RGBA, stats *RenderStats) {
	for y := t.y0; y < t.y1; y++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		rand := NewRand(scene.RenderOptions.Seed + int64(y)*int64(scene.RenderOptions.Dx) + int64(t.x0))
		for x := t.x0; x < t.x1; x++ {
			renderPixel(ctx, scene, camera, rand, stats, x, y, img)
		}
	}
}

// startProgressBar logs rendering progress at a fixed cadence until the
// caller closes the returned channel or ctx is cancelled.
func startProgressBar(ctx context.Context, totalTiles int, tilesCompleted *uint64) chan struct{} {
	progressDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-progressDone:
				logger.Infof("rendering: 100%% complete (%d/%d tiles)", totalTiles, totalTiles)
				return
			case <-ticker.C:
				completed := atomic.LoadUint64(tilesCompleted)
				percent := 100 * float64(completed) / float64(totalTiles)
				logger.Infof("rendering: %.1f%% complete (%d/%d tiles)", percent, completed, totalTiles)
			}
		}
	}()
	return progressDone
}

// renderScene dispatches one task per tile onto a bounded worker pool.
// Every task owns its tile's pixel range exclusively, so writes to img
// need no synchronisation; only stats is shared and is updated with
// atomic adds from each task.
func renderScene(ctx context.Context, scene *Scene, camera Camera, workers int) (RenderArtifact, error) {
	t0 := time.Now()
	dx := scene.RenderOptions.Dx
	dy := scene.RenderOptions.Dy
	img := image.NewRGBA(image.Rect(0, 0, dx, dy))
	stats := RenderStats{}
	stats.Dx = dx
	stats.Dy = dy

	ctxScene, cancel := context.WithCancel(ctx)
	defer cancel()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	tileSize := 16
	numTilesX := (dx + tileSize - 1) / tileSize
	numTilesY := (dy + tileSize - 1) / tileSize
	totalTiles := numTilesX * numTilesY
	var tilesCompleted uint64

	progressBar := startProgressBar(ctxScene, totalTiles, &tilesCompleted)

	pool := pond.NewPool(workers)
	for ty := 0; ty < numTilesY; ty++ {
		for tx := 0; tx < numTilesX; tx++ {
			t := tile{
				x0: tx * tileSize,
				x1: min((tx+1)*tileSize, dx),
				y0: ty * tileSize,
				y1: min((ty+1)*tileSize, dy),
			}
			pool.Submit(func() {
				if ctxScene.Err() != nil {
					return
				}
				var tileStats RenderStats
				renderTile(ctxScene, scene, camera, t, img, &tileStats)
				atomic.AddUint64(&tilesCompleted, 1)
				atomic.AddUint64(&stats.TotalRays, tileStats.TotalRays)
				atomic.AddUint64(&stats.RaysExceededDepth, tileStats.RaysExceededDepth)
				atomic.AddUint64(&stats.RaysLeftScene, tileStats.RaysLeftScene)
			})
		}
	}

	done := make(chan struct{})
	go func() {
		pool.StopAndWait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		cancel()
		close(progressBar)
		return RenderArtifact{}, ctx.Err()
	case <-done:
		close(progressBar)
	}
	stats.RenderTime = time.Since(t0)
	return RenderArtifact{Image: img, Stats: stats}, nil
}

// Render validates scene and renders it with its first camera, using
// workers CPU-bound tiles at once (0 selects hardware concurrency).
func Render(ctx context.Context, scene *Scene, workers int) (output RenderArtifact, err error) {
	err = scene.Validate()
	if err != nil {
		return RenderArtifact{}, fmt.Errorf("invalid scene: %v", err)
	}
	// Select the first camera in the scene.
	// We already know there is at least one camera in the scene.
	camera := scene.Camera[0]
	output, err = renderScene(ctx, scene, camera, workers)
	if err != nil {
		return RenderArtifact{}, fmt.Errorf("failed to render scene: %v", err)
	}
	return output, nil
}
