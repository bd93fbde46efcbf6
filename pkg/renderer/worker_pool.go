package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// Render traces every pixel and returns the finished raster. Rows are
// distributed over a fixed pool of workers; the scene is read-only during
// rendering so workers share it without locks. Each worker owns its rng.
func (rt *Raytracer) Render() *image.RGBA {
	width := rt.camera.ImageWidth()
	height := rt.camera.ImageHeight()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	totalPixels := int64(width * height)
	var pixelsDone int64

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			// Distinct deterministic stream per worker
			random := rand.New(rand.NewSource(rt.config.Seed + int64(workerID)))

			for j := range rows {
				for i := 0; i < width; i++ {
					pixel := rt.samplePixel(i, j, random)
					img.SetRGBA(i, j, vec3ToColor(pixel))

					done := atomic.AddInt64(&pixelsDone, 1)
					rt.reportProgress(done, totalPixels)
				}
			}
		}(w)
	}
	wg.Wait()

	return img
}

// reportProgress prints at roughly 10% increments. Best effort only; it
// never influences the render result.
func (rt *Raytracer) reportProgress(done, total int64) {
	if rt.logger == nil {
		return
	}
	step := total / 10
	if step == 0 {
		return
	}
	if done%step == 0 {
		rt.logger.Printf("Progress: %d%%\n", done*100/total)
	}
}
