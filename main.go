package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/softsun/go-pathtracer/pkg/core"
	"github.com/softsun/go-pathtracer/pkg/output"
	"github.com/softsun/go-pathtracer/pkg/renderer"
	"github.com/softsun/go-pathtracer/pkg/scene"
)

// createScene builds the named scene, or returns an error for an unknown name
func createScene(sceneType string, logger core.Logger) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "checkered":
		return scene.NewCheckeredSpheresScene(), nil
	case "earth":
		return scene.NewEarthScene(logger), nil
	case "quads":
		return scene.NewQuadsScene(), nil
	case "lights":
		return scene.NewSimpleLightsScene(), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	case "cornell-smoke":
		return scene.NewCornellSmokeScene(), nil
	case "final":
		return scene.NewFinalScene(false, logger), nil
	case "final-reduced":
		return scene.NewFinalScene(true, logger), nil
	}
	return nil, fmt.Errorf("unknown scene type: %s", sceneType)
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to render (see -help for the list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 100, "Samples per pixel")
	depth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Parallel render workers (0 = CPU count)")
	outputDir := flag.String("output", "output", "Output directory")
	upload := flag.Bool("upload", false, "Upload the result to S3 (configured via environment)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default       - Random sphere field with defocus blur")
		fmt.Println("  checkered     - Two large checkered spheres")
		fmt.Println("  earth         - Earth-textured sphere")
		fmt.Println("  quads         - Five colored quads")
		fmt.Println("  lights        - Emissive sphere and quad lights")
		fmt.Println("  cornell       - Cornell box with rotated boxes")
		fmt.Println("  cornell-smoke - Cornell box with smoke volumes")
		fmt.Println("  final         - Showcase scene with volumes and textures")
		fmt.Println()
		fmt.Println("Output is saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType, logger)
	if err != nil {
		fmt.Printf("%v. Using default scene.\n", err)
		selectedScene = scene.NewDefaultScene()
		*sceneType = "default"
	}

	cameraConfig := selectedScene.CameraConfig
	if *width > 0 {
		cameraConfig.ImageWidth = *width
	}
	camera := renderer.NewCamera(cameraConfig)

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = *samples
	samplingConfig.MaxDepth = *depth
	samplingConfig.NumWorkers = *workers

	raytracer := renderer.NewRaytracer(selectedScene.World, camera, selectedScene.Background, samplingConfig, logger)

	fmt.Printf("Rendering %s at %dx%d, %d samples per pixel...\n",
		*sceneType, camera.ImageWidth(), camera.ImageHeight(), *samples)

	startTime := time.Now()
	img := raytracer.Render()
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)

	sceneDir := filepath.Join(*outputDir, *sceneType)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(sceneDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := output.WritePNG(img, filename); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if *upload {
		cfg, ok := output.S3ConfigFromEnv()
		if !ok {
			fmt.Println("Upload requested but S3_BUCKET is not set; skipping")
			return
		}
		sink, err := output.NewS3Sink(cfg)
		if err != nil {
			fmt.Printf("Error connecting to S3: %v\n", err)
			os.Exit(1)
		}
		data, err := output.EncodePNG(img)
		if err != nil {
			fmt.Printf("Error encoding PNG for upload: %v\n", err)
			os.Exit(1)
		}
		key := fmt.Sprintf("renders/%s/render_%s.png", *sceneType, timestamp)
		if err := sink.Upload(context.Background(), data, key); err != nil {
			fmt.Printf("Error uploading to S3: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Uploaded render to s3://%s/%s\n", cfg.Bucket, key)
	}
}
