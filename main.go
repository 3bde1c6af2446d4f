package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mkarlik/go-smallray/pkg/config"
	"github.com/mkarlik/go-smallray/pkg/renderer"
	"github.com/mkarlik/go-smallray/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file (optional)")
	outputDir := flag.String("output", "output", "Directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("smallray - Cornell box preview renderer")
		fmt.Println("Usage: smallray [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/render_<timestamp>.png")
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Printf("Error loading config: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	s, cameraConfig, err := scene.NewCornellScene(cfg.CornellOptions(), logger)
	if err != nil {
		logger.Printf("Error building scene: %v", err)
		os.Exit(1)
	}
	s.BuildSceneSphere()

	sphere := s.GetSceneSphere()
	logger.Printf("Scene ready: %d materials, %d lights, scene radius %.3f",
		s.GetMaterialCount(), s.GetLightCount(), sphere.Radius)

	camera := renderer.NewCamera(cameraConfig, cfg.Render.Width, cfg.Render.Height)
	raytracer := renderer.NewRaytracer(s, camera, cfg.Render.Width, cfg.Render.Height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.SamplesPerPixel,
		NumWorkers:      cfg.Render.NumWorkers,
	})

	startTime := time.Now()
	img := raytracer.RenderPass()
	logger.Printf("Render completed in %v", time.Since(startTime))

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		logger.Printf("Error creating output directory: %v", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		logger.Printf("Error creating file: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Printf("Error saving PNG: %v", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s", filename)
}
