// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Command lajolla renders a JSON scene description to a PNG image.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"lajolla/phys"
)

var (
	app = kingpin.New("lajolla", "A physically based offline renderer.")

	workers = app.Flag("threads", "worker thread count (0 = hardware concurrency)").
		Short('t').Default("0").Int()
	output = app.Flag("output", "override the rendered image's output path").
		Short('o').String()
	filterName = app.Flag("filter", "reconstruction filter: box, tent, or mitchell").
			Default("box").Enum("box", "tent", "mitchell")
	scenePath = app.Arg("scene", "scene file to render (JSON)").Required().String()
)

func loadScene(path string) (*phys.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	var scene phys.Scene
	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	return &scene, nil
}

func reconFilter(name string) phys.ReconFilter {
	switch name {
	case "tent":
		return phys.TentFilter()
	case "mitchell":
		return phys.MitchellNetravaliFilter()
	default:
		return phys.BoxFilter()
	}
}

func outputPath(scenePath, override string) string {
	if override != "" {
		return override
	}
	base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
	return base + ".png"
}

func run() error {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	scene, err := loadScene(*scenePath)
	if err != nil {
		return err
	}

	w := *workers
	if w <= 0 {
		w = runtime.NumCPU()
	}

	artifact, err := phys.Render(context.Background(), scene, w)
	if err != nil {
		return fmt.Errorf("rendering scene: %w", err)
	}
	fmt.Fprintln(os.Stderr, artifact.Stats.PPrint())

	filtered := phys.ApplySeparableFilter(artifact.Image, reconFilter(*filterName))
	dst := outputPath(*scenePath, *output)
	if err := phys.SavePNG(dst, filtered); err != nil {
		return fmt.Errorf("writing output image %q: %w", dst, err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lajolla:", err)
		os.Exit(1)
	}
}
