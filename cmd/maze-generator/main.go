package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/core"
	"github.com/lixenwraith/battlefield/generator"
	"github.com/lixenwraith/battlefield/navigation"
	"github.com/lixenwraith/battlefield/parameter"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== BATTLEFIELD MAZE GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Width [Odd prefered] (default %d): ", parameter.DefaultFieldWidth+1), parameter.DefaultFieldWidth+1)
		h := getInt(reader, fmt.Sprintf("Height [Odd prefered] (default %d): ", parameter.DefaultFieldHeight+1), parameter.DefaultFieldHeight+1)
		units := getInt(reader, fmt.Sprintf("Units (default %d): ", parameter.DefaultUnitCount), parameter.DefaultUnitCount)
		braid := getFloat(reader, fmt.Sprintf("Braiding Factor [0.0 - 1.0] (default %.1f): ", parameter.DefaultMazeBraiding), parameter.DefaultMazeBraiding)

		cfg := generator.MazeConfig{
			Width:    w,
			Height:   h,
			Units:    units,
			Braiding: braid,
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		field, err := generator.Maze(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Failed: %v\n", err)
		} else {
			fmt.Printf("Done in %v\n", dur)
			fmt.Printf("Grid Dimensions: %dx%d\n", field.Width(), field.Height())
			report(field)
			draw(field)
			save(reader, field)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// report prints the shortest path length from the first start on an empty battlefield
func report(field *battlefield.Field) {
	starts := field.StartPositions()
	targets := field.TargetPositions()
	if len(starts) == 0 || len(targets) == 0 {
		fmt.Println("Status: No units placed")
		return
	}

	res := navigation.New(field).Search(starts[0], targets[0], core.NewOccupancy())
	if res.Found() {
		fmt.Printf("Solution Path Length: %d steps (%d nodes expanded)\n", len(res.Path), res.Expanded)
	} else {
		fmt.Printf("Status: %v\n", res.Status)
	}
}

func draw(field *battlefield.Field) {
	for _, row := range field.Grid() {
		for _, t := range row {
			switch t {
			case core.TileElevated:
				fmt.Print("█")
			case core.TileWalkable:
				fmt.Print(" ")
			default:
				fmt.Print(string(t.Rune()))
			}
		}
		fmt.Println()
	}
}

func save(r *bufio.Reader, field *battlefield.Field) {
	fmt.Print("Save as YAML layout (path, empty to skip): ")
	s, _ := r.ReadString('\n')
	path := strings.TrimSpace(s)
	if path == "" {
		return
	}
	if err := battlefield.SaveLayoutFile(path, "maze", field); err != nil {
		fmt.Printf("Save failed: %v\n", err)
		return
	}
	fmt.Printf("Saved %s\n", path)
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
