package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/battlefield/battlefield"
	"github.com/lixenwraith/battlefield/generator"
)

var errInvalidInput = errors.New("invalid input")

// creator asks how to build the battlefield: load the default map or generate one
type creator struct {
	in      *bufio.Reader
	out     io.Writer
	mapFile string
	seed    int64
}

func newCreator(in io.Reader, out io.Writer, mapFile string, seed int64) *creator {
	return &creator{
		in:      bufio.NewReader(in),
		out:     out,
		mapFile: mapFile,
		seed:    seed,
	}
}

func (c *creator) create() (*battlefield.Field, error) {
	fmt.Fprintln(c.out, "[1] Load default JSON file")
	fmt.Fprintln(c.out, "[2] Generate randomly")

	option, err := c.readInt("Enter your option to generate a battlefield: ")
	if err != nil {
		return nil, err
	}

	switch option {
	case 1:
		if _, err := os.Stat(c.mapFile); err != nil {
			return nil, fmt.Errorf("resource file not found: %s", c.mapFile)
		}
		return battlefield.LoadFile(c.mapFile)

	case 2:
		width, err := c.readPositive("Enter battlefield width: ")
		if err != nil {
			return nil, err
		}
		height, err := c.readPositive("Enter battlefield height: ")
		if err != nil {
			return nil, err
		}
		units, err := c.readInt("Enter number of units: ")
		if err != nil {
			return nil, err
		}
		terrains, err := c.readInt("Enter number of terrains: ")
		if err != nil {
			return nil, err
		}
		return generator.Random(generator.RandomConfig{
			Width:    width,
			Height:   height,
			Units:    units,
			Terrains: terrains,
			Seed:     c.seed,
		})

	default:
		return nil, fmt.Errorf("%w: option %d", errInvalidInput, option)
	}
}

// --- Input Helpers ---

func (c *creator) readInt(prompt string) (int, error) {
	fmt.Fprint(c.out, prompt)
	s, err := c.in.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" && err != nil {
		return 0, fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalidInput, s)
	}
	return v, nil
}

func (c *creator) readPositive(prompt string) (int, error) {
	v, err := c.readInt(prompt)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %d must be positive", errInvalidInput, v)
	}
	return v, nil
}
