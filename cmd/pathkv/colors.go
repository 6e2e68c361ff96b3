package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colors formats interpreter output.
type Colors struct {
	Path  func(string, ...any) string
	Value func(string, ...any) string
	Err   func(string, ...any) string
	Help  func(string, ...any) string
}

func NoColors() *Colors {
	return &Colors{
		Path:  fmt.Sprintf,
		Value: fmt.Sprintf,
		Err:   fmt.Sprintf,
		Help:  fmt.Sprintf,
	}
}

func NewColors() *Colors {
	return &Colors{
		Path:  enabled(color.New(color.FgCyan)).SprintfFunc(),
		Value: enabled(color.RGB(8, 196, 16)).SprintfFunc(),
		Err:   enabled(color.New(color.FgRed, color.Bold)).SprintfFunc(),
		Help:  enabled(color.RGB(74, 92, 138)).SprintfFunc(),
	}
}

func enabled(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

// colorsFor returns NewColors when forced or when w is a terminal.
func colorsFor(w io.Writer, force bool) *Colors {
	if force {
		return NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return NoColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return NoColors()
}
