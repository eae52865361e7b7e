package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/tdewolff/glcanvas"
	"github.com/tdewolff/glcanvas/internal/demo"
)

type Main struct{}

type Scenes struct{}

func main() {
	root := argp.NewCmd(&Main{}, "Canvas 2D drawing on OpenGL ES by Taco de Wolff")
	root.AddCmd(&Render{}, "render", "Render a scene to a PNG file without a display")
	root.AddCmd(&Window{}, "window", "Show an animated scene in a window")
	root.AddCmd(&Scenes{}, "scenes", "List the scenes")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func (cmd *Scenes) Run() error {
	fmt.Println(strings.Join(demo.Names(), "\n"))
	return nil
}

// setupLogger logs to stderr, at debug level when verbose.
func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	glcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig returns the configuration in filename, or the defaults if filename is empty.
func loadConfig(filename string) (glcanvas.Config, error) {
	if filename == "" {
		return glcanvas.DefaultConfig(), nil
	}
	return glcanvas.LoadConfig(filename)
}
