package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/tdewolff/argp"

	"github.com/tdewolff/glcanvas"
	"github.com/tdewolff/glcanvas/game"
	"github.com/tdewolff/glcanvas/gles/desktop"
	"github.com/tdewolff/glcanvas/internal/demo"
)

func init() {
	// GLFW and GL calls must be made from the main thread
	runtime.LockOSThread()
}

type Window struct {
	Scene   string `short:"s" default:"preview" desc:"Scene name"`
	Width   int    `short:"W" default:"900" desc:"Window width"`
	Height  int    `short:"H" default:"300" desc:"Window height"`
	FPS     int    `default:"60" desc:"Frames per second"`
	Config  string `short:"c" desc:"TOML configuration file"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
}

func (cmd *Window) Run() error {
	if cmd.Width <= 0 || cmd.Height <= 0 || cmd.FPS <= 0 {
		fmt.Println("ERROR: width, height and fps must be positive")
		return argp.ShowUsage
	}
	setupLogger(cmd.Verbose)

	scene, err := demo.Lookup(cmd.Scene)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(cmd.Width, cmd.Height, "glcanvas: "+cmd.Scene, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	window.SetKeyCallback(onKey)

	gl, err := desktop.New()
	if err != nil {
		return err
	}
	glcanvas.Logger().Debug("window opened", "gl", gl.Version())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fbWidth, fbHeight := window.GetFramebufferSize()
	start := time.Now()
	g, err := game.New(gl, game.Options{
		Width:  fbWidth,
		Height: fbHeight,
		Title:  cmd.Scene,
		Config: &cfg,
		OnRender: func(c *glcanvas.Context) error {
			if err := c.ClearRect(0.0, 0.0, float64(c.Width()), float64(c.Height())); err != nil {
				return err
			}
			return scene(c, time.Since(start).Seconds())
		},
		FrameEnd: func() {
			window.SwapBuffers()
			glfw.PollEvents()
			if window.ShouldClose() {
				cancel()
			}
		},
	})
	if err != nil {
		return err
	}
	defer g.Close()
	if err := g.Context().ShaderErrors(); err != nil {
		return err
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if err := g.Context().Resize(width, height); err != nil {
			glcanvas.Logger().Warn("resize", "error", err)
		}
	})
	return g.Run(ctx, time.Second/time.Duration(cmd.FPS))
}

func onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && (key == glfw.KeyEscape || key == glfw.KeyQ) {
		w.SetShouldClose(true)
	}
}
