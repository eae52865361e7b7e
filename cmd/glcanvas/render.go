package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/tdewolff/glcanvas"
	"github.com/tdewolff/glcanvas/gles/soft"
	"github.com/tdewolff/glcanvas/internal/demo"
)

type Render struct {
	Scene      string  `short:"s" default:"preview" desc:"Scene name"`
	Width      int     `short:"W" default:"600" desc:"Image width in pixels"`
	Height     int     `short:"H" default:"200" desc:"Image height in pixels"`
	Time       float64 `short:"t" desc:"Animation time in seconds"`
	Background string  `short:"b" desc:"Background image (PNG, JPEG, GIF, BMP or WebP)"`
	Config     string  `short:"c" desc:"TOML configuration file"`
	Open       bool    `desc:"Open the output in the browser"`
	Verbose    bool    `short:"v" desc:"Verbose logging"`
	Output     string  `short:"o" default:"glcanvas.png" desc:"Output filename"`
}

func (cmd *Render) Run() error {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		fmt.Println("ERROR: width and height must be positive")
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

	gl := soft.New(cmd.Width, cmd.Height)
	c, err := glcanvas.New(gl, cmd.Width, cmd.Height, glcanvas.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.ShaderErrors(); err != nil {
		return err
	}

	if cmd.Background != "" {
		img, err := decodeImage(cmd.Background)
		if err != nil {
			return err
		} else if err := c.DrawImageScaled(img, 0.0, 0.0, float64(cmd.Width), float64(cmd.Height)); err != nil {
			return err
		}
	}
	if err := scene(c, cmd.Time); err != nil {
		return fmt.Errorf("scene %s: %w", cmd.Scene, err)
	}
	c.Flush()

	if err := writePNG(cmd.Output, gl.Image()); err != nil {
		return err
	}
	if cmd.Open {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

func decodeImage(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return img, nil
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
