// Command glcanvas-mobile shows the demo scenes on Android and iOS, build it with gomobile. Tapping the
// screen switches to the next scene.
package main

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"github.com/tdewolff/glcanvas"
	"github.com/tdewolff/glcanvas/game"
	"github.com/tdewolff/glcanvas/gles/mobile"
	"github.com/tdewolff/glcanvas/internal/demo"
)

func main() {
	glcanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	app.Main(func(a app.App) {
		var g *game.Game
		var glctx gl.Context
		var sz size.Event
		names := demo.Names()
		current := 0
		start := time.Now()

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if g != nil {
						g.Close()
						g = nil
					}
					glctx = nil
				}
			case size.Event:
				sz = e
				if g != nil {
					if err := g.Context().Resize(sz.WidthPx, sz.HeightPx); err != nil {
						glcanvas.Logger().Warn("resize", "error", err)
					}
				}
			case touch.Event:
				if e.Type == touch.TypeEnd {
					current = (current + 1) % len(names)
				}
			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				if g == nil {
					var err error
					g, err = game.New(mobile.New(glctx), game.Options{
						Width:    sz.WidthPx,
						Height:   sz.HeightPx,
						Title:    "glcanvas-mobile",
						FrameEnd: func() { a.Publish() },
						OnRender: func(c *glcanvas.Context) error {
							scene, err := demo.Lookup(names[current])
							if err != nil {
								return err
							} else if err := c.ClearRect(0.0, 0.0, float64(c.Width()), float64(c.Height())); err != nil {
								return err
							}
							return scene(c, time.Since(start).Seconds())
						},
					})
					if err != nil {
						glcanvas.Logger().Error("start", "error", err)
						continue
					}
				}
				if err := g.Frame(); err != nil {
					glcanvas.Logger().Error("frame", "scene", names[current], "error", err)
				}
				a.Send(paint.Event{})
			}
		}
	})
}
