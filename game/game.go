// Package game bootstraps a drawing context on a GL context and drives it frame by frame. Each frame
// calls the render callback and then ends the GPU frame.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tdewolff/glcanvas"
	"github.com/tdewolff/glcanvas/gles"
)

// ErrNoSize is returned when no size is given and the GL context cannot report its drawing buffer size.
var ErrNoSize = errors.New("unknown drawing buffer size")

// Options configures a Game.
type Options struct {
	// Width and Height of the canvas, zero takes the size of the drawing buffer.
	Width, Height int
	Title         string

	// PreventLoop makes Run return immediately, frames are then driven by calling Frame.
	PreventLoop bool

	// OnRender is called every frame before the frame ends. Returning an error stops Run.
	OnRender func(*glcanvas.Context) error

	// FrameEnd ends the GPU frame, such as swapping buffers or publishing the frame. By default the
	// GL context is flushed.
	FrameEnd func()

	Config *glcanvas.Config
}

type sizer interface {
	Size() (int, int)
}

// Game owns a drawing context and counts its frames.
type Game struct {
	ctx    *glcanvas.Context
	opts   Options
	frames int
}

// New creates the drawing context on gl.
func New(gl gles.GL, opts Options) (*Game, error) {
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		s, ok := gl.(sizer)
		if !ok {
			return nil, ErrNoSize
		}
		w, h := s.Size()
		if width == 0 {
			width = w
		}
		if height == 0 {
			height = h
		}
	}
	if opts.Title == "" {
		opts.Title = "glcanvas"
	}

	var canvasOpts []glcanvas.Option
	if opts.Config != nil {
		canvasOpts = append(canvasOpts, glcanvas.WithConfig(*opts.Config))
	}
	if opts.FrameEnd != nil {
		canvasOpts = append(canvasOpts, glcanvas.WithFrameEnd(opts.FrameEnd))
	}
	ctx, err := glcanvas.New(gl, width, height, canvasOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Title, err)
	}
	return &Game{
		ctx:  ctx,
		opts: opts,
	}, nil
}

// Context returns the drawing context.
func (g *Game) Context() *glcanvas.Context {
	return g.ctx
}

// Title returns the title of the game.
func (g *Game) Title() string {
	return g.opts.Title
}

// Frames returns the number of frames rendered.
func (g *Game) Frames() int {
	return g.frames
}

// Frame renders a single frame and ends it.
func (g *Game) Frame() error {
	if g.opts.OnRender != nil {
		if err := g.opts.OnRender(g.ctx); err != nil {
			return err
		}
	}
	g.ctx.Flush()
	g.frames++
	return nil
}

// Run renders a frame every interval until ctx is done or a frame fails. Frames are rendered on the
// calling goroutine, which must own the GL context. It returns nil when ctx is cancelled.
func (g *Game) Run(ctx context.Context, interval time.Duration) error {
	if g.opts.PreventLoop {
		return nil
	} else if interval <= 0 {
		return fmt.Errorf("frame interval %v must be positive", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for ctx.Err() == nil {
		if err := g.Frame(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	glcanvas.Logger().Debug("frame loop stopped", "title", g.opts.Title, "frames", g.frames)
	return nil
}

// Close releases the GL resources of the drawing context.
func (g *Game) Close() {
	g.ctx.Close()
}
