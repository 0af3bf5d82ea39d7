// Package output persists the artifacts of a cratering run: per-step frame
// images, representative key frames, an animation and a crater catalog.
package output

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	billy "gopkg.in/src-d/go-billy.v4"

	"cratersim/internal/render"
	"cratersim/internal/sims/craters"
)

// RenderFunc turns a frame into an image.
type RenderFunc func(craters.Frame) image.Image

// FigureRenderer renders the full 2x2 figure.
func FigureRenderer(fig *render.Figure) RenderFunc {
	return func(f craters.Frame) image.Image { return fig.Render(f) }
}

// TerrainRenderer renders only the terrain grid.
func TerrainRenderer(f craters.Frame) image.Image { return render.TerrainImage(f.Grid) }

// Options configures a Writer.
type Options struct {
	Dir     string
	Workers int
	Render  RenderFunc
	Logger  *log.Logger
}

// Writer is a craters.FrameSink that encodes frames as PNG files named
// <dir>/<step>.png. Encoding runs on a bounded pool; frames are already
// snapshots so the simulation loop never waits on it unless the pool is full.
type Writer struct {
	fs     billy.Filesystem
	dir    string
	render RenderFunc
	logger *log.Logger

	ctx   context.Context
	group *errgroup.Group
}

// NewWriter prepares the frame directory.
func NewWriter(fs billy.Filesystem, opts Options) (*Writer, error) {
	if opts.Dir == "" {
		opts.Dir = "images"
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Render == nil {
		opts.Render = TerrainRenderer
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if err := fs.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame dir %s: %w", opts.Dir, err)
	}
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(opts.Workers)
	return &Writer{
		fs:     fs,
		dir:    opts.Dir,
		render: opts.Render,
		logger: opts.Logger,
		ctx:    ctx,
		group:  group,
	}, nil
}

// Emit schedules f for encoding and returns the file it will be written to.
// It fails once any earlier frame failed.
func (w *Writer) Emit(f craters.Frame) (string, error) {
	if w.ctx.Err() != nil {
		return "", w.group.Wait()
	}
	name := w.fs.Join(w.dir, strconv.Itoa(f.Step)+".png")
	w.group.Go(func() error {
		if err := w.writeFrame(name, f); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		w.logger.Debug("frame written", "file", name)
		return nil
	})
	return name, nil
}

// Close waits for pending frames and returns the first encoding error.
func (w *Writer) Close() error {
	return w.group.Wait()
}

func (w *Writer) writeFrame(name string, f craters.Frame) error {
	img := w.render(f)
	file, err := w.fs.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
