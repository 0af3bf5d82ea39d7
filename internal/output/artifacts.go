package output

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	billy "gopkg.in/src-d/go-billy.v4"

	"cratersim/internal/sims/craters"
)

// CopyKeyFrames copies each key frame into dir as key_<percent>.png and
// returns the copies in order. Key frames without an artifact are skipped.
func CopyKeyFrames(fs billy.Filesystem, dir string, keys []craters.KeyFrame) ([]string, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create key frame dir %s: %w", dir, err)
	}
	var copies []string
	for _, k := range keys {
		if k.Artifact == "" {
			continue
		}
		name := fs.Join(dir, fmt.Sprintf("key_%d.png", k.Percent))
		if err := copyFile(fs, k.Artifact, name); err != nil {
			return copies, fmt.Errorf("copy key frame %d%%: %w", k.Percent, err)
		}
		copies = append(copies, name)
	}
	return copies, nil
}

func copyFile(fs billy.Filesystem, from, to string) error {
	src, err := fs.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := fs.Create(to)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// RemoveFrames deletes intermediate frame files. Missing files are ignored.
func RemoveFrames(fs billy.Filesystem, frames []string) error {
	var errs []error
	for _, name := range frames {
		if err := fs.Remove(name); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subsample keeps at most limit frames, evenly spaced, always including the
// last one.
func Subsample(frames []string, limit int) []string {
	if limit <= 0 || len(frames) <= limit {
		return frames
	}
	out := make([]string, 0, limit)
	stride := float64(len(frames)-1) / float64(limit-1)
	for i := 0; i < limit; i++ {
		out = append(out, frames[int(math.Round(float64(i)*stride))])
	}
	return out
}

// AssembleGIF encodes frames into an animated GIF at frameRate frames per
// second.
func AssembleGIF(fs billy.Filesystem, frames []string, out string, frameRate float64) error {
	if len(frames) == 0 {
		return errors.New("assemble animation: no frames")
	}
	delay := 10
	if frameRate > 0 {
		delay = max(1, int(math.Round(100/frameRate)))
	}
	anim := &gif.GIF{}
	for _, name := range frames {
		img, err := decodePNG(fs, name)
		if err != nil {
			return fmt.Errorf("assemble animation: %s: %w", name, err)
		}
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, img.Bounds(), img, img.Bounds().Min)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	file, err := fs.Create(out)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(file, anim); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func decodePNG(fs billy.Filesystem, name string) (image.Image, error) {
	file, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}
