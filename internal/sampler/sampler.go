// Package sampler polls a pixel source on a fixed cadence and reports
// color changes until its context is cancelled.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/kbinani/screenshot"
	"github.com/zarlcorp/zfake/internal/color"
)

// DefaultInterval is the sampling cadence when none is configured.
const DefaultInterval = 50 * time.Millisecond

// ErrInvalidArgument is returned for a non-positive interval.
var ErrInvalidArgument = errors.New("invalid argument")

// Source reads one color.
type Source interface {
	Sample(ctx context.Context) (color.RGB, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (color.RGB, error)

// Sample calls f.
func (f SourceFunc) Sample(ctx context.Context) (color.RGB, error) {
	return f(ctx)
}

// ScreenSource reads the pixel at a fixed screen coordinate.
type ScreenSource struct {
	X, Y int
}

// Sample captures a 1x1 rectangle at (X, Y).
func (s ScreenSource) Sample(_ context.Context) (color.RGB, error) {
	img, err := screenshot.CaptureRect(image.Rect(s.X, s.Y, s.X+1, s.Y+1))
	if err != nil {
		return color.RGB{}, fmt.Errorf("capture %d,%d: %w", s.X, s.Y, err)
	}

	r, g, b, _ := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
	return color.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, nil
}

// Reading is one sampling result delivered to the callback.
type Reading struct {
	Color color.RGB
	Err   error
	At    time.Time
}

// Run samples src every interval and calls fn whenever the color changes
// or sampling fails. The first successful sample is always reported.
// Run blocks until ctx is done and returns ctx.Err().
func Run(ctx context.Context, src Source, interval time.Duration, fn func(Reading)) error {
	if interval <= 0 {
		return fmt.Errorf("sample interval %s: %w", interval, ErrInvalidArgument)
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	var (
		last    color.RGB
		haveAny bool
	)

	sample := func() {
		c, err := src.Sample(ctx)
		now := time.Now()
		if err != nil {
			fn(Reading{Err: err, At: now})
			haveAny = false
			return
		}
		if haveAny && c == last {
			return
		}
		last, haveAny = c, true
		fn(Reading{Color: c, At: now})
	}

	sample()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			sample()
		}
	}
}
