package qr

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/mannyyy07/quickqr/internal/cache"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Rendering bounds. Size is the raster edge in pixels; margin selects the
// quiet zone (0 disables it, anything positive keeps the encoder's default).
const (
	DefaultSize   = 256
	MinSize       = 64
	MaxSize       = 1024
	DefaultMargin = 4
	MaxMargin     = 8
)

const renderCacheTTL = 10 * time.Minute

// ErrRenderFailed is the generic rendering failure. Encoder details are
// logged, never surfaced.
var ErrRenderFailed = errors.New("qr_render_failed")

// Render holds both encodings of one payload.
type Render struct {
	PNGDataURL string `json:"png_data_url"`
	SVG        string `json:"svg"`
}

type renderKey struct {
	url    string
	size   int
	margin int
}

// Renderer produces raster and vector QR codes. Outputs are deterministic for
// identical inputs, so completed renders are memoized.
type Renderer struct {
	log   *zap.Logger
	cache *cache.TTLCache[renderKey, Render]
}

func NewRenderer(log *zap.Logger) *Renderer {
	return &Renderer{
		log:   log.Named("qr.renderer"),
		cache: cache.New[renderKey, Render](),
	}
}

// Render encodes target into a PNG data URL and an SVG document carrying the
// same payload. Both outputs are produced in parallel; on any failure no
// partial result is returned.
func (r *Renderer) Render(ctx context.Context, target string, size, margin int) (Render, error) {
	size = ClampSize(size)
	margin = ClampMargin(margin)

	key := renderKey{url: target, size: size, margin: margin}
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	code, err := qrcode.New(target, qrcode.Medium)
	if err != nil {
		r.log.Error("encode payload", zap.Error(err))
		return Render{}, ErrRenderFailed
	}
	code.DisableBorder = margin == 0
	bitmap := code.Bitmap()

	var out Render
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := code.PNG(size)
		if err != nil {
			return err
		}
		out.PNGDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
		return nil
	})
	g.Go(func() error {
		out.SVG = renderSVG(bitmap, size)
		return nil
	})
	if err := g.Wait(); err != nil {
		r.log.Error("render outputs", zap.Error(err))
		return Render{}, ErrRenderFailed
	}

	r.cache.Set(key, out, renderCacheTTL)
	return out, nil
}

// ClampSize bounds the raster size, defaulting when unset.
func ClampSize(size int) int {
	if size == 0 {
		return DefaultSize
	}
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// ClampMargin bounds the quiet-zone selector, defaulting negatives.
func ClampMargin(margin int) int {
	if margin < 0 {
		return DefaultMargin
	}
	if margin > MaxMargin {
		return MaxMargin
	}
	return margin
}
