package qr

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRenderProducesBothOutputs(t *testing.T) {
	r := NewRenderer(zap.NewNop())

	out, err := r.Render(context.Background(), "https://example.com/", 256, 4)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out.PNGDataURL, "data:image/png;base64,") {
		t.Fatalf("expected PNG data URL, got %q", out.PNGDataURL[:32])
	}
	if len(out.PNGDataURL) <= len("data:image/png;base64,") {
		t.Fatalf("expected non-empty PNG payload")
	}
	if !strings.HasPrefix(out.SVG, "<svg") || !strings.HasSuffix(out.SVG, "</svg>") {
		t.Fatalf("expected SVG document, got %q", out.SVG)
	}
	if !strings.Contains(out.SVG, "<path") {
		t.Fatalf("expected SVG to contain module path")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := NewRenderer(zap.NewNop()).Render(context.Background(), "https://example.com/", 256, 4)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := NewRenderer(zap.NewNop()).Render(context.Background(), "https://example.com/", 256, 4)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first.PNGDataURL != second.PNGDataURL {
		t.Fatalf("expected byte-identical PNG outputs")
	}
	if first.SVG != second.SVG {
		t.Fatalf("expected byte-identical SVG outputs")
	}
}

func TestRenderMemoizesByInput(t *testing.T) {
	r := NewRenderer(zap.NewNop())

	first, err := r.Render(context.Background(), "https://example.com/", 128, 4)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	cached, err := r.Render(context.Background(), "https://example.com/", 128, 4)
	if err != nil {
		t.Fatalf("cached render: %v", err)
	}
	if first.SVG != cached.SVG || first.PNGDataURL != cached.PNGDataURL {
		t.Fatalf("expected cached render to match original")
	}

	other, err := r.Render(context.Background(), "https://example.org/", 128, 4)
	if err != nil {
		t.Fatalf("render other: %v", err)
	}
	if other.SVG == first.SVG {
		t.Fatalf("expected different payloads to differ")
	}
}

func TestRenderFailsGenerically(t *testing.T) {
	r := NewRenderer(zap.NewNop())

	if _, err := r.Render(context.Background(), "", 256, 4); err != ErrRenderFailed {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
}

func TestClampSize(t *testing.T) {
	if got := ClampSize(0); got != DefaultSize {
		t.Fatalf("expected default size, got %d", got)
	}
	if got := ClampSize(8); got != MinSize {
		t.Fatalf("expected min size, got %d", got)
	}
	if got := ClampSize(9999); got != MaxSize {
		t.Fatalf("expected max size, got %d", got)
	}
}
