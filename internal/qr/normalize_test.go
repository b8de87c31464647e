package qr

import "testing"

func TestNormalizeURLPrependsScheme(t *testing.T) {
	got, ok := NormalizeURL("example.com")
	if !ok {
		t.Fatalf("expected normalization to succeed")
	}
	if got != "https://example.com/" {
		t.Fatalf("expected https://example.com/, got %q", got)
	}
}

func TestNormalizeURLKeepsExplicitHTTP(t *testing.T) {
	got, ok := NormalizeURL("http://example.com/path?q=1")
	if !ok {
		t.Fatalf("expected normalization to succeed")
	}
	if got != "http://example.com/path?q=1" {
		t.Fatalf("unexpected normalized url %q", got)
	}
}

func TestNormalizeURLTrimsWhitespace(t *testing.T) {
	got, ok := NormalizeURL("  example.com  ")
	if !ok {
		t.Fatalf("expected normalization to succeed")
	}
	if got != "https://example.com/" {
		t.Fatalf("unexpected normalized url %q", got)
	}
}

func TestNormalizeURLRejectsDisallowedSchemes(t *testing.T) {
	for _, input := range []string{
		"javascript:alert(1)",
		"file:///etc/passwd",
		"ftp://example.com/file",
		"data:text/html,hello",
	} {
		if got, ok := NormalizeURL(input); ok {
			t.Fatalf("expected %q to be rejected, got %q", input, got)
		}
	}
}

func TestNormalizeURLRejectsEmpty(t *testing.T) {
	if _, ok := NormalizeURL("   "); ok {
		t.Fatalf("expected empty input to be rejected")
	}
}

func TestNormalizeURLRejectsMissingHost(t *testing.T) {
	if _, ok := NormalizeURL("https:///path-only"); ok {
		t.Fatalf("expected host-less input to be rejected")
	}
}
