package logger

import (
	"net/http"
	"testing"
)

func TestMaskAuthorization(t *testing.T) {
	got := MaskAuthorization("Bearer abcdef1234")
	want := "Bearer ****1234"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMaskCookie(t *testing.T) {
	got := MaskCookie("session=abcdef1234; other=xyz")
	want := "session=****1234; other=****xyz"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer abcdef1234")
	headers.Set("Cookie", "session=abcdef1234")
	headers.Set("User-Agent", "test-agent")

	masked := MaskHeaders(headers)
	if masked["Authorization"] != "Bearer ****1234" {
		t.Fatalf("expected masked authorization, got %q", masked["Authorization"])
	}
	if masked["Cookie"] != "session=****1234" {
		t.Fatalf("expected masked cookie, got %q", masked["Cookie"])
	}
	if masked["User-Agent"] != "test-agent" {
		t.Fatalf("expected user agent untouched, got %q", masked["User-Agent"])
	}
}
