package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mannyyy07/quickqr/internal/config"
	eventdomain "github.com/mannyyy07/quickqr/internal/event/domain"
)

func postTrack(engine http.Handler, body string, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:54321"
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestTrackStoresEvent(t *testing.T) {
	db := setupServerTestDB(t, "track_stores")
	_, engine := newTestServer(t, db, config.Config{})

	w := postTrack(engine,
		`{"kind":"qr_generated","sessionId":"abc123","payload":{"destinationUrl":"https://example.com/"}}`,
		"203.0.113.50, 10.0.0.1")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Stored bool `json:"stored"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Stored {
		t.Fatalf("expected stored=true")
	}

	var stored eventdomain.UsageEvent
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load row: %v", err)
	}
	if stored.Kind != eventdomain.KindQRGenerated || stored.SessionID != "abc123" {
		t.Fatalf("unexpected row %+v", stored)
	}
	if stored.IPHash != eventdomain.HashAddress("203.0.113.50") {
		t.Fatalf("expected first forwarded address to be hashed")
	}
	if got := stored.DestinationURL(); got != "https://example.com/" {
		t.Fatalf("expected payload to round-trip, got %q", got)
	}
}

func TestTrackRejectsMissingKind(t *testing.T) {
	db := setupServerTestDB(t, "track_no_kind")
	_, engine := newTestServer(t, db, config.Config{})

	w := postTrack(engine, `{"sessionId":"abc123"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var count int64
	if err := db.Model(&eventdomain.UsageEvent{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestTrackRejectsMissingSession(t *testing.T) {
	db := setupServerTestDB(t, "track_no_session")
	_, engine := newTestServer(t, db, config.Config{})

	w := postTrack(engine, `{"kind":"page_visit"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTrackRejectsUnknownKind(t *testing.T) {
	db := setupServerTestDB(t, "track_bad_kind")
	_, engine := newTestServer(t, db, config.Config{})

	w := postTrack(engine, `{"kind":"qr_printed","sessionId":"abc123"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTrackWithoutStoreReportsNotStored(t *testing.T) {
	_, engine := newTestServer(t, nil, config.Config{})

	w := postTrack(engine, `{"kind":"page_visit","sessionId":"abc123"}`, "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}

	var resp struct {
		Stored bool `json:"stored"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Stored {
		t.Fatalf("expected stored=false without a store")
	}
}

func TestTrackRateLimitsPerAddress(t *testing.T) {
	db := setupServerTestDB(t, "track_rate_limit")
	_, engine := newTestServer(t, db, config.Config{
		Track: config.TrackConfig{RateLimit: 1, RateWindow: time.Minute},
	})

	first := postTrack(engine, `{"kind":"page_visit","sessionId":"abc123"}`, "203.0.113.80")
	if first.Code != http.StatusCreated {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}
	second := postTrack(engine, `{"kind":"page_visit","sessionId":"abc123"}`, "203.0.113.80")
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
	// A different caller address still gets through.
	other := postTrack(engine, `{"kind":"page_visit","sessionId":"abc123"}`, "203.0.113.81")
	if other.Code != http.StatusCreated {
		t.Fatalf("expected other address to pass, got %d", other.Code)
	}
}
