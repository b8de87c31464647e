package domain

// Payload is the tagged union of per-kind event payloads. Each variant
// declares its own optional fields and flattens to the open map stored in
// the jsonb column.
type Payload interface {
	ToMap() map[string]any
}

// VisitPayload accompanies page_visit events.
type VisitPayload struct {
	Path  string `json:"path,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// ToMap converts the payload into a storage-friendly map.
func (p VisitPayload) ToMap() map[string]any {
	payload := map[string]any{}
	if p.Path != "" {
		payload["path"] = p.Path
	}
	if p.Theme != "" {
		payload["theme"] = p.Theme
	}
	return payload
}

// GeneratedPayload accompanies qr_generated events.
type GeneratedPayload struct {
	DestinationURL string `json:"destinationUrl,omitempty"`
	Purpose        string `json:"purpose,omitempty"`
	Size           int    `json:"size,omitempty"`
	Margin         int    `json:"margin,omitempty"`
}

// ToMap converts the payload into a storage-friendly map.
func (p GeneratedPayload) ToMap() map[string]any {
	payload := map[string]any{}
	if p.DestinationURL != "" {
		payload["destinationUrl"] = p.DestinationURL
	}
	if p.Purpose != "" {
		payload["purpose"] = p.Purpose
	}
	if p.Size > 0 {
		payload["size"] = p.Size
	}
	if p.Margin > 0 {
		payload["margin"] = p.Margin
	}
	return payload
}

// DownloadPayload accompanies qr_downloaded events.
type DownloadPayload struct {
	DestinationURL string `json:"destinationUrl,omitempty"`
	Format         string `json:"format,omitempty"`
}

// ToMap converts the payload into a storage-friendly map.
func (p DownloadPayload) ToMap() map[string]any {
	payload := map[string]any{}
	if p.DestinationURL != "" {
		payload["destinationUrl"] = p.DestinationURL
	}
	if p.Format != "" {
		payload["format"] = p.Format
	}
	return payload
}
