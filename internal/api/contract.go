package api

type CreateEventRequest struct {
	OwnerID    string         `json:"owner_id"`
	DeviceID   string         `json:"device_id"`
	OccurredAt string         `json:"occurred_at"`
	EventType  string         `json:"event_type"`
	Payload    map[string]any `json:"payload"`
}

type PatchSettingsRequest struct {
	Settings map[string]any `json:"settings"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
