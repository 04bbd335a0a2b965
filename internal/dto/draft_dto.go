package dto

import (
	"encoding/json"
	"time"
)

// DraftSaveRequest carries the builder state as opaque JSON.
type DraftSaveRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required" swaggertype:"object"`
}

type DraftDTO struct {
	Owner     string          `json:"owner"`
	Key       string          `json:"key"`
	Version   string          `json:"version"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
	UpdatedAt time.Time       `json:"updated_at"`
}
