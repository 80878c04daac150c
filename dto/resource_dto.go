package dto

import "encoding/json"

type CreateResourceInput struct {
	Name          string          `json:"name" binding:"required"`
	Type          string          `json:"type" binding:"required"`
	Details       json.RawMessage `json:"details"`
	Description   string          `json:"description"`
	HourlyRate    float64         `json:"hourly_rate" binding:"required"`
	Status        *string         `json:"status"`
	PublishStatus *string         `json:"publish_status"`
}

// UpdateResourceInput is the whitelist of mutable resource fields. Fields
// left nil are not touched by the merge.
type UpdateResourceInput struct {
	Name          *string          `json:"name"`
	Type          *string          `json:"type"`
	Details       *json.RawMessage `json:"details"`
	Description   *string          `json:"description"`
	HourlyRate    *float64         `json:"hourly_rate"`
	Status        *string          `json:"status"`
	PublishStatus *string          `json:"publish_status"`
}
