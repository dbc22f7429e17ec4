package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityQueryRequest is bound from query parameters.
type ActivityQueryRequest struct {
	TargetType string `query:"target_type"`
	TargetId   string `query:"target_id"`
	Date       string `query:"date"` // YYYY-MM-DD
	UserId     string `query:"user_id"`
}

type ActivityLogResponse struct {
	Id         uuid.UUID              `json:"id"`
	UserId     *uuid.UUID             `json:"user_id,omitempty"`
	Username   string                 `json:"username"`
	Action     string                 `json:"action"`
	TargetType string                 `json:"target_type"`
	TargetId   *string                `json:"target_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type ActivityListResponse struct {
	Items []ActivityLogResponse `json:"items"`
	Total int64                 `json:"total"`
}
