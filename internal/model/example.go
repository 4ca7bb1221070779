package model

import (
	"time"

	"github.com/google/uuid"
)

// Example is the kitchen-sink demo record exercising uuid and temporal
// round-trips through the database layer.
type Example struct {
	UUID      uuid.UUID     `json:"uuid"`
	Integer   int64         `json:"integer"`
	Float     float64       `json:"float"`
	String    string        `json:"string"`
	Timestamp time.Time     `json:"timestamp"`
	Date      time.Time     `json:"date"`
	Elapsed   time.Duration `json:"elapsed"`
}

// CreateExampleRequest requires only the string field; everything else is
// defaulted server-side when absent.
type CreateExampleRequest struct {
	String    string         `json:"string"`
	Integer   *int64         `json:"integer,omitempty"`
	Float     *float64       `json:"float,omitempty"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
	Date      *time.Time     `json:"date,omitempty"`
	Elapsed   *time.Duration `json:"elapsed,omitempty"`
}
