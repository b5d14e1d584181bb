package network

import (
	"encoding/json"

	"github.com/gravitas-games/pipeworks/pkg/models"
)

// Message types - Client → Server
const (
	MsgTypeJoin  = "join"
	MsgTypeLeave = "leave"
	MsgTypePing  = "ping"
)

// Message types - Server → Client
const (
	MsgTypeWelcome = "welcome"
	MsgTypeSegment = "segment"
	MsgTypeStatus  = "status"
	MsgTypeError   = "error"
	MsgTypePong    = "pong"
)

// ClientMessage represents any message from client to server
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents any message from server to client
type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// --- Client Message Payloads ---

// JoinPayload is sent by a renderer to subscribe to the growth stream.
// Currently empty; joining carries no options.
type JoinPayload struct{}

// --- Server Message Payloads ---

// WelcomePayload carries the full world snapshot a renderer needs to
// catch up: the grid extents plus both instance streams in generation
// order. Everything after it arrives as SegmentPayload messages.
type WelcomePayload struct {
	ClientID string            `json:"client_id"`
	Bounds   [3]uint32         `json:"bounds"`
	Straight []models.Instance `json:"straight"`
	Elbow    []models.Instance `json:"elbow"`
	Status   StatusPayload     `json:"status"`
}

// SegmentPayload announces one newly placed segment
type SegmentPayload struct {
	Pipe     string          `json:"pipe"` // "straight" or "elbow"
	Step     string          `json:"step"` // decision branch, e.g. "continue"
	Instance models.Instance `json:"instance"`
}

// StatusPayload summarizes generation progress
type StatusPayload struct {
	StraightCount int    `json:"straight_count"`
	ElbowCount    int    `json:"elbow_count"`
	OccupiedCells int    `json:"occupied_cells"`
	TotalCells    uint64 `json:"total_cells"`
	Done          bool   `json:"done"` // growth finished (limit reached or grid saturated)
	Viewers       int    `json:"viewers"`
	Uptime        int64  `json:"uptime"` // seconds
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PongPayload answers a ping
type PongPayload struct {
	Timestamp int64 `json:"timestamp"` // Unix timestamp
}
