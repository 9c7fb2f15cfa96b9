package models

import "time"

// SignalDirection is the side of a published trade call.
type SignalDirection string

const (
	DirectionLong  SignalDirection = "LONG"
	DirectionShort SignalDirection = "SHORT"
)

// SignalStatus tracks the lifecycle of a signal. A signal is created ACTIVE
// and transitions exactly once to one of the resolved statuses.
type SignalStatus string

const (
	StatusActive    SignalStatus = "ACTIVE"
	StatusHitTP     SignalStatus = "HIT_TP"
	StatusHitSL     SignalStatus = "HIT_SL"
	StatusBreakEven SignalStatus = "BREAK_EVEN"
	StatusClosed    SignalStatus = "CLOSED"
)

// IsResolved reports whether the status represents a finished trade.
// Unknown values are neither active nor resolved.
func (s SignalStatus) IsResolved() bool {
	switch s {
	case StatusHitTP, StatusHitSL, StatusBreakEven, StatusClosed:
		return true
	default:
		return false
	}
}

// Image is an in-memory encoded image attachment (data URI payload captured
// at upload time). Optional fields carry *Image so that presence and absence
// stay distinguishable.
type Image struct {
	MimeType string `json:"mime_type"`
	DataURI  string `json:"data_uri"`
}

// Signal is a published trade recommendation. Apart from Status and
// ResultImage (set once on resolution), all fields are immutable after
// creation.
type Signal struct {
	ID          string          `json:"id"`
	Asset       string          `json:"asset"`
	Direction   SignalDirection `json:"direction"`
	EntryPrice  float64         `json:"entry_price"`
	StopLoss    float64         `json:"stop_loss"`
	TakeProfit1 float64         `json:"take_profit_1"`
	TakeProfit2 float64         `json:"take_profit_2"`
	TakeProfit3 *float64        `json:"take_profit_3,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      SignalStatus    `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	AuthorName  string          `json:"author_name"`
	SetupImage  *Image          `json:"setup_image,omitempty"`
	ResultImage *Image          `json:"result_image,omitempty"`
}

// SignalDraft carries the user-entered fields of a new signal. The store
// validates a draft before anything is inserted.
type SignalDraft struct {
	Asset       string          `json:"asset" validate:"required"`
	Direction   SignalDirection `json:"direction" validate:"required,oneof=LONG SHORT"`
	EntryPrice  float64         `json:"entry_price" validate:"required"`
	StopLoss    float64         `json:"stop_loss" validate:"required"`
	TakeProfit1 float64         `json:"take_profit_1" validate:"required"`
	TakeProfit2 float64         `json:"take_profit_2"`
	TakeProfit3 *float64        `json:"take_profit_3,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	SetupImage  *Image          `json:"setup_image,omitempty"`
}
