package models

import "time"

// TradeIdea is a mentor-posted piece of market commentary. Ideas are
// deletable and like-able but otherwise immutable; Description may contain
// line breaks that are meaningful for display.
type TradeIdea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *Image    `json:"image,omitempty"`
	AuthorName  string    `json:"author_name"`
	CreatedAt   time.Time `json:"created_at"`
	LikeCount   int       `json:"like_count"`
}

// IdeaDraft carries the user-entered fields of a new trade idea.
type IdeaDraft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       *Image `json:"image,omitempty"`
}
