package model

import (
	"time"

	"github.com/getinmotion/telar-sub006/constant"
)

// Product belongs to exactly one shop. Its moderation status controls
// marketplace visibility and the shop's featured qualification.
type Product struct {
	ID               string                    `db:"id" json:"id"`
	ShopID           string                    `db:"shop_id" json:"shop_id"`
	Name             string                    `db:"name" json:"name"`
	Description      *string                   `db:"description" json:"description,omitempty"`
	Price            float64                   `db:"price" json:"price"`
	Category         *string                   `db:"category" json:"category,omitempty"`
	Craft            *string                   `db:"craft" json:"craft,omitempty"`
	Materials        StringList                `db:"materials" json:"materials"`
	Techniques       StringList                `db:"techniques" json:"techniques"`
	ImageURL         *string                   `db:"image_url" json:"image_url,omitempty"`
	FreeShipping     bool                      `db:"free_shipping" json:"free_shipping"`
	Rating           float64                   `db:"rating" json:"rating"`
	ModerationStatus constant.ModerationStatus `db:"moderation_status" json:"moderation_status"`
	ModerationNote   *string                   `db:"moderation_note" json:"moderation_note,omitempty"`
	CreatedAt        time.Time                 `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time                 `db:"updated_at" json:"updated_at"`
}

// UpdateModerationRequest is the moderation panel DTO.
type UpdateModerationRequest struct {
	Status constant.ModerationStatus `json:"status" validate:"required"`
	Note   *string                   `json:"note,omitempty"`
}
