package model

import (
	"time"

	"github.com/getinmotion/telar-sub006/constant"
)

// ShopOwner is the joined owner projection attached to shop responses.
type ShopOwner struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// BrandTheme is the shop's active visual theme.
type BrandTheme struct {
	ThemeID string     `db:"theme_id" json:"theme_id"`
	Name    string     `db:"name" json:"name"`
	Palette StringList `db:"palette" json:"palette"`
}

// Shop represents one artisan's storefront.
type Shop struct {
	ID                        string                             `db:"id" json:"id"`
	UserID                    string                             `db:"user_id" json:"user_id"`
	ShopName                  string                             `db:"shop_name" json:"shop_name"`
	ShopSlug                  string                             `db:"shop_slug" json:"shop_slug"`
	Description               *string                            `db:"description" json:"description,omitempty"`
	Story                     *string                            `db:"story" json:"story,omitempty"`
	LogoURL                   *string                            `db:"logo_url" json:"logo_url,omitempty"`
	BannerURL                 *string                            `db:"banner_url" json:"banner_url,omitempty"`
	CraftType                 *string                            `db:"craft_type" json:"craft_type,omitempty"`
	Region                    *string                            `db:"region" json:"region,omitempty"`
	Department                *string                            `db:"department" json:"department,omitempty"`
	Municipality              *string                            `db:"municipality" json:"municipality,omitempty"`
	Certifications            StringList                         `db:"certifications" json:"certifications"`
	ContactInfo               ContactInfo                        `db:"contact_info" json:"contact_info"`
	SocialLinks               SocialLinks                        `db:"social_links" json:"social_links"`
	SEOData                   SEOData                            `db:"seo_data" json:"seo_data"`
	Active                    bool                               `db:"active" json:"active"`
	Featured                  bool                               `db:"featured" json:"featured"`
	ServientregaCoverage      bool                               `db:"servientrega_coverage" json:"servientrega_coverage"`
	PrivacyLevel              constant.PrivacyLevel              `db:"privacy_level" json:"privacy_level"`
	CreationStatus            constant.CreationStatus            `db:"creation_status" json:"creation_status"`
	CreationStep              int                                `db:"creation_step" json:"creation_step"`
	PrimaryColors             StringList                         `db:"primary_colors" json:"primary_colors"`
	SecondaryColors           StringList                         `db:"secondary_colors" json:"secondary_colors"`
	BrandClaim                *string                            `db:"brand_claim" json:"brand_claim,omitempty"`
	HeroConfig                HeroConfig                         `db:"hero_config" json:"hero_config"`
	AboutContent              AboutContent                       `db:"about_content" json:"about_content"`
	ContactConfig             ContactConfig                      `db:"contact_config" json:"contact_config"`
	ArtisanProfile            *ArtisanProfile                    `db:"artisan_profile" json:"artisan_profile,omitempty"`
	ArtisanProfileCompleted   bool                               `db:"artisan_profile_completed" json:"artisan_profile_completed"`
	ActiveThemeID             *string                            `db:"active_theme_id" json:"active_theme_id,omitempty"`
	PublishStatus             constant.PublishStatus             `db:"publish_status" json:"publish_status"`
	MarketplaceApproved       bool                               `db:"marketplace_approved" json:"marketplace_approved"`
	MarketplaceApprovedAt     *time.Time                         `db:"marketplace_approved_at" json:"marketplace_approved_at,omitempty"`
	MarketplaceApprovedBy     *string                            `db:"marketplace_approved_by" json:"marketplace_approved_by,omitempty"`
	MarketplaceApprovalStatus constant.MarketplaceApprovalStatus `db:"marketplace_approval_status" json:"marketplace_approval_status"`
	BankDataStatus            constant.BankDataStatus            `db:"bank_data_status" json:"bank_data_status"`
	CreatedAt                 time.Time                          `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time                          `db:"updated_at" json:"updated_at"`

	User        *ShopOwner  `db:"-" json:"user,omitempty"`
	ActiveTheme *BrandTheme `db:"-" json:"active_theme,omitempty"`
}

// ShopFilter holds the optional list predicates, combined with AND when present.
type ShopFilter struct {
	Active                  *bool
	PublishStatus           *constant.PublishStatus
	MarketplaceApproved     *bool
	Featured                *bool
	HasApprovedProducts     bool
	ShopSlug                string
	Region                  string
	CraftType               string
	ArtisanProfileCompleted *bool
}

type ShopSort struct {
	SortBy string // created_at | shop_name
	Order  string // ASC | DESC
}

type ShopPage struct {
	Page  int
	Limit int
}

type ShopListResponse struct {
	Data  []Shop `json:"data"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type DeleteShopResponse struct {
	Message string `json:"message"`
}
