package model

import "github.com/getinmotion/telar-sub006/constant"

// CreateShopRequest is the create DTO. userId, shopName and shopSlug are
// mandatory; everything else takes the entity defaults when absent.
type CreateShopRequest struct {
	UserID                    string                              `json:"user_id" validate:"required,uuid4"`
	ShopName                  string                              `json:"shop_name" validate:"required,min=3,max=200"`
	ShopSlug                  string                              `json:"shop_slug" validate:"required,min=3,max=100,slug"`
	Description               *string                             `json:"description,omitempty"`
	Story                     *string                             `json:"story,omitempty"`
	LogoURL                   *string                             `json:"logo_url,omitempty"`
	BannerURL                 *string                             `json:"banner_url,omitempty"`
	CraftType                 *string                             `json:"craft_type,omitempty"`
	Region                    *string                             `json:"region,omitempty"`
	Department                *string                             `json:"department,omitempty"`
	Municipality              *string                             `json:"municipality,omitempty"`
	Certifications            StringList                          `json:"certifications,omitempty"`
	ContactInfo               *ContactInfo                        `json:"contact_info,omitempty"`
	SocialLinks               *SocialLinks                        `json:"social_links,omitempty"`
	SEOData                   *SEOData                            `json:"seo_data,omitempty"`
	Active                    *bool                               `json:"active,omitempty"`
	Featured                  *bool                               `json:"featured,omitempty"`
	ServientregaCoverage      *bool                               `json:"servientrega_coverage,omitempty"`
	PrivacyLevel              *constant.PrivacyLevel              `json:"privacy_level,omitempty" validate:"omitempty,oneof=public limited private"`
	CreationStatus            *constant.CreationStatus            `json:"creation_status,omitempty" validate:"omitempty,oneof=draft incomplete complete"`
	CreationStep              *int                                `json:"creation_step,omitempty" validate:"omitempty,gte=0"`
	PrimaryColors             StringList                          `json:"primary_colors,omitempty"`
	SecondaryColors           StringList                          `json:"secondary_colors,omitempty"`
	BrandClaim                *string                             `json:"brand_claim,omitempty"`
	HeroConfig                *HeroConfig                         `json:"hero_config,omitempty"`
	AboutContent              *AboutContent                       `json:"about_content,omitempty"`
	ContactConfig             *ContactConfig                      `json:"contact_config,omitempty"`
	ArtisanProfile            *ArtisanProfile                     `json:"artisan_profile,omitempty"`
	ArtisanProfileCompleted   *bool                               `json:"artisan_profile_completed,omitempty"`
	ActiveThemeID             *string                             `json:"active_theme_id,omitempty"`
	PublishStatus             *constant.PublishStatus             `json:"publish_status,omitempty" validate:"omitempty,oneof=pending_publish published"`
	BankDataStatus            *constant.BankDataStatus            `json:"bank_data_status,omitempty" validate:"omitempty,oneof=not_set complete"`
	MarketplaceApprovalStatus *constant.MarketplaceApprovalStatus `json:"marketplace_approval_status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

// UpdateShopRequest is the partial-update DTO. Only non-nil fields are applied.
type UpdateShopRequest struct {
	ShopName                  *string                             `json:"shop_name,omitempty" validate:"omitempty,min=3,max=200"`
	ShopSlug                  *string                             `json:"shop_slug,omitempty" validate:"omitempty,min=3,max=100,slug"`
	Description               *string                             `json:"description,omitempty"`
	Story                     *string                             `json:"story,omitempty"`
	LogoURL                   *string                             `json:"logo_url,omitempty"`
	BannerURL                 *string                             `json:"banner_url,omitempty"`
	CraftType                 *string                             `json:"craft_type,omitempty"`
	Region                    *string                             `json:"region,omitempty"`
	Department                *string                             `json:"department,omitempty"`
	Municipality              *string                             `json:"municipality,omitempty"`
	Certifications            StringList                          `json:"certifications,omitempty"`
	ContactInfo               *ContactInfo                        `json:"contact_info,omitempty"`
	SocialLinks               *SocialLinks                        `json:"social_links,omitempty"`
	SEOData                   *SEOData                            `json:"seo_data,omitempty"`
	Active                    *bool                               `json:"active,omitempty"`
	Featured                  *bool                               `json:"featured,omitempty"`
	ServientregaCoverage      *bool                               `json:"servientrega_coverage,omitempty"`
	PrivacyLevel              *constant.PrivacyLevel              `json:"privacy_level,omitempty" validate:"omitempty,oneof=public limited private"`
	CreationStatus            *constant.CreationStatus            `json:"creation_status,omitempty" validate:"omitempty,oneof=draft incomplete complete"`
	CreationStep              *int                                `json:"creation_step,omitempty" validate:"omitempty,gte=0"`
	PrimaryColors             StringList                          `json:"primary_colors,omitempty"`
	SecondaryColors           StringList                          `json:"secondary_colors,omitempty"`
	BrandClaim                *string                             `json:"brand_claim,omitempty"`
	HeroConfig                *HeroConfig                         `json:"hero_config,omitempty"`
	AboutContent              *AboutContent                       `json:"about_content,omitempty"`
	ContactConfig             *ContactConfig                      `json:"contact_config,omitempty"`
	ArtisanProfile            *ArtisanProfile                     `json:"artisan_profile,omitempty"`
	ArtisanProfileCompleted   *bool                               `json:"artisan_profile_completed,omitempty"`
	ActiveThemeID             *string                             `json:"active_theme_id,omitempty"`
	PublishStatus             *constant.PublishStatus             `json:"publish_status,omitempty" validate:"omitempty,oneof=pending_publish published"`
	MarketplaceApproved       *bool                               `json:"marketplace_approved,omitempty"`
	BankDataStatus            *constant.BankDataStatus            `json:"bank_data_status,omitempty" validate:"omitempty,oneof=not_set complete"`
	MarketplaceApprovalStatus *constant.MarketplaceApprovalStatus `json:"marketplace_approval_status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}

// ShopListQuery is the parsed query DTO for GET /artisan-shops.
type ShopListQuery struct {
	Page                int                     `validate:"gte=1"`
	Limit               int                     `validate:"gte=1,lte=100"`
	Active              *bool
	PublishStatus       *constant.PublishStatus `validate:"omitempty,oneof=pending_publish published"`
	MarketplaceApproved *bool
	Featured            *bool
	HasApprovedProducts *bool
	ShopSlug            string
	Region              string
	CraftType           string
	SortBy              string `validate:"omitempty,oneof=created_at shop_name"`
	Order               string `validate:"omitempty,oneof=ASC DESC"`
}
