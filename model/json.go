package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON decodes a JSON column into dest, tolerating NULL and empty values.
func scanJSON(dest interface{}, src interface{}) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dest)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dest)
	}
	return fmt.Errorf("unsupported source type %T for JSON column", src)
}

// StringList is a JSON array column of strings (certifications, brand colors,
// product materials and techniques).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(l, src)
}

// ContactInfo is the shop's structured contact block.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

func (c ContactInfo) Value() (driver.Value, error) { return json.Marshal(c) }
func (c *ContactInfo) Scan(src interface{}) error  { return scanJSON(c, src) }

// SocialLinks holds the shop's social network handles.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Tiktok    string `json:"tiktok,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

func (s SocialLinks) Value() (driver.Value, error) { return json.Marshal(s) }
func (s *SocialLinks) Scan(src interface{}) error  { return scanJSON(s, src) }

// SEOData is the shop's search metadata.
type SEOData struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

func (s SEOData) Value() (driver.Value, error) { return json.Marshal(s) }
func (s *SEOData) Scan(src interface{}) error  { return scanJSON(s, src) }

type HeroSlide struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	CTALabel string `json:"cta_label,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
}

// HeroConfig drives the storefront hero carousel.
type HeroConfig struct {
	Slides   []HeroSlide `json:"slides"`
	Autoplay bool        `json:"autoplay"`
	Duration int         `json:"duration"`
}

func (h HeroConfig) Value() (driver.Value, error) { return json.Marshal(h) }
func (h *HeroConfig) Scan(src interface{}) error  { return scanJSON(h, src) }

// AboutContent is the storefront "about" section.
type AboutContent struct {
	Title   string   `json:"title,omitempty"`
	Story   string   `json:"story,omitempty"`
	Mission string   `json:"mission,omitempty"`
	Vision  string   `json:"vision,omitempty"`
	Values  []string `json:"values,omitempty"`
}

func (a AboutContent) Value() (driver.Value, error) { return json.Marshal(a) }
func (a *AboutContent) Scan(src interface{}) error  { return scanJSON(a, src) }

// ContactConfig is the storefront contact page configuration.
type ContactConfig struct {
	Email    string `json:"email,omitempty"`
	Hours    string `json:"hours,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	MapEmbed string `json:"map_embed,omitempty"`
}

func (c ContactConfig) Value() (driver.Value, error) { return json.Marshal(c) }
func (c *ContactConfig) Scan(src interface{}) error  { return scanJSON(c, src) }

// ArtisanProfile is the artisan's public profile attached to the shop.
type ArtisanProfile struct {
	DisplayName string   `json:"display_name,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`
	Crafts      []string `json:"crafts,omitempty"`
}

func (a ArtisanProfile) Value() (driver.Value, error) { return json.Marshal(a) }
func (a *ArtisanProfile) Scan(src interface{}) error  { return scanJSON(a, src) }
