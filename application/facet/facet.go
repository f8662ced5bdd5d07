// Package facet holds the marketplace filter state as a pure reducer over an
// already-fetched product list: no storage, no HTTP, just (state, action) →
// state plus facet count derivation.
package facet

import (
	"github.com/getinmotion/telar-sub006/model"
)

// FilterState is the full filter selection of the marketplace sidebar.
type FilterState struct {
	PriceMin     float64  `json:"price_min"`
	PriceMax     float64  `json:"price_max"` // 0 means unbounded
	Categories   []string `json:"categories"`
	Crafts       []string `json:"crafts"`
	Materials    []string `json:"materials"`
	Techniques   []string `json:"techniques"`
	MinRating    float64  `json:"min_rating"` // 0 means no minimum
	FreeShipping bool     `json:"free_shipping"`
}

type ActionKind int

const (
	ToggleCategory ActionKind = iota
	ToggleCraft
	ToggleMaterial
	ToggleTechnique
	SetPriceRange
	SetMinRating
	SetFreeShipping
	ClearAll
)

type Action struct {
	Kind   ActionKind
	Value  string  // toggle target
	Min    float64 // SetPriceRange
	Max    float64 // SetPriceRange
	Rating float64 // SetMinRating
	On     bool    // SetFreeShipping
}

// Reduce returns the next state. The input state is never mutated; toggling a
// value twice restores the original selection.
func Reduce(state FilterState, action Action) FilterState {
	switch action.Kind {
	case ToggleCategory:
		state.Categories = toggle(state.Categories, action.Value)
	case ToggleCraft:
		state.Crafts = toggle(state.Crafts, action.Value)
	case ToggleMaterial:
		state.Materials = toggle(state.Materials, action.Value)
	case ToggleTechnique:
		state.Techniques = toggle(state.Techniques, action.Value)
	case SetPriceRange:
		state.PriceMin = action.Min
		state.PriceMax = action.Max
	case SetMinRating:
		state.MinRating = action.Rating
	case SetFreeShipping:
		state.FreeShipping = action.On
	case ClearAll:
		state = FilterState{}
	}
	return state
}

// toggle returns a fresh slice with value added or removed.
func toggle(values []string, value string) []string {
	out := make([]string, 0, len(values)+1)
	found := false
	for _, v := range values {
		if v == value {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, value)
	}
	return out
}

// Apply filters the product list by the current selection. Facets of the same
// kind are OR-combined; different facets are AND-combined.
func Apply(state FilterState, products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(state, p) {
			out = append(out, p)
		}
	}
	return out
}

func matches(state FilterState, p model.Product) bool {
	if p.Price < state.PriceMin {
		return false
	}
	if state.PriceMax > 0 && p.Price > state.PriceMax {
		return false
	}
	if state.MinRating > 0 && p.Rating < state.MinRating {
		return false
	}
	if state.FreeShipping && !p.FreeShipping {
		return false
	}
	if len(state.Categories) > 0 && !contains(state.Categories, strOf(p.Category)) {
		return false
	}
	if len(state.Crafts) > 0 && !contains(state.Crafts, strOf(p.Craft)) {
		return false
	}
	if len(state.Materials) > 0 && !intersects(state.Materials, p.Materials) {
		return false
	}
	if len(state.Techniques) > 0 && !intersects(state.Techniques, p.Techniques) {
		return false
	}
	return true
}

// Counts holds the per-facet product counts shown next to each option.
type Counts struct {
	Categories map[string]int `json:"categories"`
	Crafts     map[string]int `json:"crafts"`
	Materials  map[string]int `json:"materials"`
	Techniques map[string]int `json:"techniques"`
}

// DeriveCounts computes how many products carry each facet value.
func DeriveCounts(products []model.Product) Counts {
	c := Counts{
		Categories: make(map[string]int),
		Crafts:     make(map[string]int),
		Materials:  make(map[string]int),
		Techniques: make(map[string]int),
	}
	for _, p := range products {
		if v := strOf(p.Category); v != "" {
			c.Categories[v]++
		}
		if v := strOf(p.Craft); v != "" {
			c.Crafts[v]++
		}
		for _, m := range dedupe(p.Materials) {
			c.Materials[m]++
		}
		for _, t := range dedupe(p.Techniques) {
			c.Techniques[t]++
		}
	}
	return c
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func intersects(selected []string, values model.StringList) bool {
	for _, v := range values {
		if contains(selected, v) {
			return true
		}
	}
	return false
}

func dedupe(values model.StringList) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func strOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
