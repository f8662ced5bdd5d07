package facet_test

import (
	"reflect"
	"testing"

	"github.com/getinmotion/telar-sub006/application/facet"
	"github.com/getinmotion/telar-sub006/model"
)

func strPtr(s string) *string { return &s }

func sampleProducts() []model.Product {
	return []model.Product{
		{
			ID:           "p1",
			Name:         "Mochila Wayuu",
			Price:        120,
			Category:     strPtr("bolsos"),
			Craft:        strPtr("tejeduria"),
			Materials:    model.StringList{"algodon", "fique"},
			Techniques:   model.StringList{"crochet"},
			Rating:       4.5,
			FreeShipping: true,
		},
		{
			ID:         "p2",
			Name:       "Sombrero Vueltiao",
			Price:      80,
			Category:   strPtr("sombreros"),
			Craft:      strPtr("tejeduria"),
			Materials:  model.StringList{"cana flecha"},
			Techniques: model.StringList{"trenzado"},
			Rating:     4.9,
		},
		{
			ID:           "p3",
			Name:         "Jarron de Barro",
			Price:        45,
			Category:     strPtr("ceramica"),
			Craft:        strPtr("alfareria"),
			Materials:    model.StringList{"arcilla"},
			Techniques:   model.StringList{"modelado"},
			Rating:       3.8,
			FreeShipping: true,
		},
	}
}

func TestReduce_ToggleIsInvolutive(t *testing.T) {
	initial := facet.FilterState{Categories: []string{"bolsos"}}

	once := facet.Reduce(initial, facet.Action{Kind: facet.ToggleCategory, Value: "sombreros"})
	twice := facet.Reduce(once, facet.Action{Kind: facet.ToggleCategory, Value: "sombreros"})

	if !reflect.DeepEqual(twice.Categories, []string{"bolsos"}) {
		t.Fatalf("toggle twice = %v, want original selection", twice.Categories)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	initial := facet.FilterState{Materials: []string{"algodon", "fique"}}
	snapshot := []string{"algodon", "fique"}

	_ = facet.Reduce(initial, facet.Action{Kind: facet.ToggleMaterial, Value: "algodon"})
	_ = facet.Reduce(initial, facet.Action{Kind: facet.ToggleMaterial, Value: "lana"})

	if !reflect.DeepEqual(initial.Materials, snapshot) {
		t.Fatalf("input state mutated: %v", initial.Materials)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  facet.FilterState
		action facet.Action
		want   facet.FilterState
	}{
		{
			name:   "toggle adds a missing category",
			state:  facet.FilterState{},
			action: facet.Action{Kind: facet.ToggleCategory, Value: "bolsos"},
			want:   facet.FilterState{Categories: []string{"bolsos"}},
		},
		{
			name:   "toggle removes a present craft",
			state:  facet.FilterState{Crafts: []string{"tejeduria", "alfareria"}},
			action: facet.Action{Kind: facet.ToggleCraft, Value: "tejeduria"},
			want:   facet.FilterState{Crafts: []string{"alfareria"}},
		},
		{
			name:   "set price range",
			state:  facet.FilterState{},
			action: facet.Action{Kind: facet.SetPriceRange, Min: 50, Max: 150},
			want:   facet.FilterState{PriceMin: 50, PriceMax: 150},
		},
		{
			name:   "set minimum rating",
			state:  facet.FilterState{},
			action: facet.Action{Kind: facet.SetMinRating, Rating: 4},
			want:   facet.FilterState{MinRating: 4},
		},
		{
			name: "clear all resets every facet",
			state: facet.FilterState{
				PriceMin:     50,
				PriceMax:     150,
				Categories:   []string{"bolsos"},
				MinRating:    4,
				FreeShipping: true,
			},
			action: facet.Action{Kind: facet.ClearAll},
			want:   facet.FilterState{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := facet.Reduce(tt.state, tt.action)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Reduce() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name    string
		state   facet.FilterState
		wantIDs []string
	}{
		{
			name:    "empty state matches everything",
			state:   facet.FilterState{},
			wantIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:    "same facet values are OR-combined",
			state:   facet.FilterState{Categories: []string{"bolsos", "sombreros"}},
			wantIDs: []string{"p1", "p2"},
		},
		{
			name: "different facets are AND-combined",
			state: facet.FilterState{
				Crafts:       []string{"tejeduria", "alfareria"},
				FreeShipping: true,
			},
			wantIDs: []string{"p1", "p3"},
		},
		{
			name:    "price range bounds are inclusive of the interval",
			state:   facet.FilterState{PriceMin: 50, PriceMax: 100},
			wantIDs: []string{"p2"},
		},
		{
			name:    "zero max price means unbounded",
			state:   facet.FilterState{PriceMin: 100},
			wantIDs: []string{"p1"},
		},
		{
			name:    "minimum rating",
			state:   facet.FilterState{MinRating: 4},
			wantIDs: []string{"p1", "p2"},
		},
		{
			name:    "materials match on list intersection",
			state:   facet.FilterState{Materials: []string{"fique", "arcilla"}},
			wantIDs: []string{"p1", "p3"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := facet.Apply(tt.state, products)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Fatalf("Apply() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestDeriveCounts(t *testing.T) {
	products := sampleProducts()
	// Duplicate materials inside one product count once.
	products = append(products, model.Product{
		ID:        "p4",
		Category:  strPtr("bolsos"),
		Materials: model.StringList{"algodon", "algodon"},
	})

	got := facet.DeriveCounts(products)

	if got.Categories["bolsos"] != 2 {
		t.Fatalf("categories[bolsos] = %d, want 2", got.Categories["bolsos"])
	}
	if got.Crafts["tejeduria"] != 2 {
		t.Fatalf("crafts[tejeduria] = %d, want 2", got.Crafts["tejeduria"])
	}
	if got.Materials["algodon"] != 2 {
		t.Fatalf("materials[algodon] = %d, want 2", got.Materials["algodon"])
	}
	if got.Techniques["trenzado"] != 1 {
		t.Fatalf("techniques[trenzado] = %d, want 1", got.Techniques["trenzado"])
	}
}
