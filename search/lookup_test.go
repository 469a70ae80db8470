package search

import (
	"reflect"
	"testing"

	"github.com/medivoice/medivoice-api/medicines"
	"github.com/medivoice/medivoice-api/medicines/entities"
)

func testInteractions() *medicines.InteractionTable {
	table := medicines.NewInteractionTable()
	table.Put("Paracetamol", "Alcohol", entities.Interaction{
		Severity:       "High",
		Effect:         "Increased risk of liver damage",
		Recommendation: "Avoid or limit alcohol consumption",
		Mechanism:      "Induces CYP2E1 leading to toxic metabolite",
	})
	table.Put("Ibuprofen", "Aspirin", entities.Interaction{
		Severity: "Moderate",
		Effect:   "Reduced antiplatelet effect of aspirin",
	})
	return table
}

// Interaction lookup is symmetric: (A,B) and (B,A) return identical data.
func TestCheckInteractionSymmetric(t *testing.T) {
	table := testInteractions()

	pairs := [][2]string{
		{"paracetamol", "alcohol"},
		{"Paracetamol", "ALCOHOL"},
		{"  ibuprofen ", "aspirin"},
	}

	for _, pair := range pairs {
		forward := CheckInteraction(pair[0], pair[1], table)
		reverse := CheckInteraction(pair[1], pair[0], table)

		if forward == nil || reverse == nil {
			t.Fatalf("CheckInteraction(%q, %q) missing in one direction", pair[0], pair[1])
		}
		if !reflect.DeepEqual(forward, reverse) {
			t.Errorf("CheckInteraction(%q, %q) not symmetric: %+v vs %+v", pair[0], pair[1], forward, reverse)
		}
	}
}

func TestCheckInteractionUnknownPair(t *testing.T) {
	table := testInteractions()

	if in := CheckInteraction("paracetamol", "cetirizine", table); in != nil {
		t.Errorf("CheckInteraction for unknown pair = %+v, want nil", in)
	}
}

func TestGetBrands(t *testing.T) {
	catalog := testCatalog()

	brands := medicines.NewBrandTable()
	brands.Put("Acetaminophen", entities.Brand{BrandName: "Crocin", Company: "GSK"})
	brands.Put("Acetaminophen", entities.Brand{BrandName: "Tylenol", Company: "Johnson & Johnson"})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		// Resolved via the tiered matcher, then the generic name
		{"by name", "paracetamol", 2},
		{"by partial name", "paraceta", 2},
		{"by brand", "crocin", 2},
		{"matched medicine without brands", "ibuprofen", 0},
		{"unmatched medicine", "xyznotreal", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetBrands(tt.query, catalog, brands)
			if len(got) != tt.want {
				t.Errorf("GetBrands(%q) returned %d entries, want %d", tt.query, len(got), tt.want)
			}
		})
	}

	// Insertion order is preserved
	got := GetBrands("paracetamol", catalog, brands)
	if got[0].BrandName != "Crocin" || got[1].BrandName != "Tylenol" {
		t.Errorf("GetBrands order = %v, want load order", got)
	}
}
