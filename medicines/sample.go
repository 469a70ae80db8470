package medicines

import (
	"github.com/medivoice/medivoice-api/medicines/entities"
)

// SampleCatalog returns the minimal built-in dataset used when
// medicines.csv is missing or malformed. It keeps the lookup and
// extraction paths alive so the service can still answer.
func SampleCatalog() *Catalog {
	catalog := NewCatalog()

	catalog.Put(entities.Medicine{
		Name:              "Paracetamol",
		GenericName:       "Acetaminophen",
		Class:             "Analgesic/Antipyretic",
		Uses:              []string{"Fever", "Mild to moderate pain"},
		DosageAdults:      "500-1000mg every 4-6 hours, max 4000mg/day",
		DosageChildren:    "10-15mg/kg every 4-6 hours",
		SideEffects:       []string{"Nausea", "Rash", "Liver damage (overdose)"},
		Contraindications: []string{"Severe liver disease"},
		Interactions:      []string{"Alcohol", "Warfarin"},
		Pregnancy:         "Category B - generally safe",
		Storage:           "Room temperature, away from moisture",
		Mechanism:         "Inhibits prostaglandin synthesis",
		Onset:             "30 minutes",
		Duration:          "4-6 hours",
		BrandNames:        []string{"Crocin", "Calpol", "Tylenol"},
	})

	return catalog
}

// SampleInteractions returns the built-in fallback interaction table.
func SampleInteractions() *InteractionTable {
	table := NewInteractionTable()

	table.Put("paracetamol", "alcohol", entities.Interaction{
		Severity:       "High",
		Effect:         "Increased risk of liver damage",
		Recommendation: "Avoid or limit alcohol consumption",
		Mechanism:      "Induces CYP2E1 leading to toxic metabolite",
	})

	return table
}
