package entities

// Interaction describes a cross-medicine interaction. It is stored
// under both orderings of the medicine pair so lookup is symmetric.
type Interaction struct {
	Severity       string `json:"severity"`
	Effect         string `json:"effect"`
	Recommendation string `json:"recommendation"`
	Mechanism      string `json:"mechanism"`
}
