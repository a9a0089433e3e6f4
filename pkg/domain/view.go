package domain

// View is the render contract exposed to the presentation layer: the current
// step definition, progress, the gate result for the forward control, a
// read-only answer snapshot for pre-filling inputs, and the derived summary
// when the terminal step is showing.
type View struct {
	Step       StepDefinition   `json:"step"`
	Position   int              `json:"position"`
	Total      int              `json:"total"`
	CanAdvance bool             `json:"can_advance"`
	AtEnd      bool             `json:"at_end"`
	Answers    map[Field]string `json:"answers"`
	Summary    *Summary         `json:"summary,omitempty"`
}
