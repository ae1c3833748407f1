package model

// ChartKind selects the visual for a question's aggregate
type ChartKind string

const (
	ChartKindPie   ChartKind = "pie"   // proportional segments (yes/no)
	ChartKindBars  ChartKind = "bars"  // distribution bars (choice, rating)
	ChartKindEmpty ChartKind = "empty" // explicit "no responses yet" state
	ChartKindNone  ChartKind = "none"  // not chartable (text questions)
)

// ChartSegment is one labelled portion of a chart.
type ChartSegment struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"` // 0-100 share of the total
}

// ChartSpec is the renderable description of one question's aggregate.
// Purely presentational; carries no export or pagination concerns.
type ChartSpec struct {
	QuestionID string         `json:"questionId"`
	Title      string         `json:"title"`
	Kind       ChartKind      `json:"kind"`
	Segments   []ChartSegment `json:"segments,omitempty"`
	Caption    string         `json:"caption,omitempty"` // e.g. average rating line
}
