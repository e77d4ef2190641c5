package models

// HeatmapCell represents a single occupancy cell in the heatmap grid
type HeatmapCell struct {
	X         float64 `json:"x"`         // cell center, meters
	Y         float64 `json:"y"`         // cell center, meters
	Count     int     `json:"count"`     // samples observed in the cell
	Intensity float64 `json:"intensity"` // normalized 0-1 against the busiest cell
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Cells    []HeatmapCell `json:"cells"`
	CellSize float64       `json:"cellSizeM"`
	Rows     int           `json:"rows"`
	Cols     int           `json:"cols"`
	MaxCount int           `json:"maxCount"`
}
