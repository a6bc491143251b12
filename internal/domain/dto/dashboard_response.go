package dto

import "github.com/guttosm/awardpulse/internal/domain/models"

// SectorsResponse is returned by GET /api/v1/sectors.
type SectorsResponse struct {
	Sectors []models.Sector `json:"sectors"`
}

// SelectionResponse is returned by GET /api/v1/selection.
//
// Sectors is the effective selection after the "Select All" override has been
// applied; the page writes it back into the sector checkboxes.
type SelectionResponse struct {
	SelectAll bool     `json:"select_all" example:"true"`
	Sectors   []string `json:"sectors" example:"Construction,Manufacturing"`
}

// ChartResponse is returned by GET /api/v1/chart.
type ChartResponse struct {
	Selection SelectionResponse `json:"selection"`
	Figure    models.ChartSpec  `json:"figure"`
}
