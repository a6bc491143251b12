package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/awardpulse/internal/chart"
	"github.com/guttosm/awardpulse/internal/domain/dto"
	"github.com/guttosm/awardpulse/internal/middleware"
	"github.com/guttosm/awardpulse/internal/service"
)

// selectAllToken is the value the page sends for a checked Select All box.
const selectAllToken = "ALL"

// Handler provides the dashboard's HTTP handlers.
//
// Responsibilities:
//   - Parse the selection from query parameters (all, sector)
//   - Run selection -> series -> chart through the dashboard service
//   - Return JSON (or PNG) responses with appropriate HTTP status codes
type Handler struct {
	svc   service.DashboardService
	title string
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc: the dashboard service holding the loaded dataset.
//   - title: page heading shown by the index page.
func NewHandler(svc service.DashboardService, title string) *Handler {
	return &Handler{svc: svc, title: title}
}

// selectionQuery is the selection as sent by the page.
type selectionQuery struct {
	SelectAll bool
	Sectors   []string
}

// parseSelection reads "all" and the repeated "sector" parameters.
//
// "all" accepts any strconv.ParseBool value or the literal ALL; absent means
// false. Sector names are kept verbatim, in order, including unknown ones.
func parseSelection(c *gin.Context) (selectionQuery, error) {
	q := selectionQuery{Sectors: c.QueryArray("sector")}

	raw := strings.TrimSpace(c.Query("all"))
	switch {
	case raw == "":
	case strings.EqualFold(raw, selectAllToken):
		q.SelectAll = true
	default:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("all=%q: %w", raw, err)
		}
		q.SelectAll = v
	}
	return q, nil
}

// effectiveSelection parses the query and resolves it, writing a 400 on bad input.
func (h *Handler) effectiveSelection(c *gin.Context) (selectionQuery, []string, bool) {
	q, err := parseSelection(c)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid all parameter", err)
		return q, nil, false
	}
	return q, h.svc.Select(q.SelectAll, q.Sectors), true
}

// serviceError maps an error from the dashboard service to a response.
func serviceError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "request timed out", err)
		return
	}
	middleware.AbortWithError(c, http.StatusInternalServerError, "failed to build chart", err)
}

// GetSectors godoc
// @Summary      List sectors
// @Description  Returns the sector catalog derived from the dataset header, sorted by name
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SectorsResponse  "Success"
// @Router       /api/v1/sectors [get]
func (h *Handler) GetSectors(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SectorsResponse{Sectors: h.svc.Catalog()})
}

// GetSelection godoc
// @Summary      Resolve selection
// @Description  Applies Select All: when all is set the whole catalog is returned, otherwise the sector list verbatim
// @Tags         dashboard
// @Produce      json
// @Param        all     query     string    false  "Select All (true|false|ALL)"  example(ALL)
// @Param        sector  query     []string  false  "Chosen sectors"  collectionFormat(multi)
// @Success      200     {object}  dto.SelectionResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Bad Request"
// @Router       /api/v1/selection [get]
func (h *Handler) GetSelection(c *gin.Context) {
	q, sel, ok := h.effectiveSelection(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.SelectionResponse{SelectAll: q.SelectAll, Sectors: sel})
}

// GetSeries godoc
// @Summary      Aggregated series
// @Description  Per-month award counts and dollar totals summed over the effective selection
// @Tags         dashboard
// @Produce      json
// @Param        all     query     string    false  "Select All (true|false|ALL)"
// @Param        sector  query     []string  false  "Chosen sectors"  collectionFormat(multi)
// @Success      200     {object}  models.AggregatedSeries  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      503     {object}  dto.ErrorResponse        "Timed out"
// @Router       /api/v1/series [get]
func (h *Handler) GetSeries(c *gin.Context) {
	_, sel, ok := h.effectiveSelection(c)
	if !ok {
		return
	}
	series, err := h.svc.Series(c.Request.Context(), sel)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetChart godoc
// @Summary      Chart figure
// @Description  Effective selection plus a Plotly figure: award bars and a dollars line, both labelled
// @Tags         dashboard
// @Produce      json
// @Param        all     query     string    false  "Select All (true|false|ALL)"
// @Param        sector  query     []string  false  "Chosen sectors"  collectionFormat(multi)
// @Success      200     {object}  dto.ChartResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      503     {object}  dto.ErrorResponse  "Timed out"
// @Router       /api/v1/chart [get]
func (h *Handler) GetChart(c *gin.Context) {
	q, sel, ok := h.effectiveSelection(c)
	if !ok {
		return
	}
	spec, err := h.svc.Chart(c.Request.Context(), sel)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChartResponse{
		Selection: dto.SelectionResponse{SelectAll: q.SelectAll, Sectors: sel},
		Figure:    *spec,
	})
}

// GetChartPNG godoc
// @Summary      Chart image
// @Description  Server-rendered PNG of the aggregated series; 204 when the dataset has no months
// @Tags         dashboard
// @Produce      png
// @Param        all     query     string    false  "Select All (true|false|ALL)"
// @Param        sector  query     []string  false  "Chosen sectors"  collectionFormat(multi)
// @Success      200     {file}    binary             "PNG image"
// @Success      204     "No data"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse  "Render failure"
// @Router       /chart.png [get]
func (h *Handler) GetChartPNG(c *gin.Context) {
	_, sel, ok := h.effectiveSelection(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	err := h.svc.ChartPNG(c.Request.Context(), sel, &buf)
	switch {
	case errors.Is(err, chart.ErrEmptyChart):
		c.Status(http.StatusNoContent)
	case err != nil:
		serviceError(c, err)
	default:
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}
