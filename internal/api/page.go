package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/awardpulse/internal/domain/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates parses the embedded page templates.
func pageTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type pageData struct {
	Title   string
	Sectors []models.Sector
}

// Index godoc
// @Summary      Dashboard page
// @Description  HTML page with the Select All box, one box per sector and the chart
// @Tags         dashboard
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Title:   h.title,
		Sectors: h.svc.Catalog(),
	})
}
