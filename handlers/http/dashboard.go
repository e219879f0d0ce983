package httpHandler

import (
	"encoding/json"
	"html/template"
	"log"
	"moodgut-server/services"
	"moodgut-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	entries *usecases.EntryUseCase
}

func NewDashboardHandler(entries *usecases.EntryUseCase) *DashboardHandler {
	return &DashboardHandler{entries: entries}
}

// Dashboard handles GET /dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID := UserID(c)

	logs, err := h.entries.ListEntries(userID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
			"Error": "Could not load your entries.",
		})
		return
	}

	summary := services.Aggregate(logs)
	if summary == nil {
		// No logs yet: the dashboard's empty state, not an error.
		c.HTML(http.StatusOK, "dashboard.html", gin.H{"Flash": popFlash(c)})
		return
	}

	if summary.UnknownMoods > 0 {
		log.Printf("warning: user %s has %d entries with unrecognized mood labels, excluded from mood averages", userID, summary.UnknownMoods)
	}

	charts := services.BuildCharts(summary)
	chartsJSON, err := json.Marshal(charts)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
			"Error": "Could not render charts.",
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Flash":          popFlash(c),
		"HasData":        true,
		"ChartsJSON":     template.JS(chartsJSON),
		"Interpretation": services.Interpret(summary),
	})
}
