package httpHandler

import (
	"errors"
	"moodgut-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entries *usecases.EntryUseCase
}

func NewEntryHandler(entries *usecases.EntryUseCase) *EntryHandler {
	return &EntryHandler{entries: entries}
}

// AddPage handles GET /add
func (h *EntryHandler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_entry.html", gin.H{"Flash": popFlash(c)})
}

// Add handles POST /add
func (h *EntryHandler) Add(c *gin.Context) {
	input, err := usecases.ParseEntryInput(
		c.PostForm("mood"),
		c.PostForm("meal"),
		c.PostForm("gut_symptom"),
		c.PostForm("sleep_hours"),
		c.PostForm("water_intake"),
	)
	if err != nil {
		c.HTML(http.StatusBadRequest, "add_entry.html", gin.H{
			"Error": "Please fill in every field; sleep and water must be non-negative numbers.",
		})
		return
	}

	if _, err := h.entries.AddEntry(UserID(c), input); err != nil {
		if errors.Is(err, usecases.ErrInvalidInput) {
			c.HTML(http.StatusBadRequest, "add_entry.html", gin.H{"Error": "Invalid entry."})
			return
		}
		c.HTML(http.StatusInternalServerError, "add_entry.html", gin.H{"Error": "Could not save entry."})
		return
	}

	setFlash(c, "Entry added successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
