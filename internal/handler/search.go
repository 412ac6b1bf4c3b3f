package handler

import (
	"net/http"

	"churro/internal/inventory"
	"churro/internal/model"
	"churro/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler exposes the inventory and the search engine directly, without
// the chat pipeline in front.
type SearchHandler struct {
	search *service.SearchService
	store  *inventory.Store
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *service.SearchService, store *inventory.Store) *SearchHandler {
	return &SearchHandler{search: search, store: store}
}

// Search handles POST /api/v1/search. Like the chat view path, it only ever
// surfaces available cars.
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cars := h.search.SearchAvailable(req.Filters)
	c.JSON(http.StatusOK, model.SearchResponse{Cars: cars, Total: len(cars)})
}

// ListCars handles GET /api/v1/cars
func (h *SearchHandler) ListCars(c *gin.Context) {
	cars := h.store.All()
	c.JSON(http.StatusOK, model.SearchResponse{Cars: cars, Total: len(cars)})
}

// GetCar handles GET /api/v1/cars/:id
func (h *SearchHandler) GetCar(c *gin.Context) {
	car, ok := h.store.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	c.JSON(http.StatusOK, car)
}
