package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kbryant/sendlater/internal/models"
	"github.com/kbryant/sendlater/internal/repository"
)

var ErrItemNotFound = errors.New("item not found")

// ItemHandler covers the Items resource. Items are plain CRUD with no
// scheduling concerns, so handlers talk to the repository directly.
type ItemHandler struct {
	itemRepo *repository.ItemRepository
}

func NewItemHandler(itemRepo *repository.ItemRepository) *ItemHandler {
	return &ItemHandler{itemRepo: itemRepo}
}

// Pointer fields distinguish an absent price/isActive from a zero value.
type ItemRequest struct {
	ItemName    string   `json:"itemName"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	IsActive    *bool    `json:"isActive"`
}

func (r *ItemRequest) missingField() string {
	switch {
	case r.ItemName == "":
		return "itemName"
	case r.Description == "":
		return "description"
	case r.Price == nil:
		return "price"
	case r.IsActive == nil:
		return "isActive"
	}
	return ""
}

// POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}
	if field := req.missingField(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "missing required field: " + field})
		return
	}

	item := &models.Item{
		ID:          uuid.New().String(),
		ItemName:    req.ItemName,
		Description: req.Description,
		Price:       *req.Price,
		IsActive:    *req.IsActive,
		DateAdded:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.itemRepo.Create(item); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "New Item Created", "id": item.ID})
}

// PUT /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
		return
	}
	if field := req.missingField(); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "missing required field: " + field})
		return
	}

	affected, err := h.itemRepo.Update(c.Param("id"), map[string]interface{}{
		"item_name":   req.ItemName,
		"description": req.Description,
		"price":       *req.Price,
		"is_active":   *req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if affected == 0 {
		respondServiceError(c, ErrItemNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Item Updated"})
}

// GET /items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	item, err := h.itemRepo.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if item == nil {
		respondServiceError(c, ErrItemNotFound)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	affected, err := h.itemRepo.Delete(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if affected == 0 {
		respondServiceError(c, ErrItemNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Item Deleted"})
}

// GET /items
func (h *ItemHandler) ListAll(c *gin.Context) {
	items, err := h.itemRepo.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
