package controllers

import (
	"errors"
	"strconv"

	"github.com/OhadLibai/Timely-sub002/pkg/resp"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/OhadLibai/Timely-sub002/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /api/cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "product not found")
		case errors.Is(err, services.ErrProductUnavailable):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /api/cart/items/:itemId
func (h *CartController) UpdateQuantity(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), uint(itemID), body.Quantity); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /api/cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(itemID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
