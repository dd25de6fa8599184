package controllers

import (
	"errors"
	"strconv"

	"github.com/OhadLibai/Timely-sub002/entity"
	"github.com/OhadLibai/Timely-sub002/pkg/resp"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/OhadLibai/Timely-sub002/utils"
	"github.com/gin-gonic/gin"
)

type PredictionController struct{ Svc *services.PredictionService }

func NewPredictionController(svc *services.PredictionService) *PredictionController {
	return &PredictionController{Svc: svc}
}

func basketPayload(b *entity.PredictedBasket) gin.H {
	if b == nil {
		return gin.H{"basket": nil, "items": []any{}}
	}
	return gin.H{"basket": b, "items": b.Items}
}

// GET /api/predictions/current
//
// Degrades to an empty-basket payload when the model has nothing usable;
// this endpoint never surfaces an upstream failure.
func (pc *PredictionController) Current(c *gin.Context) {
	basket, err := pc.Svc.Current(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, basketPayload(basket))
}

// POST /api/predictions/:id/accept
func (pc *PredictionController) Accept(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid basket id")
		return
	}

	basket, err := pc.Svc.Accept(utils.CurrentUserID(c), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "basket not found")
		case errors.Is(err, services.ErrBasketFinalized):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, basketPayload(basket))
}

// POST /api/predictions/:id/reject
func (pc *PredictionController) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid basket id")
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body) // reason is optional and not persisted

	basket, err := pc.Svc.Reject(utils.CurrentUserID(c), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "basket not found")
		case errors.Is(err, services.ErrBasketFinalized):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	payload := basketPayload(basket)
	payload["reason"] = body.Reason
	resp.OK(c, payload)
}

// PATCH /api/predictions/items/:itemId
func (pc *PredictionController) SetItemAccepted(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var body struct {
		IsAccepted *bool `json:"isAccepted" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = pc.Svc.SetItemAccepted(utils.CurrentUserID(c), uint(itemID), *body.IsAccepted)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "basket item not found")
		case errors.Is(err, services.ErrBasketFinalized):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
