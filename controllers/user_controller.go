package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/OhadLibai/Timely-sub002/pkg/resp"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/OhadLibai/Timely-sub002/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// GET /api/users/preferences
func (uc *UserController) GetPreferences(c *gin.Context) {
	prefs, err := uc.Svc.GetPreferences(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, prefs)
}

// PUT /api/users/preferences
func (uc *UserController) UpdatePreferences(c *gin.Context) {
	var req services.UpdatePreferencesIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	prefs, err := uc.Svc.UpdatePreferences(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, prefs)
}

// GET /api/users/favorites
func (uc *UserController) ListFavorites(c *gin.Context) {
	favorites, err := uc.Svc.ListFavorites(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": favorites})
}

// POST /api/users/favorites
func (uc *UserController) AddFavorite(c *gin.Context) {
	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	favorite, err := uc.Svc.AddFavorite(utils.CurrentUserID(c), body.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, favorite)
}

// DELETE /api/users/favorites/:productId
func (uc *UserController) RemoveFavorite(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	if err := uc.Svc.RemoveFavorite(utils.CurrentUserID(c), uint(productID)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}
