package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/OhadLibai/Timely-sub002/pkg/resp"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	out, err := ac.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/admin/users
func (ac *AdminController) Users(c *gin.Context) {
	page, limit := pageParams(c)
	users, total, err := ac.Svc.ListUsers(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total, "page": page, "limit": limit})
}

// GET /api/admin/orders
func (ac *AdminController) Orders(c *gin.Context) {
	page, limit := pageParams(c)
	orders, total, err := ac.Svc.ListOrders(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items = append(items, gin.H{
			"id":          o.ID,
			"orderNumber": o.OrderNumber,
			"status":      o.Status,
			"total":       o.Total,
			"createdAt":   o.CreatedAt,
			"userId":      o.UserID,
			"userEmail":   o.User.Email,
		})
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /api/admin/metrics
func (ac *AdminController) ModelMetrics(c *gin.Context) {
	metrics, live := ac.Svc.ModelMetrics(c.Request.Context())
	resp.OK(c, gin.H{"metrics": metrics, "live": live})
}

// POST /api/admin/demo-users
func (ac *AdminController) SeedDemoUser(c *gin.Context) {
	var body struct {
		ExternalID int64 `json:"externalId" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ac.Svc.SeedDemoUser(c.Request.Context(), body.ExternalID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExternalUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"ok":          false,
				"error":       "external user not found",
				"suggestions": ac.Svc.DemoSuggestions(c.Request.Context()),
			})
		case errors.Is(err, services.ErrExternalUserSeeded):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return page, limit
}
