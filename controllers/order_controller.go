package controllers

import (
	"errors"
	"strconv"

	"github.com/OhadLibai/Timely-sub002/pkg/resp"
	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/OhadLibai/Timely-sub002/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/orders
func (oc *OrderController) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	items, total, err := oc.Svc.ListForUser(utils.CurrentUserID(c), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id":                  order.ID,
		"orderNumber":         order.OrderNumber,
		"status":              order.Status,
		"paymentMethod":       order.PaymentMethod,
		"subtotal":            order.Subtotal,
		"tax":                 order.Tax,
		"deliveryFee":         order.DeliveryFee,
		"total":               order.Total,
		"daysSincePriorOrder": order.DaysSincePriorOrder,
		"orderDow":            order.OrderDow,
		"orderHourOfDay":      order.OrderHourOfDay,
		"createdAt":           order.CreatedAt,
		"items":               order.Items,
		"delivery":            order.Delivery,
	})
}
