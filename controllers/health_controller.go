package controllers

import (
	"net/http"

	"github.com/OhadLibai/Timely-sub002/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
	ML *services.MLService
}

func NewHealthController(db *gorm.DB, ml *services.MLService) *HealthController {
	return &HealthController{DB: db, ML: ml}
}

// GET /health
func (hc *HealthController) Check(c *gin.Context) {
	dbStatus := "up"
	sqlDB, err := hc.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	mlStatus := "up"
	if !hc.ML.Healthy(c.Request.Context()) {
		mlStatus = "down"
	}

	status := http.StatusOK
	if dbStatus == "down" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"mlService": mlStatus,
	})
}
