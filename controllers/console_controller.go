package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fitness-api/models"
)

// ConsoleController serves the public diagnostic console endpoint with
// read-only entity counts and connection pool statistics.
type ConsoleController struct {
	db *gorm.DB
}

func NewConsoleController(db *gorm.DB) *ConsoleController {
	return &ConsoleController{db: db}
}

func (cc *ConsoleController) GetDiagnostics(c *gin.Context) {
	var userCount, routeCount, checkpointCount, checkInCount int64
	cc.db.Model(&models.User{}).Count(&userCount)
	cc.db.Model(&models.Route{}).Count(&routeCount)
	cc.db.Model(&models.Checkpoint{}).Count(&checkpointCount)
	cc.db.Model(&models.CheckIn{}).Count(&checkInCount)

	pool := gin.H{}
	if sqlDB, err := cc.db.DB(); err == nil {
		stats := sqlDB.Stats()
		pool = gin.H{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"counts": gin.H{
			"users":       userCount,
			"routes":      routeCount,
			"checkpoints": checkpointCount,
			"check_ins":   checkInCount,
		},
		"pool": pool,
	})
}
