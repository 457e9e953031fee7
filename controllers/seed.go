package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SeedRunner is implemented by services.Seeder.
type SeedRunner interface {
	Run(ctx context.Context) error
}

type SeedController struct {
	seeder SeedRunner
}

func NewSeedController(seeder SeedRunner) *SeedController {
	return &SeedController{seeder: seeder}
}

// Seed provisions the demo tables and rows. Safe to call repeatedly.
func (sc *SeedController) Seed(c *gin.Context) {
	if err := sc.seeder.Run(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
}
