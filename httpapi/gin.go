//go:build gin

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewGinRouter registers the 5 operations on a Gin engine. Build with
// -tags=gin to enable.
//
//	r := gin.Default()
//	httpapi.NewGinRouter(r, httpapi.NewService(crackestimate.DefaultConfig()))
func NewGinRouter(r *gin.Engine, svc *Service) {
	r.POST("/estimate", func(c *gin.Context) {
		var req EstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		resp, err := svc.Estimate(req)
		ginResult(c, resp, err)
	})

	r.POST("/batch", func(c *gin.Context) {
		var req BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if len(req.Passwords) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords list cannot be empty"})
			return
		}
		resp, err := svc.Batch(req)
		ginResult(c, resp, err)
	})

	r.POST("/targeted", func(c *gin.Context) {
		var req TargetedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		resp, err := svc.Targeted(req)
		ginResult(c, resp, err)
	})

	r.GET("/metadata", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Metadata())
	})

	r.GET("/compare", func(c *gin.Context) {
		axis := CompareAxis(c.Query("axis"))
		values := splitCSV(c.Query("values"))
		if len(values) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "need at least 2 comma-separated values to compare"})
			return
		}
		req := CompareRequest{
			Password:     c.Query("password"),
			Algorithm:    c.Query("algorithm"),
			HardwareTier: c.Query("hardware_tier"),
		}
		switch axis {
		case AxisPasswords:
			req.Passwords = values
		case AxisAlgorithms:
			req.Algorithms = values
		case AxisHardwareTiers:
			req.HardwareTiers = values
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "axis must be one of: passwords, algorithms, hardware_tiers"})
			return
		}
		resp, err := svc.Compare(axis, req)
		ginResult(c, resp, err)
	})
}

func ginResult(c *gin.Context, body any, err error) {
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}
