//go:build echo

package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterEchoRoutes registers the 5 operations on an Echo instance.
// Build with -tags=echo to enable.
//
//	e := echo.New()
//	httpapi.RegisterEchoRoutes(e, httpapi.NewService(crackestimate.DefaultConfig()))
func RegisterEchoRoutes(e *echo.Echo, svc *Service) {
	e.POST("/estimate", func(c echo.Context) error {
		var req EstimateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		resp, err := svc.Estimate(req)
		return echoResult(c, resp, err)
	})

	e.POST("/batch", func(c echo.Context) error {
		var req BatchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if len(req.Passwords) == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "passwords list cannot be empty"})
		}
		resp, err := svc.Batch(req)
		return echoResult(c, resp, err)
	})

	e.POST("/targeted", func(c echo.Context) error {
		var req TargetedRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		resp, err := svc.Targeted(req)
		return echoResult(c, resp, err)
	})

	e.GET("/metadata", func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Metadata())
	})

	e.GET("/compare", func(c echo.Context) error {
		axis := CompareAxis(c.QueryParam("axis"))
		values := splitCSV(c.QueryParam("values"))
		if len(values) < 2 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "need at least 2 comma-separated values to compare"})
		}
		req := CompareRequest{
			Password:     c.QueryParam("password"),
			Algorithm:    c.QueryParam("algorithm"),
			HardwareTier: c.QueryParam("hardware_tier"),
		}
		switch axis {
		case AxisPasswords:
			req.Passwords = values
		case AxisAlgorithms:
			req.Algorithms = values
		case AxisHardwareTiers:
			req.HardwareTiers = values
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "axis must be one of: passwords, algorithms, hardware_tiers"})
		}
		resp, err := svc.Compare(axis, req)
		return echoResult(c, resp, err)
	})
}

func echoResult(c echo.Context, body any, err error) error {
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, body)
}
