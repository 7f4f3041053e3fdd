//go:build fiber

package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterFiberRoutes registers the 5 operations on a Fiber app. Build
// with -tags=fiber to enable.
//
//	app := fiber.New()
//	httpapi.RegisterFiberRoutes(app, httpapi.NewService(crackestimate.DefaultConfig()))
func RegisterFiberRoutes(app *fiber.App, svc *Service) {
	app.Post("/estimate", func(c *fiber.Ctx) error {
		var req EstimateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		resp, err := svc.Estimate(req)
		return fiberResult(c, resp, err)
	})

	app.Post("/batch", func(c *fiber.Ctx) error {
		var req BatchRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if len(req.Passwords) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "passwords list cannot be empty"})
		}
		resp, err := svc.Batch(req)
		return fiberResult(c, resp, err)
	})

	app.Post("/targeted", func(c *fiber.Ctx) error {
		var req TargetedRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		resp, err := svc.Targeted(req)
		return fiberResult(c, resp, err)
	})

	app.Get("/metadata", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(svc.Metadata())
	})

	app.Get("/compare", func(c *fiber.Ctx) error {
		axis := CompareAxis(c.Query("axis"))
		values := splitCSV(c.Query("values"))
		if len(values) < 2 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "need at least 2 comma-separated values to compare"})
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
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "axis must be one of: passwords, algorithms, hardware_tiers"})
		}
		resp, err := svc.Compare(axis, req)
		return fiberResult(c, resp, err)
	})
}

func fiberResult(c *fiber.Ctx, body any, err error) error {
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
