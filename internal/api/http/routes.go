package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/session"
	"weather-dashboard/internal/view"
	"weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the dashboard handlers into the Fiber app. Every
// mutating route responds with the refreshed view state so clients can
// render the loading frame immediately and poll for settlement.
func RegisterRoutes(app *fiber.App, ctrl *session.Controller) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(view.Build(ctrl.Snapshot()))
	})

	v1.Post("/dashboard/city", func(c *fiber.Ctx) error {
		var req citySubmit
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Empty-after-trim input is the controller's call: it surfaces
		// as an error in the returned state, not as an HTTP failure.
		ctrl.SubmitCity(req.City)
		return c.JSON(view.Build(ctrl.Snapshot()))
	})

	v1.Post("/dashboard/units", func(c *fiber.Ctx) error {
		var req unitChange
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctrl.SetUnits(weather.Units(req.Units))
		return c.JSON(view.Build(ctrl.Snapshot()))
	})

	v1.Post("/dashboard/refresh", func(c *fiber.Ctx) error {
		ctrl.Refresh()
		return c.JSON(view.Build(ctrl.Snapshot()))
	})
}

// citySubmit is the body of a city submission.
type citySubmit struct {
	City string `json:"city"`
}

// unitChange is the body of a unit-system change.
type unitChange struct {
	Units string `json:"units" validate:"required,oneof=metric imperial"`
}
