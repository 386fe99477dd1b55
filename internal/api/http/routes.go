package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/smartweather/weather-advisor/internal/recommend"
	"github.com/smartweather/weather-advisor/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, weatherSvc *weather.Service, resolver *recommend.Resolver) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		var req cityQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := weatherSvc.GetSnapshot(c.Context(), req.City)
		if err != nil {
			if errors.Is(err, weather.ErrInvalidCity) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(snapshot)
	})

	v1.Get("/recommendation", func(c *fiber.Ctx) error {
		var req recommendationQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := resolver.Resolve(c.Context(), recommend.ProfileType(req.Profile), req.Condition, req.Temperature)
		if err != nil {
			if errors.Is(err, recommend.ErrInvalidProfile) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve recommendation")
		}

		return c.JSON(rec)
	})

	// Combined endpoint: fetch the snapshot and thread its condition and
	// temperature into the resolver.
	v1.Get("/advice", func(c *fiber.Ctx) error {
		var req adviceQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := weatherSvc.GetSnapshot(c.Context(), req.City)
		if err != nil {
			if errors.Is(err, weather.ErrInvalidCity) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		rec, err := resolver.Resolve(c.Context(), recommend.ProfileType(req.Profile), string(snapshot.Condition), snapshot.TemperatureC)
		if err != nil {
			if errors.Is(err, recommend.ErrInvalidProfile) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve recommendation")
		}

		return c.JSON(fiber.Map{
			"weather":        snapshot,
			"recommendation": rec,
		})
	})
}

// cityQuery holds query parameters identifying a city.
type cityQuery struct {
	City string `validate:"required"`
}

func (q *cityQuery) bind(c *fiber.Ctx) error {
	q.City = c.Query("city")
	return validate.Struct(q)
}

// recommendationQuery holds query parameters for the direct resolver endpoint.
type recommendationQuery struct {
	Profile     string `validate:"required,oneof=athlete driver farmer tourist student"`
	Condition   string `validate:"required"`
	Temperature int
}

func (q *recommendationQuery) bind(c *fiber.Ctx) error {
	q.Profile = c.Query("profile")
	q.Condition = c.Query("condition")

	tempStr := c.Query("temperature")
	if tempStr == "" {
		return errors.New("temperature query parameter is required")
	}
	temp, err := strconv.Atoi(tempStr)
	if err != nil {
		return errors.New("temperature must be an integer")
	}
	q.Temperature = temp

	return validate.Struct(q)
}

// adviceQuery holds query parameters for the combined endpoint.
type adviceQuery struct {
	City    string `validate:"required"`
	Profile string `validate:"required,oneof=athlete driver farmer tourist student"`
}

func (q *adviceQuery) bind(c *fiber.Ctx) error {
	q.City = c.Query("city")
	q.Profile = c.Query("profile")
	return validate.Struct(q)
}
