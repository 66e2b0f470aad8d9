package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/NQvelo/weather-app/internal/store"
	"github.com/NQvelo/weather-app/internal/weather"
)

var validate = newValidator()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, cache *store.MemoryStore) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap, err := service.GetWeatherInfo(c.UserContext(), city)
		if err != nil {
			if errors.Is(err, weather.ErrNoData) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested city")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		cache.Save(city, *snap)
		return c.JSON(snap)
	})

	v1.Get("/weather/latest", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap, err := cache.Latest(city)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no cached weather data for requested city")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read cached weather data")
		}

		return c.JSON(snap)
	})
}

// cityQuery holds the validated city name. Validation lives here, in the
// controller layer; the core only ever sees a city string it may fail
// to resolve.
type cityQuery struct {
	City string `validate:"required,min=2,max=100,cityname"`
}

func parseCityQuery(c *fiber.Ctx) (string, error) {
	q := cityQuery{City: strings.TrimSpace(c.Query("city"))}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.City, nil
}

// Letters plus the fixed set of extra characters allowed in city names.
const cityExtraChars = " -'äöüÄÖÜß"

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cityname", func(fl validator.FieldLevel) bool {
		return cityNameValid(fl.Field().String())
	})
	return v
}

func cityNameValid(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if strings.ContainsRune(cityExtraChars, r) {
			continue
		}
		return false
	}
	return true
}
