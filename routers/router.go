// Package routers declares every HTTP endpoint as a row of a route table.
// The table is checked before anything is registered on the app.
package routers

import (
	"errors"
	"fmt"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const Prefix = "/api/v1"

// Route is one endpoint. Auth routes run JWTMiddleware before Handlers;
// the last handler is the controller, anything before it is validation.
type Route struct {
	Method   string
	Path     string
	Auth     bool
	Handlers []fiber.Handler
}

var knownMethods = map[string]bool{
	fiber.MethodGet:    true,
	fiber.MethodPost:   true,
	fiber.MethodPut:    true,
	fiber.MethodPatch:  true,
	fiber.MethodDelete: true,
}

// Routes is the full API table, relative to Prefix.
func Routes() []Route {
	var routes []Route
	routes = append(routes, Route{Method: fiber.MethodGet, Path: "/hello", Handlers: []fiber.Handler{hello}})
	routes = append(routes, authRoutes()...)
	routes = append(routes, courseRoutes()...)
	routes = append(routes, userRoutes()...)
	return routes
}

// Validate reports every malformed or duplicated route in the table.
func Validate(routes []Route) error {
	var errs []error
	seen := make(map[string]bool, len(routes))

	for i, r := range routes {
		key := r.Method + " " + r.Path
		if !knownMethods[r.Method] {
			errs = append(errs, fmt.Errorf("route %d (%s): unknown method %q", i, key, r.Method))
		}
		if !strings.HasPrefix(r.Path, "/") {
			errs = append(errs, fmt.Errorf("route %d (%s): path must start with /", i, key))
		}
		if len(r.Handlers) == 0 || r.Handlers[len(r.Handlers)-1] == nil {
			errs = append(errs, fmt.Errorf("route %d (%s): no handler", i, key))
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("route %d (%s): duplicate route", i, key))
		}
		seen[key] = true
	}
	return errors.Join(errs...)
}

// Register validates routes and mounts them under Prefix. Nothing is
// registered when the table is invalid.
func Register(app *fiber.App, routes []Route) error {
	if err := Validate(routes); err != nil {
		return err
	}

	api := app.Group(Prefix)
	for _, r := range routes {
		handlers := make([]fiber.Handler, 0, len(r.Handlers)+1)
		if r.Auth {
			handlers = append(handlers, middleware.JWTMiddleware)
		}
		handlers = append(handlers, r.Handlers...)
		api.Add(r.Method, r.Path, handlers...)
	}

	log.Debug().Int("routes", len(routes)).Str("prefix", Prefix).Msg("routes registered")
	return nil
}

func Setup(app *fiber.App) error {
	return Register(app, Routes())
}

func hello(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hello, world!", nil)
}
