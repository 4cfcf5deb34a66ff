package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/helloapi/pkg/domain/interfaces"
)

var (
	// ErrDuplicateController is returned when two controllers share a name
	ErrDuplicateController = goerr.New("controller is defined more than once")
	// ErrRouteConflict is returned when two routes share method and path
	ErrRouteConflict = goerr.New("route is registered more than once")
	// ErrUndocumentedRoute is returned for a route missing from the OpenAPI document
	ErrUndocumentedRoute = goerr.New("route is not declared in OpenAPI document")
)

// Route maps a method and a path relative to the controller base to a handler
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Controller is a routing unit mounted under a base path
type Controller struct {
	Name   string
	Base   string
	Routes []Route
}

// NewUserController serves GET /api/user and GET /api/user/health
func NewUserController(uc interfaces.GreetingUseCase) *Controller {
	return newGreetingController("user", "/api/user", uc, true)
}

// NewWorkflowController serves GET /api/workflow and GET /api/workflow/health
func NewWorkflowController(uc interfaces.GreetingUseCase) *Controller {
	return newGreetingController("workflow", "/api/workflow", uc, true)
}

// NewLegacyWorkflowController serves GET /workflow only. It shares its name
// with NewWorkflowController, so a server accepts one of the two.
func NewLegacyWorkflowController(uc interfaces.GreetingUseCase) *Controller {
	return newGreetingController("workflow", "/workflow", uc, false)
}

func newGreetingController(name, base string, uc interfaces.GreetingUseCase, withHealth bool) *Controller {
	c := &Controller{
		Name: name,
		Base: base,
		Routes: []Route{
			{Method: http.MethodGet, Path: "", Handler: handleGreeting(uc)},
		},
	}
	if withHealth {
		c.Routes = append(c.Routes, Route{Method: http.MethodGet, Path: "/health", Handler: handleHealth})
	}
	return c
}

// mountControllers validates the whole routing table before registering
// anything, so a rejected set leaves the router untouched
func mountControllers(router chi.Router, doc *openapi3.T, controllers []*Controller) error {
	bases := make(map[string]string)
	owners := make(map[string]string)

	for _, c := range controllers {
		if c == nil {
			return goerr.New("controller must not be nil")
		}
		if prev, ok := bases[c.Name]; ok {
			return goerr.Wrap(ErrDuplicateController, "only one definition per controller can be active",
				goerr.V("name", c.Name),
				goerr.V("base", c.Base),
				goerr.V("previous_base", prev),
			)
		}
		bases[c.Name] = c.Base

		for _, rt := range c.Routes {
			path := c.Base + rt.Path
			key := rt.Method + " " + path
			if owner, ok := owners[key]; ok {
				return goerr.Wrap(ErrRouteConflict, "conflicting route",
					goerr.V("route", key),
					goerr.V("controller", c.Name),
					goerr.V("owner", owner),
				)
			}
			owners[key] = c.Name

			if doc != nil && !isDocumented(doc, rt.Method, path) {
				return goerr.Wrap(ErrUndocumentedRoute, "route must be declared before it is served",
					goerr.V("route", key),
					goerr.V("controller", c.Name),
				)
			}
		}
	}

	for _, c := range controllers {
		for _, rt := range c.Routes {
			router.Method(rt.Method, c.Base+rt.Path, rt.Handler)
		}
	}

	return nil
}
