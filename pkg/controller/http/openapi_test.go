package http_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gt"
	controller "github.com/m-mizutani/helloapi/pkg/controller/http"
)

func TestLoadOpenAPI(t *testing.T) {
	doc, err := controller.LoadOpenAPI(context.Background())
	gt.NoError(t, err)
	gt.Value(t, doc).NotNil()

	for _, path := range []string{"/api/user", "/api/user/health", "/api/workflow", "/api/workflow/health", "/workflow"} {
		item := doc.Paths.Find(path)
		gt.Value(t, item).NotNil()
		gt.Value(t, item.Get).NotNil()
	}
}

func TestOpenAPI_ResponsesConform(t *testing.T) {
	ctx := context.Background()
	doc, err := controller.LoadOpenAPI(ctx)
	gt.NoError(t, err)

	tests := []struct {
		name  string
		ctrls []*controller.Controller
		path  string
	}{
		{
			name:  "user greeting",
			ctrls: []*controller.Controller{controller.NewUserController(&greetingMock{msg: "Hello World!"})},
			path:  "/api/user",
		},
		{
			name:  "user greeting error",
			ctrls: []*controller.Controller{controller.NewUserController(&greetingMock{err: errServiceDown})},
			path:  "/api/user",
		},
		{
			name:  "user health",
			ctrls: []*controller.Controller{controller.NewUserController(&greetingMock{})},
			path:  "/api/user/health",
		},
		{
			name:  "workflow greeting",
			ctrls: []*controller.Controller{controller.NewWorkflowController(&greetingMock{msg: "Hello World!"})},
			path:  "/api/workflow",
		},
		{
			name:  "workflow health",
			ctrls: []*controller.Controller{controller.NewWorkflowController(&greetingMock{})},
			path:  "/api/workflow/health",
		},
		{
			name:  "legacy workflow greeting",
			ctrls: []*controller.Controller{controller.NewLegacyWorkflowController(&greetingMock{msg: "Hello World!"})},
			path:  "/workflow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []controller.Option
			for _, c := range tt.ctrls {
				opts = append(opts, controller.WithController(c))
			}
			server := newTestServer(t, opts...)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			server.Handler.ServeHTTP(w, req)

			item := doc.Paths.Find(tt.path)
			gt.Value(t, item).NotNil()

			input := &openapi3filter.ResponseValidationInput{
				RequestValidationInput: &openapi3filter.RequestValidationInput{
					Request: req,
					Route: &routers.Route{
						Spec:      doc,
						Path:      tt.path,
						PathItem:  item,
						Method:    http.MethodGet,
						Operation: item.GetOperation(http.MethodGet),
					},
				},
				Status: w.Code,
				Header: w.Header(),
				Body:   io.NopCloser(bytes.NewReader(w.Body.Bytes())),
			}
			gt.NoError(t, openapi3filter.ValidateResponse(ctx, input))
		})
	}
}

func TestOpenAPI_EveryMountedRouteIsDocumented(t *testing.T) {
	doc, err := controller.LoadOpenAPI(context.Background())
	gt.NoError(t, err)

	for _, routes := range [][]*controller.Controller{
		{controller.NewUserController(&greetingMock{}), controller.NewWorkflowController(&greetingMock{})},
		{controller.NewUserController(&greetingMock{}), controller.NewLegacyWorkflowController(&greetingMock{})},
	} {
		var opts []controller.Option
		for _, c := range routes {
			opts = append(opts, controller.WithController(c))
		}
		server := newTestServer(t, opts...)

		router, ok := server.Handler.(chi.Routes)
		gt.True(t, ok)

		err := chi.Walk(router, func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			if route == "/metrics" {
				return nil
			}
			item := doc.Paths.Find(route)
			gt.Value(t, item).NotNil()
			gt.Value(t, item.GetOperation(method)).NotNil()
			return nil
		})
		gt.NoError(t, err)
	}
}
