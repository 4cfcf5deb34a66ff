package config

import (
	"time"

	"github.com/m-mizutani/helloapi/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	WorkflowRoutes    string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("HELLOAPI_ADDR"),
		},
		&cli.DurationFlag{
			Name:        "read-header-timeout",
			Usage:       "Time allowed to read request headers",
			Value:       15 * time.Second,
			Destination: &c.ReadHeaderTimeout,
			Sources:     cli.EnvVars("HELLOAPI_READ_HEADER_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "workflow-routes",
			Usage:       "Workflow controller definition to mount (api: /api/workflow with health, legacy: /workflow)",
			Value:       string(model.WorkflowRoutesAPI),
			Destination: &c.WorkflowRoutes,
			Sources:     cli.EnvVars("HELLOAPI_WORKFLOW_ROUTES"),
		},
	}
}

// Workflow returns the validated workflow route selection
func (c *Server) Workflow() (model.WorkflowRoutes, error) {
	return model.ParseWorkflowRoutes(c.WorkflowRoutes)
}
