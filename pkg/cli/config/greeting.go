package config

import (
	"github.com/m-mizutani/helloapi/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Greeting holds the messages returned by the greeting endpoints
type Greeting struct {
	User     string
	Workflow string
}

// Flags returns CLI flags for greeting configuration
func (c *Greeting) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user-greeting",
			Usage:       "Message served at GET /api/user",
			Value:       usecase.DefaultGreeting,
			Destination: &c.User,
			Sources:     cli.EnvVars("HELLOAPI_USER_GREETING"),
		},
		&cli.StringFlag{
			Name:        "workflow-greeting",
			Usage:       "Message served at the workflow base route",
			Value:       usecase.DefaultGreeting,
			Destination: &c.Workflow,
			Sources:     cli.EnvVars("HELLOAPI_WORKFLOW_GREETING"),
		},
	}
}
