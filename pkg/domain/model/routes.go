package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// WorkflowRoutes selects which workflow controller definition is mounted.
// Both definitions exist in the wild and they overlap, so exactly one of
// them may be active at a time.
type WorkflowRoutes string

const (
	// WorkflowRoutesAPI mounts /api/workflow together with its health route
	WorkflowRoutesAPI WorkflowRoutes = "api"
	// WorkflowRoutesLegacy mounts /workflow without a health route
	WorkflowRoutesLegacy WorkflowRoutes = "legacy"
)

// ErrInvalidWorkflowRoutes is returned for an unknown workflow route set
var ErrInvalidWorkflowRoutes = goerr.New("invalid workflow routes")

// ParseWorkflowRoutes converts a configuration value into WorkflowRoutes
func ParseWorkflowRoutes(s string) (WorkflowRoutes, error) {
	switch r := WorkflowRoutes(strings.ToLower(strings.TrimSpace(s))); r {
	case WorkflowRoutesAPI, WorkflowRoutesLegacy:
		return r, nil
	default:
		return "", goerr.Wrap(ErrInvalidWorkflowRoutes, "unknown workflow routes",
			goerr.V("value", s),
			goerr.V("allowed", []WorkflowRoutes{WorkflowRoutesAPI, WorkflowRoutesLegacy}),
		)
	}
}

func (r WorkflowRoutes) String() string {
	return string(r)
}
