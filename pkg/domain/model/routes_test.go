package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/helloapi/pkg/domain/model"
)

func TestParseWorkflowRoutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.WorkflowRoutes
		wantErr bool
	}{
		{name: "api", input: "api", want: model.WorkflowRoutesAPI},
		{name: "legacy", input: "legacy", want: model.WorkflowRoutesLegacy},
		{name: "upper case with spaces", input: " LEGACY ", want: model.WorkflowRoutesLegacy},
		{name: "both variants at once", input: "api,legacy", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "v2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseWorkflowRoutes(tt.input)
			if tt.wantErr {
				gt.True(t, errors.Is(err, model.ErrInvalidWorkflowRoutes))
				return
			}
			gt.NoError(t, err)
			gt.V(t, got).Equal(tt.want)
		})
	}
}

func TestNewHealthStatus(t *testing.T) {
	status := model.NewHealthStatus()
	gt.V(t, status.Status).Equal("up")
}
