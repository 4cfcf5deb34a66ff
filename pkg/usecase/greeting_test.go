package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/helloapi/pkg/domain/interfaces"
	"github.com/m-mizutani/helloapi/pkg/usecase"
)

func TestGreeting_GetHello(t *testing.T) {
	tests := []struct {
		name string
		uc   interfaces.GreetingUseCase
		want string
	}{
		{
			name: "user greeting with configured message",
			uc:   usecase.NewUserGreeting("Hello from user"),
			want: "Hello from user",
		},
		{
			name: "workflow greeting with configured message",
			uc:   usecase.NewWorkflowGreeting("Hello from workflow"),
			want: "Hello from workflow",
		},
		{
			name: "user greeting falls back to default",
			uc:   usecase.NewUserGreeting(""),
			want: usecase.DefaultGreeting,
		},
		{
			name: "workflow greeting falls back to default",
			uc:   usecase.NewWorkflowGreeting(""),
			want: "Hello World!",
		},
		{
			name: "message is returned without trimming",
			uc:   usecase.NewUserGreeting("  héllo\n"),
			want: "  héllo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.uc.GetHello(context.Background())
			gt.NoError(t, err)
			gt.V(t, got).Equal(tt.want)
		})
	}
}
