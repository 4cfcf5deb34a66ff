package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/helloapi/pkg/domain/interfaces"
)

// DefaultGreeting is returned when no message is configured
const DefaultGreeting = "Hello World!"

type greetingUseCase struct {
	service string
	message string
}

// NewUserGreeting creates the greeting service backing the user controller
func NewUserGreeting(message string) interfaces.GreetingUseCase {
	return newGreeting("user", message)
}

// NewWorkflowGreeting creates the greeting service backing the workflow controller
func NewWorkflowGreeting(message string) interfaces.GreetingUseCase {
	return newGreeting("workflow", message)
}

func newGreeting(service, message string) *greetingUseCase {
	if message == "" {
		message = DefaultGreeting
	}
	return &greetingUseCase{
		service: service,
		message: message,
	}
}

// GetHello returns the configured greeting unmodified
func (uc *greetingUseCase) GetHello(ctx context.Context) (string, error) {
	ctxlog.From(ctx).Debug("Serving greeting",
		"service", uc.service,
		"length", len(uc.message),
	)
	return uc.message, nil
}
