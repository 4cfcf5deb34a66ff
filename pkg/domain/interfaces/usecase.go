package interfaces

import (
	"context"
)

// GreetingUseCase supplies the string served at a controller's base route
type GreetingUseCase interface {
	// GetHello returns the greeting message
	GetHello(ctx context.Context) (string, error)
}
