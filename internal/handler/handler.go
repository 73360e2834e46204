package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"

	"postboard/internal/service"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	HealthCheck() error
	CountTables(ctx context.Context) (int, error)
}

type Handlers struct {
	UserService service.UserService
	PostService service.PostService
	DB          HealthChecker
	Validate    *validator.Validate
	Log         *zap.Logger
}

func NewHandlers(services *service.Service, db HealthChecker, log *zap.Logger) *Handlers {
	return &Handlers{
		UserService: services.User,
		PostService: services.Post,
		DB:          db,
		Validate:    NewValidator(),
		Log:         log,
	}
}

// NewValidator returns a validator that also knows the notblank tag.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return validate
}
