package internal

import (
	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// AppInternal aggregates the CLI-facing controllers so the entry point can
// build its subcommands without knowing the individual types.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the app aggregate from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
