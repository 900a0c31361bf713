package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Bind the default reference grammar to the matcher interface.
	return container.Provide(func() ReferenceMatcher {
		return NewIssueReferenceMatcher()
	})
}
