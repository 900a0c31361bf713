package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/autorelease/internal/domain/repositories"
	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/gitrepo"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// The commands receive a factory so each run opens the repository it
	// was pointed at, and tests can substitute a double.
	return container.Provide(func() domainRepos.GitFactory {
		return gitrepo.Open
	})
}
