package router

import (
	"storefront/internal/application"
	"storefront/internal/container"
	handlers "storefront/internal/interface/http"
	"storefront/internal/infrastructure/postgres"
	"storefront/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(r *Registry) {
	repo := postgres.NewUserRepository(container.GetPGPool())
	logger := container.GetLogger()

	accounts := application.NewAccountService(repo, logger)
	policy := application.NewSignupPolicy(repo, container.GetSettings(), logger)
	accountHandler := handlers.NewAccountHandler(accounts, policy, logger)
	r.Add(modules.NewAccountModule(accountHandler))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}

	uploadHandler := handlers.NewUploadHandler(container.GetUploads(), logger)
	modules.NewUploadModule(uploadHandler).Mount(r.Engine)
}
