package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/container"
	handlers "storefront/internal/interface/http"
	"storefront/internal/interface/middleware"
)

// AccountModule wires the account entry points under /api.
// Public: POST /api/register, POST /api/login, GET /api/signup-policy.
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get a tight per-IP limit; policy reads a looser one.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	policyLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/signup-policy", policyLimiter, m.Handler.SignupPolicy)
}
