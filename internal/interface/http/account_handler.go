package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/application"
	"storefront/pkg/validation"
)

// AccountHandler exposes registration, login and the signup policy to the
// UI layer. Responses are the flat result objects the UI renders; no
// session or token is issued here.
type AccountHandler struct {
	Accounts *application.AccountService
	Policy   *application.SignupPolicy
	Logger   *logrus.Logger
}

func NewAccountHandler(accounts *application.AccountService, policy *application.SignupPolicy, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Accounts: accounts, Policy: policy, Logger: logger}
}

type registerRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Register handles POST /api/register. Validation failures come back as
// field-keyed errors; everything else is a flat result object.
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.ToDetails(err)})
		return
	}
	res := h.Accounts.Register(c.Request.Context(), req.Email, req.Password)
	c.JSON(http.StatusOK, res)
}

// Login handles POST /api/login. The login password check is looser than
// registration's minimum on purpose: it only has to match an existing hash.
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data provided."})
		return
	}
	res := h.Accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	c.JSON(http.StatusOK, res)
}

// SignupPolicy handles GET /api/signup-policy so the login page can decide
// whether to render the signup link.
func (h *AccountHandler) SignupPolicy(c *gin.Context) {
	allow := h.Policy.SignupAllowed(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"allow_signups": allow})
}
