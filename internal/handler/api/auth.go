package api

import (
	"net/http"

	reqdto "waste-dashboard/internal/handler/dto/request"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/handler/httperr"
	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNoSession = errs.New("no session in context")

type AuthHandler struct {
	commands commands.AuthCommands
	cfg      config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands: cmds,
		cfg:      cfg,
	}
}

// @Summary User login
// @Description Login against the upstream backend and open a dashboard session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Authentication service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        resdto.NewSessionResponse(result.Session),
	})
}

// @Summary User logout
// @Description Clear the dashboard session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "User not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewSessionResponse(sess))
}
