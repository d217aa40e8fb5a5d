package controllers

import (
	"errors"

	"github.com/KentLacno/ccl-reservation-system/pkg/resp"
	"github.com/KentLacno/ccl-reservation-system/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// GET /login
func (ctl *AuthController) Login(c *gin.Context) {
	resp.OK(c, gin.H{"authorizationUrl": ctl.Auth.AuthorizationURL()})
}

// GET /callback?code=
func (ctl *AuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		resp.BadRequest(c, "missing authorization code")
		return
	}

	token, user, err := ctl.Auth.HandleCallback(c.Request.Context(), code)
	if errors.Is(err, services.ErrEmailDomainNotAllowed) {
		resp.Unauthorized(c, "access denied: invalid email domain")
		return
	}
	if err != nil {
		resp.Unauthorized(c, "authentication failed, please try again")
		return
	}

	profile, err := ctl.Auth.ProfileForUser(user.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token":   token,
		"user":    gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
		"profile": profile,
	})
}
