package controllers

import (
	"errors"

	"tomyumkitchen/pkg/resp"
	"tomyumkitchen/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/session — anonymous sign-in for the mobile client
func (ac *AuthController) Session(c *gin.Context) {
	out, err := ac.Svc.AnonymousSession()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /auth/admin/login
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := ac.Svc.AdminLogin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}
