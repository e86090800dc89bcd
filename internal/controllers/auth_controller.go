package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleet_manager/internal/middleware"
	"fleet_manager/internal/models"
)

type AuthService interface {
	Register(in models.RegisterInput) (models.Credential, error)
	Login(in models.LoginInput) (string, error)
}

type AuthController struct {
	auth AuthService
}

func NewAuthController(auth AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	cred, err := ac.auth.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("credential_id", cred.ID).Info("Credential registered")
	c.JSON(http.StatusCreated, gin.H{"message": "User Registered"})
}

// Login returns the token both in the auth-token header and in the body.
func (ac *AuthController) Login(c *gin.Context) {
	var input models.LoginInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}

	token, err := ac.auth.Login(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(middleware.TokenHeader, token)
	c.JSON(http.StatusOK, gin.H{"jwt": token})
}
