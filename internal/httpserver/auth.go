package httpserver

import (
	"net/http"
	"strings"

	"storefront/internal/domain"
	sessionstore "storefront/internal/store/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialLoginRequest struct {
	IDToken     string `json:"idToken"`
	AccessToken string `json:"accessToken"`
}

func sessionHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, session.State())
	}
}

func loginHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		if !session.Login(c.Request.Context(), req.Email, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusOK, session.State())
	}
}

func credentialLoginHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.IDToken == "" && req.AccessToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a credential token is required"})
			return
		}
		if !session.LoginWithCredential(c.Request.Context(), req.IDToken, req.AccessToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "credential rejected"})
			return
		}
		c.JSON(http.StatusOK, session.State())
	}
}

func registerHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !session.Register(c.Request.Context(), req) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "registration failed"})
			return
		}
		c.JSON(http.StatusCreated, session.State())
	}
}

func logoutHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Logout(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}

func updateProfileHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sessionstore.ProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if !session.UpdateProfile(c.Request.Context(), req) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authenticated user"})
			return
		}
		c.JSON(http.StatusOK, session.State())
	}
}

func resetPasswordHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		res := session.ResetPassword(c.Request.Context(), req.Email)
		status := http.StatusOK
		if !res.OK {
			status = http.StatusBadRequest
		}
		c.JSON(status, res)
	}
}

func emailVerificationHandler(session *sessionstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := session.SendEmailVerification(c.Request.Context())
		status := http.StatusOK
		if !res.OK {
			status = http.StatusBadRequest
		}
		c.JSON(status, res)
	}
}
