package httpHandler

import (
	"errors"
	"moodgut-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *usecases.UserUseCase
}

func NewAuthHandler(users *usecases.UserUseCase) *AuthHandler {
	return &AuthHandler{users: users}
}

// Home handles GET /
func (h *AuthHandler) Home(c *gin.Context) {
	if _, ok := currentUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": popFlash(c)})
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": popFlash(c)})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.users.Register(username, password)
	switch {
	case errors.Is(err, usecases.ErrUsernameTaken):
		setFlash(c, "Username already exists!")
		c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, usecases.ErrInvalidInput):
		setFlash(c, "Username and password are required.")
		c.Redirect(http.StatusSeeOther, "/register")
	case err != nil:
		setFlash(c, "Registration failed, please try again.")
		c.Redirect(http.StatusSeeOther, "/register")
	default:
		setFlash(c, "Registration successful! Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := currentUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": popFlash(c)})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.users.Authenticate(username, password)
	if err != nil {
		// Redisplay the form; unknown user and wrong password look the same.
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid credentials."})
		return
	}

	token, err := IssueSessionToken(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Could not start session."})
		return
	}
	setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
