package controllerImp

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"ribbon/pkg/auth/controller"
	"ribbon/pkg/middleware"
)

const sessionTTL = 24 * time.Hour

type authCtrl struct {
	password string
	secret   string
}

func NewAuthController(adminPassword, sessionSecret string) controller.AuthController {
	return &authCtrl{password: adminPassword, secret: sessionSecret}
}

// Login exchanges the admin password for a session cookie holding an HS256
// token. Refused outright when no password is configured.
func (h *authCtrl) Login(c echo.Context) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if h.password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "wrong password"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "sign session"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(sessionTTL),
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
