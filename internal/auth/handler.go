package auth

import (
	"strings"
	"time"

	"kartela-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler: tek kullanıcılı giriş kapısı. Parola config'den gelir,
// karşılaştırma bcrypt üzerinden yapılır. Başarılı girişte mutlak süreli
// bir oturum token'ı döner.
func LoginHandler(cfg *config.Config) fiber.Handler {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Parola hash'lenemedi: %v", err)
	}
	limiter := newLoginLimiter()

	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if !limiter.Allow(c.IP()) {
			return fiber.NewError(fiber.StatusTooManyRequests, "Çok fazla giriş denemesi, lütfen bekleyin")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username != cfg.AdminUsername ||
			bcrypt.CompareHashAndPassword(hash, []byte(body.Password)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, body.Username, cfg.SessionTimeout)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token":      token,
			"expires_in": int(cfg.SessionTimeout.Seconds()),
			"user": fiber.Map{
				"username": body.Username,
			},
		})
	}
}

// MeHandler: oturum geçerliliği uygulama açılışında buradan doğrulanır.
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username":  c.Locals(CtxUsernameKey),
			"validated": time.Now(),
		})
	}
}
