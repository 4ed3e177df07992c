package http

import (
	"github.com/gofiber/fiber/v2"
)

// AuthHandler frontera mínima con el colaborador de autenticación externo.
// Este módulo no administra credenciales ni sesiones; solo consume la
// acción de cierre de sesión.
type AuthHandler struct{}

// NewAuthHandler construye el handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Logout cierra la sesión del actor. Con tokens JWT sin estado el servidor
// no guarda nada que invalidar: el cliente descarta su token y el endpoint
// confirma la acción.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "signed_out"})
}
