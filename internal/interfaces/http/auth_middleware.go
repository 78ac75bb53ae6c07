package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/pkg/jwt"
)

const localIdentity = "identity"

// AuthMiddleware valida el Bearer Token emitido por la aplicación principal y deja la identidad
// en c.Locals. Este servicio no emite tokens ni evalúa permisos.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "se requiere Authorization: Bearer <token>"})
		}
		id, err := jwt.Parse(jwtSecret, issuer, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localIdentity, id)
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func currentIdentity(c *fiber.Ctx) jwt.Identity {
	id, _ := c.Locals(localIdentity).(jwt.Identity)
	return id
}

// GetUserID usuario del token (vacío si la ruta no pasó por AuthMiddleware).
func GetUserID(c *fiber.Ctx) string { return currentIdentity(c).UserID }

// GetCompanyID empresa del token.
func GetCompanyID(c *fiber.Ctx) string { return currentIdentity(c).CompanyID }
