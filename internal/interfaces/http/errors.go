package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/domain"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// errorMapping código HTTP y código de error para un error de dominio.
type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: los errores tipados se comparan antes que los genéricos.
var errorMappings = []errorMapping{
	{domain.ErrInvalidMovement, fiber.StatusBadRequest, "INVALID_MOVEMENT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrStaleCount, fiber.StatusConflict, "STALE_COUNT"},
	{domain.ErrStalePickList, fiber.StatusConflict, "STALE_PICK_LIST"},
	{domain.ErrConcurrencyConflict, fiber.StatusConflict, "CONCURRENCY_CONFLICT"},
	{domain.ErrNothingToPick, fiber.StatusConflict, "NOTHING_TO_PICK"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrInvariantViolation, fiber.StatusInternalServerError, "INVARIANT_VIOLATION"},
}

// writeError traduce err a dto.ErrorResponse. Los detalles de InsufficientStockError y
// StaleCountError viajan en Details para que la UI muestre las cantidades.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg(m.code)
		}
		return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error(), Details: errorDetails(err)})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func errorDetails(err error) interface{} {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return fiber.Map{
			"product_id":   insufficient.ProductID,
			"warehouse_id": insufficient.WarehouseID,
			"requested":    insufficient.Requested,
			"available":    insufficient.Available,
		}
	}
	var stale *domain.StaleCountError
	if errors.As(err, &stale) {
		return fiber.Map{
			"product_id":   stale.ProductID,
			"warehouse_id": stale.WarehouseID,
			"expected":     stale.Expected,
			"actual":       stale.Actual,
		}
	}
	return nil
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func validation(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

// identity devuelve empresa y usuario del token; ok=false si ya respondió 401.
func identity(c *fiber.Ctx) (companyID, userID string, ok bool) {
	companyID, userID = GetCompanyID(c), GetUserID(c)
	if companyID == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
		return "", "", false
	}
	return companyID, userID, true
}

// page lee limit/offset con los topes de siempre.
func page(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
