package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

// JSONResponse responde JSON com Content-Type: application/json; charset=utf-8.
// Garante o charset em todas as respostas para acentuação correta.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse monta a resposta de erro para o client.
// Separado do handler para evitar import cycle.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
