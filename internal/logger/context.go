package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ContextKey é o tipo das chaves de contexto do logger
type ContextKey string

const (
	// RequestIDKey é a chave do request ID no contexto
	RequestIDKey ContextKey = "requestID"
	// UserIDKey é a chave do user ID no contexto
	UserIDKey ContextKey = "userID"
	// ServiceKey é a chave do nome do serviço no contexto
	ServiceKey ContextKey = "service"
)

// WithContext retorna uma entry do logger enriquecida com o contexto
func WithContext(ctx context.Context) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(ctx)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		entry = entry.WithField("request_id", requestID)
	}
	if userID := ctx.Value(UserIDKey); userID != nil {
		entry = entry.WithField("user_id", userID)
	}
	if service := ctx.Value(ServiceKey); service != nil {
		entry = entry.WithField("service", service)
	}

	return entry
}

// WithRequest retorna uma entry do logger com os dados da requisição Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(context.Background())

	// O middleware de request ID do Fiber grava em Locals("requestid")
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	entry = entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	if userID := c.Locals("user_id"); userID != nil {
		entry = entry.WithField("user_id", userID)
	}

	return entry
}
