package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// AuthManager valida tokens e resolve a conta dona de cada um
type AuthManager struct {
	AdminCRUD   *authsvc.AdminService
	ClienteCRUD *authsvc.ClienteService
	Cache       *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager devolve a instância única do AuthManager (singleton)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

func newAuthManager() (*AuthManager, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, err
	}
	clienteService, err := authsvc.NewClienteService()
	if err != nil {
		return nil, err
	}
	return &AuthManager{
		AdminCRUD:   adminService,
		ClienteCRUD: clienteService,
		// 5 minutos de vida, limpeza a cada 10
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// validateToken confere a assinatura do JWT e se o token ainda é o
// gravado na conta (login novo invalida o anterior). Devolve as claims.
func (am *AuthManager) validateToken(ctx context.Context, token string) (*utility.JwtClaims, error) {
	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	cacheKey := "auth_token:" + token
	if _, found := am.Cache.Get(cacheKey); found {
		return claims, nil
	}

	switch claims.Scope {
	case "admin":
		_, err = am.AdminCRUD.FindOne(ctx, bson.M{
			"_id":   utility.String2ObjectID(claims.UserID),
			"token": token,
		}, nil)
	case "cliente":
		_, err = am.ClienteCRUD.FindOne(ctx, bson.M{
			"_id":   utility.String2ObjectID(claims.UserID),
			"token": token,
		}, nil)
	default:
		return nil, common.ErrTokenInvalid
	}
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	am.Cache.Set(cacheKey, claims.UserID)
	return claims, nil
}

// AuthMiddleware autentica a request pelo header Authorization.
// requireScope restringe o escopo aceito: "admin", "cliente" ou ""
// (qualquer conta autenticada).
func AuthMiddleware(requireScope string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logrus.WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("AuthMiddleware: header Authorization ausente")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authManager.validateToken(c.Context(), parts[1])
		if err != nil {
			logrus.WithField("path", c.Path()).Warn("AuthMiddleware: token inválido")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if requireScope != "" && claims.Scope != requireScope {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthScope,
				"Acesso restrito a contas do tipo "+requireScope,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("escopo", claims.Scope)
		return c.Next()
	}
}

// UserIDFromContext lê o id da conta autenticada gravado pelo middleware
func UserIDFromContext(c fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok {
		return v
	}
	return ""
}

// EscopoFromContext lê o escopo da conta autenticada
func EscopoFromContext(c fiber.Ctx) string {
	if v, ok := c.Locals("escopo").(string); ok {
		return v
	}
	return ""
}
