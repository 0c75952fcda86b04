package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// AdminService é o service das contas de administrador
type AdminService struct {
	*basesvc.BaseServiceMongoImpl[models.Admin]
	lojaService *LojaService
}

// NewAdminService cria um AdminService novo
func NewAdminService() (*AdminService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Admins)
	if !exist {
		return nil, fmt.Errorf("failed to get admins collection: %v", common.ErrNotFound)
	}
	lojaService, err := NewLojaService()
	if err != nil {
		return nil, err
	}
	return &AdminService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Admin](collection),
		lojaService:          lojaService,
	}, nil
}

// issueToken gera um JWT novo para a conta e devolve o token assinado.
// O timestamp e um número aleatório entram nas claims para que cada
// login gere um token diferente.
func issueToken(userID string, scope string) (string, error) {
	timeHex := strconv.FormatInt(time.Now().UnixMilli(), 16)
	randomNumber := strconv.Itoa(rand.Intn(1000000))
	return utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, userID, scope, timeHex, randomNumber)
}

// LoginAdmin autentica um administrador por username e senha.
// Credenciais erradas respondem 401 sem distinguir usuário de senha.
func (s *AdminService) LoginAdmin(ctx context.Context, input *authdto.LoginAdminInput) (*authdto.LoginAdminResult, error) {
	admin, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"username": input.Username}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if admin.SenhaHash != utility.HashPassword(global.MongoDB_ServerConfig.JwtSecret, input.Password) {
		return nil, common.ErrInvalidCredentials
	}

	loja, err := s.lojaService.FindBySlug(ctx, admin.LojaSlug)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(
				common.ErrCodeAuthCredentials,
				"Loja não encontrada para este administrador",
				common.StatusUnauthorized,
				nil,
			)
		}
		return nil, err
	}

	token, err := issueToken(admin.ID.Hex(), "admin")
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, admin.ID, updateData); err != nil {
		logrus.WithError(err).Error("LoginAdmin: erro ao gravar o token no admin")
		return nil, err
	}

	return &authdto.LoginAdminResult{
		Tipo:     "admin",
		AdminID:  admin.ID.Hex(),
		Username: admin.Username,
		Loja:     LojaItemDe(loja),
		Token:    token,
	}, nil
}
