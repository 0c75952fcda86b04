package authsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// ClienteService é o service dos clientes registrados
type ClienteService struct {
	*basesvc.BaseServiceMongoImpl[models.Cliente]
	lojaService *LojaService
}

// NewClienteService cria um ClienteService novo
func NewClienteService() (*ClienteService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clientes)
	if !exist {
		return nil, fmt.Errorf("failed to get clientes collection: %v", common.ErrNotFound)
	}
	lojaService, err := NewLojaService()
	if err != nil {
		return nil, err
	}
	return &ClienteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Cliente](collection),
		lojaService:          lojaService,
	}, nil
}

// LoginCliente autentica um cliente por telefone e senha.
func (s *ClienteService) LoginCliente(ctx context.Context, input *authdto.LoginClienteInput) (*authdto.LoginClienteResult, error) {
	cliente, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"telefone": input.Telefone}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if cliente.SenhaHash != utility.HashPassword(global.MongoDB_ServerConfig.JwtSecret, input.Senha) {
		return nil, common.ErrInvalidCredentials
	}

	loja, err := s.lojaService.FindBySlug(ctx, cliente.LojaSlug)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(
				common.ErrCodeAuthCredentials,
				"Loja não encontrada para este cliente",
				common.StatusUnauthorized,
				nil,
			)
		}
		return nil, err
	}

	token, err := issueToken(cliente.ID.Hex(), "cliente")
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, cliente.ID, updateData); err != nil {
		logrus.WithError(err).Error("LoginCliente: erro ao gravar o token no cliente")
		return nil, err
	}

	return &authdto.LoginClienteResult{
		Tipo:      "cliente",
		ClienteID: cliente.ID.Hex(),
		Telefone:  cliente.Telefone,
		Nome:      cliente.Nome,
		Endereco:  cliente.Endereco,
		Loja:      LojaItemDe(loja),
		Token:     token,
	}, nil
}

// RegisterCliente registra um cliente novo na loja padrão.
// Telefone já registrado responde 401 "Telefone já cadastrado".
func (s *ClienteService) RegisterCliente(ctx context.Context, input *authdto.RegisterClienteInput) (*authdto.LoginClienteResult, error) {
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"telefone": input.Telefone}, nil)
	if err == nil {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Telefone já cadastrado",
			common.StatusUnauthorized,
			nil,
		)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	lojaPadrao, err := s.lojaService.FindBySlug(ctx, global.MongoDB_ServerConfig.LojaID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(
				common.ErrCodeAuthCredentials,
				"Nenhuma loja disponível para cadastro",
				common.StatusUnauthorized,
				nil,
			)
		}
		return nil, err
	}

	cliente := models.Cliente{
		Nome:      input.Nome,
		Telefone:  input.Telefone,
		SenhaHash: utility.HashPassword(global.MongoDB_ServerConfig.JwtSecret, input.Senha),
		Endereco:  input.Endereco,
		LojaSlug:  lojaPadrao.Slug,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, cliente)
	if err != nil {
		// Corrida entre o check e o insert: o índice único segura o duplicado
		logrus.WithField("telefone", input.Telefone).WithError(err).Warn("RegisterCliente: insert rejeitado")
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			"Telefone já cadastrado",
			common.StatusUnauthorized,
			err,
		)
	}

	token, err := issueToken(created.ID.Hex(), "cliente")
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, created.ID, updateData); err != nil {
		return nil, err
	}

	return &authdto.LoginClienteResult{
		Tipo:      "cliente",
		ClienteID: created.ID.Hex(),
		Telefone:  created.Telefone,
		Nome:      created.Nome,
		Endereco:  created.Endereco,
		Loja:      LojaItemDe(lojaPadrao),
		Token:     token,
	}, nil
}

// FindByToken busca o cliente dono do token informado
func (s *ClienteService) FindByToken(ctx context.Context, token string) (models.Cliente, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
}
