// Package initsvc semeia os dados padrão (loja, admin, cliente de exemplo).
// Package separado para evitar import cycle com auth/service.
package initsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
	authsvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/service"
	basesvc "github.com/Bryanhudson603/extraplusdelivery/internal/api/base/service"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
	"github.com/Bryanhudson603/extraplusdelivery/internal/logger"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// InitService semeia a loja padrão e as contas iniciais
type InitService struct {
	lojaService    *authsvc.LojaService
	adminService   *authsvc.AdminService
	clienteService *authsvc.ClienteService
}

// NewInitService cria um InitService novo
func NewInitService() (*InitService, error) {
	lojaService, err := authsvc.NewLojaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create loja service: %v", err)
	}
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	clienteService, err := authsvc.NewClienteService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cliente service: %v", err)
	}
	return &InitService{
		lojaService:    lojaService,
		adminService:   adminService,
		clienteService: clienteService,
	}, nil
}

// InitLojaPadrao garante a loja padrão da configuração (slug + nome)
func (s *InitService) InitLojaPadrao() error {
	cfg := global.MongoDB_ServerConfig
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	_, err := s.lojaService.FindBySlug(ctx, cfg.LojaID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	loja := authmodels.Loja{
		Slug:     cfg.LojaID,
		Nome:     cfg.LojaNome,
		IsSystem: true,
	}
	if _, err := s.lojaService.InsertOne(ctx, loja); err != nil {
		return fmt.Errorf("failed to seed loja %s: %v", cfg.LojaID, err)
	}
	logger.GetAppLogger().Infof("Loja padrão semeada: %s (%s)", cfg.LojaNome, cfg.LojaID)
	return nil
}

// InitAdminPadrao garante a conta admin da configuração.
// Sem ADMIN_PASSWORD no env, nada é semeado.
func (s *InitService) InitAdminPadrao() error {
	cfg := global.MongoDB_ServerConfig
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.GetAppLogger().Info("ADMIN_PASSWORD não configurado, admin padrão não semeado")
		return nil
	}
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	_, err := s.adminService.FindOne(ctx, bson.M{"username": cfg.AdminUsername}, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	admin := authmodels.Admin{
		Username:  cfg.AdminUsername,
		SenhaHash: utility.HashPassword(cfg.JwtSecret, cfg.AdminPassword),
		LojaSlug:  cfg.LojaID,
		IsSystem:  true,
	}
	if _, err := s.adminService.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin %s: %v", cfg.AdminUsername, err)
	}
	logger.GetAppLogger().Infof("Admin padrão semeado: %s", cfg.AdminUsername)
	return nil
}

// InitClienteExemplo garante o cliente de exemplo da configuração.
// Sem CLIENTE_TELEFONE/CLIENTE_SENHA no env, nada é semeado.
func (s *InitService) InitClienteExemplo() error {
	cfg := global.MongoDB_ServerConfig
	if cfg.ClienteTelefone == "" || cfg.ClienteSenha == "" {
		logger.GetAppLogger().Info("CLIENTE_TELEFONE não configurado, cliente de exemplo não semeado")
		return nil
	}
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	_, err := s.clienteService.FindOne(ctx, bson.M{"telefone": cfg.ClienteTelefone}, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	cliente := authmodels.Cliente{
		Nome:      cfg.ClienteNome,
		Telefone:  cfg.ClienteTelefone,
		SenhaHash: utility.HashPassword(cfg.JwtSecret, cfg.ClienteSenha),
		Endereco:  cfg.ClienteEndereco,
		LojaSlug:  cfg.LojaID,
		IsSystem:  true,
	}
	if _, err := s.clienteService.InsertOne(ctx, cliente); err != nil {
		return fmt.Errorf("failed to seed cliente %s: %v", cfg.ClienteTelefone, err)
	}
	logger.GetAppLogger().Infof("Cliente de exemplo semeado: %s", cfg.ClienteTelefone)
	return nil
}
