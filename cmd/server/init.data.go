package main

import (
	"github.com/Bryanhudson603/extraplusdelivery/internal/api/initsvc"
	"github.com/Bryanhudson603/extraplusdelivery/internal/logger"
)

// InitDefaultData semeia a loja padrão e as contas iniciais.
// Cada passo é idempotente: o que já existe fica intacto.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// 1. Loja padrão (a chave de tudo: admins e clientes apontam para ela)
	if err := initService.InitLojaPadrao(); err != nil {
		log.Fatalf("Failed to initialize default loja: %v", err)
	}

	// 2. Conta admin da configuração
	if err := initService.InitAdminPadrao(); err != nil {
		log.Fatalf("Failed to initialize default admin: %v", err)
	}

	// 3. Cliente de exemplo (opcional, só com CLIENTE_TELEFONE no env)
	if err := initService.InitClienteExemplo(); err != nil {
		log.Warnf("Failed to initialize example cliente: %v", err)
	}

	log.Info("InitDefaultData completed successfully")
}
