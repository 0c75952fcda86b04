package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Bryanhudson603/extraplusdelivery/config"
	authmodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
	carteiramodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/carteira/models"
	catalogomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/catalogo/models"
	cupommodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/cupom/models"
	entregadormodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/entregador/models"
	pedidomodels "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/models"
	"github.com/Bryanhudson603/extraplusdelivery/internal/database"
	"github.com/Bryanhudson603/extraplusdelivery/internal/global"
)

// InitGlobal inicializa as variáveis globais da aplicação
func InitGlobal() {
	initColNames()         // Nomes das collections no banco
	initValidator()        // Validador compartilhado
	initConfig()           // Configuração do servidor
	initDatabase_MongoDB() // Conexão com o banco
}

// Nomes das collections do banco
func initColNames() {
	global.MongoDB_ColNames.Lojas = "lojas"
	global.MongoDB_ColNames.Admins = "admins"
	global.MongoDB_ColNames.Clientes = "clientes"
	global.MongoDB_ColNames.ClienteOverrides = "cliente_overrides"
	global.MongoDB_ColNames.Produtos = "produtos"
	global.MongoDB_ColNames.Pedidos = "pedidos"
	global.MongoDB_ColNames.Cupons = "cupons"
	global.MongoDB_ColNames.CupomClientes = "cupom_clientes"
	global.MongoDB_ColNames.Carteiras = "carteiras"
	global.MongoDB_ColNames.Entregadores = "entregadores"

	logrus.Info("Initialized collection names")
}

func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Conexão com o MongoDB, garantia das collections e criação dos indexes
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Lojas), authmodels.Loja{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Admins), authmodels.Admin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Clientes), authmodels.Cliente{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ClienteOverrides), authmodels.ClienteOverride{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Produtos), catalogomodels.Produto{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Pedidos), pedidomodels.Pedido{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Cupons), cupommodels.Cupom{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.CupomClientes), cupommodels.CupomCliente{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Carteiras), carteiramodels.Carteira{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Entregadores), entregadormodels.Entregador{})
}
