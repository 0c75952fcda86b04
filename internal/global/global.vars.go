package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Bryanhudson603/extraplusdelivery/config"
	"github.com/Bryanhudson603/extraplusdelivery/internal/registry"
)

// MongoDB_CollectionName contém os nomes das collections no MongoDB
type MongoDB_CollectionName struct {
	Lojas            string // Collection das lojas
	Admins           string // Collection dos administradores
	Clientes         string // Collection dos clientes registrados
	ClienteOverrides string // Collection dos ajustes de cadastro feitos pelo admin
	Produtos         string // Collection dos produtos do catálogo
	Pedidos          string // Collection dos pedidos
	Cupons           string // Collection dos cupons
	CupomClientes    string // Collection das atribuições de cupom por cliente
	Carteiras        string // Collection das carteiras (saldo por cliente)
	Entregadores     string // Collection dos entregadores
}

// Variáveis globais
var Validate *validator.Validate               // Validador de dados compartilhado
var MongoDB_Session *mongo.Client              // Sessão de conexão com o MongoDB
var MongoDB_ServerConfig *config.Configuration // Configuração do servidor
var MongoDB_ColNames MongoDB_CollectionName    // Nomes das collections

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry das collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry dos databases
