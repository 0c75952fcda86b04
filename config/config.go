package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contém as informações estáticas necessárias para rodar a
// aplicação, incluindo a conexão com o banco de dados.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Modo de inicialização (semeia dados padrão)
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Endereço do servidor
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Segredo do JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI de conexão com o MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Nome do banco de dados
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins permitidas (separadas por vírgula, * = todas)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Permite envio de credenciais
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Máximo de requests por janela (0 = desabilita)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Tamanho da janela (segundos)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Liga/desliga o rate limiting

	// Loja padrão e contas semeadas no init
	LojaID          string `env:"LOJA_ID" envDefault:"pc-bebidas"`                    // Identificador da loja padrão
	LojaNome        string `env:"LOJA_NOME" envDefault:"PC Bebidas"`                  // Nome da loja padrão
	AdminUsername   string `env:"ADMIN_USERNAME" envDefault:"admin"`                  // Usuário admin semeado no init
	AdminPassword   string `env:"ADMIN_PASSWORD"`                                     // Senha do admin semeado (vazio = não semeia)
	ClienteTelefone string `env:"CLIENTE_TELEFONE"`                                   // Telefone do cliente de exemplo (vazio = não semeia)
	ClienteSenha    string `env:"CLIENTE_SENHA"`                                      // Senha do cliente de exemplo
	ClienteNome     string `env:"CLIENTE_NOME" envDefault:"Cliente Exemplo"`          // Nome do cliente de exemplo
	ClienteEndereco string `env:"CLIENTE_ENDERECO" envDefault:"Rua das Bebidas, 123"` // Endereço do cliente de exemplo

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL do frontend

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Liga HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Caminho do certificado (.crt ou .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Caminho da chave privada (.key)
}

// getEnvPath retorna o caminho do arquivo env conforme o ambiente
func getEnvPath() string {
	// Por padrão usa o ambiente development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf porque o logger pode não estar inicializado aqui
		fmt.Printf("Não foi possível obter o diretório atual: %v\n", err)
		return ""
	}

	// Sobe na árvore procurando o diretório config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig lê a configuração do arquivo env do ambiente ativo
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// fmt.Printf porque o logger pode não estar inicializado aqui
		fmt.Printf("Diretório config/env não encontrado\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Não foi possível carregar o arquivo env em %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Erro ao fazer parse da configuração: %+v\n", err)
		return nil
	}

	return &cfg
}
