package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bryanhudson603/extraplusdelivery/config"
	"github.com/Bryanhudson603/extraplusdelivery/internal/logger"
)

// GetInstance inicializa e retorna um *mongo.Client conectado, usando a URI
// de conexão da configuração informada.
//
// Parameters:
//   - c: ponteiro para config.Configuration com os dados de conexão
//
// Returns:
//   - *mongo.Client: cliente MongoDB conectado
//   - error: erro de conexão ou de ping
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	// Options do client
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // No máximo 50 conexões
		SetMinPoolSize(10).                 // Mantém pelo menos 10 conexões no pool
		SetConnectTimeout(5 * time.Second). // Timeout de conexão
		SetSocketTimeout(10 * time.Second)  // Timeout de leitura/escrita

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Confere a conexão
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	err = client.Ping(ctxPing, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Conexão com o MongoDB estabelecida")
	return client, nil
}

// CloseInstance encerra a conexão do cliente MongoDB.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Falha ao desconectar o cliente MongoDB")
		return err
	}
	logger.GetAppLogger().Info("Conexão com o MongoDB encerrada")
	return nil
}
