// Package models - models do domain carteira.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Carteira guarda o saldo de um cliente, indexado pela chave canônica
// (hex do id do cliente, ou o telefone nos pedidos antigos).
// O saldo nunca fica negativo: todo débito é conferido antes.
type Carteira struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ClienteKey string             `json:"id" bson:"clienteKey" index:"unique"`
	Saldo      float64            `json:"saldo" bson:"saldo"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
