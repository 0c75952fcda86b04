package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClienteOverride guarda os ajustes de cadastro feitos pelo admin
// (nome, telefone e endereço) por chave canônica de cliente.
// Na agregação de clientes o override vence os dados dos pedidos.
type ClienteOverride struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClienteKey string             `json:"clienteKey" bson:"clienteKey" index:"unique"`
	Nome       string             `json:"nome,omitempty" bson:"nome,omitempty"`
	Telefone   string             `json:"telefone,omitempty" bson:"telefone,omitempty"`
	Endereco   string             `json:"endereco,omitempty" bson:"endereco,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
