// Package models - models do domain entregador.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entregador define um entregador da loja.
// A remoção é protegida: entregador com pedidos atribuídos não sai.
type Entregador struct {
	_Relationships struct{}           `relationship:"collection:pedidos,field:entregadorId,message:Não é possível remover o entregador: %d pedido(s) estão atribuídos a ele."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome           string             `json:"nome" bson:"nome" default:"Entregador"`
	Telefone       string             `json:"telefone,omitempty" bson:"telefone,omitempty"`
	Ativo          bool               `json:"ativo" bson:"ativo" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// EntregadorEstatistica é a contagem de entregas de um entregador.
type EntregadorEstatistica struct {
	EntregadorID string `json:"entregadorId" bson:"_id"`
	Nome         string `json:"nome" bson:"nome"`
	Entregas     int64  `json:"entregas" bson:"entregas"`
}
