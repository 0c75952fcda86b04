// Package models - models do domain catálogo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Produto define um produto do catálogo da loja.
// As chaves json/bson seguem o contrato do frontend (name, price, stock...).
type Produto struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome             string             `json:"name" bson:"name" index:"text"`
	Preco            float64            `json:"price" bson:"price"`
	PrecoPromocional *float64           `json:"promoPrice,omitempty" bson:"promoPrice,omitempty"`
	Estoque          int64              `json:"stock" bson:"stock"`
	Tags             []string           `json:"tags" bson:"tags"`
	Ativo            bool               `json:"active" bson:"active" default:"true"`
	ImagemURL        string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Categoria        string             `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	Volume           string             `json:"volume,omitempty" bson:"volume,omitempty"`
	QuantidadePacote *int64             `json:"packQuantity,omitempty" bson:"packQuantity,omitempty"`
	PrecoPacote      *float64           `json:"packPrice,omitempty" bson:"packPrice,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
