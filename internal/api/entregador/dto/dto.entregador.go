// Package dto - inputs do domain entregador.
package dto

// EntregadorCreateInput é o body do create de entregador.
// Nome vazio cai no padrão "Entregador"; ativo nasce true.
type EntregadorCreateInput struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// EntregadorUpdateInput é o body do update de entregador.
// Só os campos presentes são alterados.
type EntregadorUpdateInput struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Ativo    *bool   `json:"ativo"`
}
