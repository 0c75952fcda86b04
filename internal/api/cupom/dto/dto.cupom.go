// Package dto - inputs e projeções do domain cupom.
package dto

// CupomCreateInput é o body do create de cupom no admin.
// As datas chegam em RFC3339 e são convertidas para UnixMilli no service.
type CupomCreateInput struct {
	Nome               string   `json:"nome" validate:"required"`
	Codigo             string   `json:"codigo" validate:"required"`
	ValidoDe           string   `json:"validoDe"`
	ValidoAte          string   `json:"validoAte"`
	UsosPorCliente     *int64   `json:"usosPorCliente"`
	QuantidadeTotal    *int64   `json:"quantidadeTotal"`
	Ativo              *bool    `json:"ativo"`
	DescontoPercentual *float64 `json:"descontoPercentual"`
}

// EnviarCupomInput é o body do envio de cupom para clientes.
type EnviarCupomInput struct {
	Clientes []string `json:"clientes" validate:"required"`
}

// EnviarCupomResult é a resposta do envio de cupom.
type EnviarCupomResult struct {
	Codigo   string `json:"codigo"`
	Enviados int64  `json:"enviados"`
}

// CupomClienteItem é um cupom na visão de um cliente, com a
// disponibilidade calculada (ativo + janela + usos restantes).
type CupomClienteItem struct {
	ID                 string   `json:"id"`
	Nome               string   `json:"nome"`
	Codigo             string   `json:"codigo"`
	ValidoDe           *int64   `json:"validoDe,omitempty"`
	ValidoAte          *int64   `json:"validoAte,omitempty"`
	DescontoPercentual *float64 `json:"descontoPercentual,omitempty"`
	UsosPorCliente     *int64   `json:"usosPorCliente,omitempty"`
	UsosConsumidos     int64    `json:"usosConsumidos"`
	Disponivel         bool     `json:"disponivel"`
}
