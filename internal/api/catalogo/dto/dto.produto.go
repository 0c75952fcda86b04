// Package dto - inputs e projeções do domain catálogo.
package dto

// ProdutoInput é o body do create/update de produto no admin.
// unitPrice é aceito como alias de price (contrato antigo do frontend).
type ProdutoInput struct {
	ID               string   `json:"id"`
	Nome             string   `json:"name" validate:"required"`
	Preco            *float64 `json:"price"`
	PrecoUnitario    *float64 `json:"unitPrice"`
	PrecoPromocional *float64 `json:"promoPrice"`
	Estoque          int64    `json:"stock"`
	Tags             []string `json:"tags"`
	Ativo            *bool    `json:"active"`
	ImagemURL        string   `json:"imageUrl"`
	Categoria        string   `json:"category"`
	Volume           string   `json:"volume"`
	QuantidadePacote *int64   `json:"packQuantity"`
	PrecoPacote      *float64 `json:"packPrice"`
}

// PrecoEfetivo resolve o alias: unitPrice vence quando presente.
func (in *ProdutoInput) PrecoEfetivo() float64 {
	if in.PrecoUnitario != nil {
		return *in.PrecoUnitario
	}
	if in.Preco != nil {
		return *in.Preco
	}
	return 0
}

// CategoriaItem é um item da listagem fixa de categorias.
type CategoriaItem struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Slug string `json:"slug"`
}

// ProdutoClienteItem é a projeção pública de um produto no catálogo.
type ProdutoClienteItem struct {
	ID               string   `json:"id"`
	Nome             string   `json:"name"`
	Imagem           string   `json:"image"`
	Preco            float64  `json:"price"`
	PrecoPromocional *float64 `json:"promoPrice,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	CategoriaID      string   `json:"categoryId,omitempty"`
	QuantidadePacote *int64   `json:"packQuantity,omitempty"`
	PrecoPacote      *float64 `json:"packPrice,omitempty"`
}
