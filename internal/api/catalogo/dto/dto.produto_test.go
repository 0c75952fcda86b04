// Package dto - testes do alias de preço do produto.
package dto

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestPrecoEfetivo_UnitPriceVence(t *testing.T) {
	input := &ProdutoInput{Preco: floatPtr(10), PrecoUnitario: floatPtr(8.5)}
	if preco := input.PrecoEfetivo(); preco != 8.5 {
		t.Errorf("unitPrice deveria vencer o price, veio %v", preco)
	}
}

func TestPrecoEfetivo_CaiParaPrice(t *testing.T) {
	input := &ProdutoInput{Preco: floatPtr(10)}
	if preco := input.PrecoEfetivo(); preco != 10 {
		t.Errorf("sem unitPrice deveria usar o price, veio %v", preco)
	}
}

func TestPrecoEfetivo_SemPrecoViraZero(t *testing.T) {
	input := &ProdutoInput{}
	if preco := input.PrecoEfetivo(); preco != 0 {
		t.Errorf("sem nenhum preço deveria ser 0, veio %v", preco)
	}
}
