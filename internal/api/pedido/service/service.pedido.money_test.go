// Package pedidosvc - testes da matemática de valores do pedido.
package pedidosvc

import (
	"testing"

	pedidodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/dto"
)

func TestCalcularTotalBruto_SomaItens(t *testing.T) {
	itens := []pedidodto.PedidoItemInput{
		{Nome: "Cerveja Lata", Quantidade: 3, PrecoUnitario: 4.50},
		{Nome: "Energético", Quantidade: 2, PrecoUnitario: 8.00},
	}
	total := CalcularTotalBruto(itens)
	if total != 29.50 {
		t.Errorf("total bruto esperado 29.50, veio %v", total)
	}
}

func TestCalcularDesconto_ArredondaDoisDigitos(t *testing.T) {
	desconto := CalcularDesconto(100, 10)
	if desconto != 10 {
		t.Errorf("desconto de 10%% sobre 100 esperado 10, veio %v", desconto)
	}

	// 33.33 * 15% = 4.9995, arredonda para 5.00
	desconto = CalcularDesconto(33.33, 15)
	if desconto != 5.00 {
		t.Errorf("desconto esperado 5.00, veio %v", desconto)
	}
}

func TestAplicarDesconto_NuncaNegativo(t *testing.T) {
	if total := AplicarDesconto(100, 10); total != 90 {
		t.Errorf("total com desconto esperado 90, veio %v", total)
	}
	if total := AplicarDesconto(10, 50); total != 0 {
		t.Errorf("desconto maior que o total deve zerar, veio %v", total)
	}
}

func TestCalcularRestante_DescontaCarteira(t *testing.T) {
	if restante := CalcularRestante(90, 40); restante != 50 {
		t.Errorf("restante esperado 50, veio %v", restante)
	}
	// Carteira cobrindo mais que o total não deixa restante negativo
	if restante := CalcularRestante(30, 50); restante != 0 {
		t.Errorf("restante esperado 0, veio %v", restante)
	}
}

func TestCalcularTroco_SoDinheiroComTrocoMaior(t *testing.T) {
	trocoPara := 50.0
	troco := CalcularTroco("dinheiro", &trocoPara, 47.50)
	if troco == nil || *troco != 2.50 {
		t.Errorf("troco esperado 2.50, veio %v", troco)
	}

	// trocoPara igual ou menor que o restante não gera troco
	trocoPara = 47.50
	if troco := CalcularTroco("dinheiro", &trocoPara, 47.50); troco != nil {
		t.Errorf("trocoPara igual ao restante não deve gerar troco, veio %v", *troco)
	}

	// Outras formas de pagamento nunca geram troco
	trocoPara = 100.0
	if troco := CalcularTroco("pix", &trocoPara, 47.50); troco != nil {
		t.Errorf("pix não deve gerar troco, veio %v", *troco)
	}

	if troco := CalcularTroco("dinheiro", nil, 47.50); troco != nil {
		t.Errorf("sem trocoPara não deve gerar troco, veio %v", *troco)
	}
}

func TestCalcularCashback_UmPorCento(t *testing.T) {
	if cashback := CalcularCashback(90); cashback != 0.90 {
		t.Errorf("cashback de 90 esperado 0.90, veio %v", cashback)
	}
	// 123.45 * 1% = 1.2345, arredonda para 1.23
	if cashback := CalcularCashback(123.45); cashback != 1.23 {
		t.Errorf("cashback de 123.45 esperado 1.23, veio %v", cashback)
	}
}

func TestGerarPixPayload_Formato(t *testing.T) {
	payload := GerarPixPayload("abc123", 90)
	esperado := "PIX:EXTRAPLUS:abc123:90.00"
	if payload != esperado {
		t.Errorf("payload esperado %q, veio %q", esperado, payload)
	}

	payload = GerarPixPayload("xyz", 47.5)
	esperado = "PIX:EXTRAPLUS:xyz:47.50"
	if payload != esperado {
		t.Errorf("payload esperado %q, veio %q", esperado, payload)
	}
}

func TestClampEstoque_NaoFicaNegativo(t *testing.T) {
	if estoque := ClampEstoque(10, 3); estoque != 7 {
		t.Errorf("estoque esperado 7, veio %v", estoque)
	}
	// Venda maior que o estoque zera em vez de ficar negativo
	if estoque := ClampEstoque(3, 5); estoque != 0 {
		t.Errorf("estoque esperado 0, veio %v", estoque)
	}
}

func TestValorCreditavel(t *testing.T) {
	if !ValorCreditavel(0.90) {
		t.Error("0.90 deve ser creditável")
	}
	if ValorCreditavel(0) {
		t.Error("zero não deve ser creditável")
	}
	if ValorCreditavel(-5) {
		t.Error("valor negativo não deve ser creditável")
	}
}
