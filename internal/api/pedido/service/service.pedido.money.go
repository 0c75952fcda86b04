// Package pedidosvc - services do domain pedido.
package pedidosvc

import (
	"fmt"
	"math"

	pedidodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/dto"
	"github.com/Bryanhudson603/extraplusdelivery/internal/utility"
)

// Funções puras da matemática do pedido. Ficam separadas do fluxo com
// banco para serem testáveis sem Mongo.

// CalcularTotalBruto soma preço unitário × quantidade de todos os itens.
func CalcularTotalBruto(itens []pedidodto.PedidoItemInput) float64 {
	var total float64
	for _, item := range itens {
		total += item.PrecoUnitario * float64(item.Quantidade)
	}
	return total
}

// CalcularDesconto aplica o percentual do cupom sobre o total bruto.
func CalcularDesconto(totalBruto float64, descontoPercentual float64) float64 {
	return utility.Round2(totalBruto * descontoPercentual / 100)
}

// AplicarDesconto devolve o total líquido, nunca negativo.
func AplicarDesconto(totalBruto, desconto float64) float64 {
	total := utility.Round2(totalBruto - desconto)
	if total < 0 {
		return 0
	}
	return total
}

// CalcularRestante devolve quanto falta pagar depois da carteira.
func CalcularRestante(total, usadoCarteira float64) float64 {
	restante := utility.Round2(total - usadoCarteira)
	if restante < 0 {
		return 0
	}
	return restante
}

// CalcularTroco calcula o troco do pagamento em dinheiro.
// Devolve nil quando trocoPara não cobre o restante.
func CalcularTroco(formaPagamento string, trocoPara *float64, restante float64) *float64 {
	if formaPagamento != "dinheiro" || trocoPara == nil {
		return nil
	}
	if *trocoPara <= restante {
		return nil
	}
	troco := utility.Round2(*trocoPara - restante)
	return &troco
}

// CalcularCashback devolve 1% do total, arredondado em 2 casas.
func CalcularCashback(total float64) float64 {
	return utility.Round2(total * 0.01)
}

// GerarPixPayload monta o payload determinístico do QR Code PIX.
func GerarPixPayload(pedidoID string, total float64) string {
	return fmt.Sprintf("PIX:EXTRAPLUS:%s:%.2f", pedidoID, total)
}

// ClampEstoque aplica a baixa de estoque sem deixar negativo.
func ClampEstoque(estoque, quantidade int64) int64 {
	novo := estoque - quantidade
	if novo < 0 {
		return 0
	}
	return novo
}

// ValorCreditavel responde se o valor serve para crédito em carteira.
func ValorCreditavel(valor float64) bool {
	return valor > 0 && !math.IsInf(valor, 0) && !math.IsNaN(valor)
}
