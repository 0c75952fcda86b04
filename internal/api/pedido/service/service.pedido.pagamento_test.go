package pedidosvc

import (
	"errors"
	"testing"

	pedidodto "github.com/Bryanhudson603/extraplusdelivery/internal/api/pedido/dto"
	"github.com/Bryanhudson603/extraplusdelivery/internal/common"
)

func TestValidarPagamentoCarteira_SemCliente(t *testing.T) {
	err := ValidarPagamentoCarteira("carteira", "")
	if !errors.Is(err, common.ErrClienteNaoIdentificado) {
		t.Errorf("pagamento com carteira sem cliente deveria rejeitar com ErrClienteNaoIdentificado, veio %v", err)
	}
}

func TestValidarPagamentoCarteira_ComCliente(t *testing.T) {
	if err := ValidarPagamentoCarteira("carteira", "507f1f77bcf86cd799439011"); err != nil {
		t.Errorf("pagamento com carteira e cliente identificado deveria passar, veio %v", err)
	}
	if err := ValidarPagamentoCarteira("carteira", "82993107309"); err != nil {
		t.Errorf("telefone também identifica o cliente, veio %v", err)
	}
}

func TestValidarPagamentoCarteira_OutrasFormas(t *testing.T) {
	for _, forma := range []string{"dinheiro", "pix", "cartao", ""} {
		if err := ValidarPagamentoCarteira(forma, ""); err != nil {
			t.Errorf("forma %q sem cliente não deveria exigir identificação, veio %v", forma, err)
		}
	}
}

func TestChaveCarteira_IDVenceTelefone(t *testing.T) {
	input := pedidodto.CriarPedidoInput{
		ClienteID:       "507f1f77bcf86cd799439011",
		ClienteTelefone: "82993107309",
	}
	if got := chaveCarteira(&input); got != "507f1f77bcf86cd799439011" {
		t.Errorf("chave = %q, esperado o id do cliente", got)
	}

	input.ClienteID = ""
	if got := chaveCarteira(&input); got != "82993107309" {
		t.Errorf("chave = %q, esperado o telefone como fallback", got)
	}

	input.ClienteTelefone = ""
	if got := chaveCarteira(&input); got != "" {
		t.Errorf("sem id nem telefone a chave deveria ser vazia, veio %q", got)
	}
}
