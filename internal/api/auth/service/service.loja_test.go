package authsvc

import (
	"encoding/json"
	"strings"
	"testing"

	authdto "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/dto"
	models "github.com/Bryanhudson603/extraplusdelivery/internal/api/auth/models"
)

func TestLojaItemDe_FormatoPublico(t *testing.T) {
	loja := models.Loja{Slug: "pc-bebidas", Nome: "PC Bebidas"}

	item := LojaItemDe(loja)
	if item.ID != "pc-bebidas" {
		t.Errorf("ID = %q, esperado o slug da loja", item.ID)
	}
	if item.Nome != "PC Bebidas" {
		t.Errorf("Nome = %q, esperado 'PC Bebidas'", item.Nome)
	}
	if item.Slug != "pc-bebidas" {
		t.Errorf("Slug = %q, esperado 'pc-bebidas'", item.Slug)
	}
}

func TestLoginResult_LojaComoObjeto(t *testing.T) {
	resultado := authdto.LoginAdminResult{
		Tipo:     "admin",
		AdminID:  "507f1f77bcf86cd799439011",
		Username: "bhnsilva",
		Loja:     authdto.LojaItem{ID: "pc-bebidas", Nome: "PC Bebidas", Slug: "pc-bebidas"},
		Token:    "t",
	}

	raw, err := json.Marshal(resultado)
	if err != nil {
		t.Fatalf("marshal falhou: %v", err)
	}
	corpo := string(raw)
	if !strings.Contains(corpo, `"loja":{`) {
		t.Errorf("a resposta de login deveria carregar a loja como objeto, veio: %s", corpo)
	}
	if !strings.Contains(corpo, `"slug":"pc-bebidas"`) {
		t.Errorf("o objeto da loja deveria carregar o slug, veio: %s", corpo)
	}
}
