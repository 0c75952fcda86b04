package logger

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/valyala/fasthttp"
)

// novoCtxDeTeste monta um fiber.Ctx mínimo para exercitar o audit.
func novoCtxDeTeste(t *testing.T) (*fiber.App, fiber.Ctx) {
	t.Helper()
	app := fiber.New()
	return app, app.AcquireCtx(&fasthttp.RequestCtx{})
}

func initAuditDeTeste(t *testing.T) *logrustest.Hook {
	t.Helper()
	t.Setenv("LOG_ROOT_DIR", t.TempDir())
	t.Setenv("LOG_OUTPUT", "stdout")
	if err := Init(nil); err != nil {
		t.Fatalf("Init falhou: %v", err)
	}
	hook := logrustest.NewLocal(GetAuditLogger())
	t.Cleanup(hook.Reset)
	return hook
}

func TestLogAuth_RegistraAcaoNoAudit(t *testing.T) {
	hook := initAuditDeTeste(t)
	app, c := novoCtxDeTeste(t)
	defer app.ReleaseCtx(c)

	c.Locals("user_id", "507f1f77bcf86cd799439011")
	LogAuth("login_admin", c, map[string]interface{}{"username": "bhnsilva"})

	entries := hook.AllEntries()
	if len(entries) == 0 {
		t.Fatal("LogAuth deveria gravar uma entry no logger de audit")
	}
	entry := entries[len(entries)-1]
	if entry.Data["action"] != "auth_login_admin" {
		t.Errorf("action = %v, esperado 'auth_login_admin'", entry.Data["action"])
	}
	if entry.Data["user_id"] != "507f1f77bcf86cd799439011" {
		t.Errorf("user_id = %v, esperado o id do contexto", entry.Data["user_id"])
	}
	details, ok := entry.Data["details"].(map[string]interface{})
	if !ok {
		t.Fatalf("details deveria ser um map, veio %T", entry.Data["details"])
	}
	if details["username"] != "bhnsilva" {
		t.Errorf("details.username = %v, esperado 'bhnsilva'", details["username"])
	}
}

func TestLogCRUD_CompoeOperacaoEDetalhes(t *testing.T) {
	hook := initAuditDeTeste(t)
	app, c := novoCtxDeTeste(t)
	defer app.ReleaseCtx(c)

	LogCRUD("update", "produto", "507f1f77bcf86cd799439011", c, nil)

	entries := hook.AllEntries()
	if len(entries) == 0 {
		t.Fatal("LogCRUD deveria gravar uma entry no logger de audit")
	}
	entry := entries[len(entries)-1]
	if entry.Data["action"] != "crud_update" {
		t.Errorf("action = %v, esperado 'crud_update'", entry.Data["action"])
	}
	details, ok := entry.Data["details"].(map[string]interface{})
	if !ok {
		t.Fatalf("details deveria ser um map, veio %T", entry.Data["details"])
	}
	if details["resource_type"] != "produto" {
		t.Errorf("details.resource_type = %v, esperado 'produto'", details["resource_type"])
	}
	if details["resource_id"] != "507f1f77bcf86cd799439011" {
		t.Errorf("details.resource_id = %v", details["resource_id"])
	}
}
