package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
)

func decodeHome(t *testing.T, w *httptest.ResponseRecorder) dto.HomeSummaryResponse {
	t.Helper()

	if w.Code != 200 {
		t.Fatalf("status = %d, esperava 200 (body %q)", w.Code, w.Body.String())
	}
	var resp dto.HomeSummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("erro ao desserializar resposta %q: %v", w.Body.String(), err)
	}
	return resp
}

func createCareItem(t *testing.T, router *gin.Engine, email, title, horario string) {
	t.Helper()

	w := performJSON(t, router, "POST", "/rotina", gin.H{
		"emailUsuario": email, "titulo": title, "horario": horario, "dose": "5mg",
	})
	if w.Code != 201 {
		t.Fatalf("criação do item falhou: status = %d (body %q)", w.Code, w.Body.String())
	}
}

func TestHomeEndpoint(t *testing.T) {
	t.Run("usuário sem cadastro usa o nome padrão", func(t *testing.T) {
		router, _ := newTestRouter(t)

		resp := decodeHome(t, performJSON(t, router, "GET", "/home?email=nao@existe.com", nil))
		if resp.UserName != "Paciente" {
			t.Errorf("nomeUsuario = %q, esperava Paciente", resp.UserName)
		}
		if resp.Progress != 0 {
			t.Errorf("progresso = %v, esperava 0", resp.Progress)
		}
		if len(resp.Tasks) != 0 {
			t.Errorf("tarefas = %d, esperava 0", len(resp.Tasks))
		}
	})

	t.Run("sem email retorna 400", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := performJSON(t, router, "GET", "/home", nil)
		assertStatus(t, w, 400, "Email obrigatório", false)
	})

	t.Run("tarefas ordenadas pelo horário", func(t *testing.T) {
		router, _ := newTestRouter(t)
		registerTestUser(t, router, "Ana", "ana@x.com")
		createCareItem(t, router, "ana@x.com", "Remédio da noite", "22:00")
		createCareItem(t, router, "ana@x.com", "Remédio da manhã", "08:00")

		resp := decodeHome(t, performJSON(t, router, "GET", "/home?email=ana@x.com", nil))
		if resp.UserName != "Ana" {
			t.Errorf("nomeUsuario = %q, esperava Ana", resp.UserName)
		}
		if len(resp.Tasks) != 2 {
			t.Fatalf("tarefas = %d, esperava 2", len(resp.Tasks))
		}
		if resp.Tasks[0].ScheduleTime != "08:00" || resp.Tasks[1].ScheduleTime != "22:00" {
			t.Errorf("ordem = [%q %q], esperava [08:00 22:00]", resp.Tasks[0].ScheduleTime, resp.Tasks[1].ScheduleTime)
		}
		if resp.Tasks[0].Done || resp.Tasks[1].Done {
			t.Error("nenhuma tarefa deveria estar feita")
		}
	})
}

func TestAdherenceEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	registerTestUser(t, router, "Ana", "ana@x.com")
	createCareItem(t, router, "ana@x.com", "Losartana", "08:00")

	resp := decodeHome(t, performJSON(t, router, "GET", "/home?email=ana@x.com", nil))
	itemID := resp.Tasks[0].ID
	today := time.Now().Format("2006-01-02")

	t.Run("marcar reflete na home", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/rotina/status", gin.H{
			"idItem": itemID, "feito": true, "data": today,
		})
		assertStatus(t, w, 200, "Atualizado", true)

		home := decodeHome(t, performJSON(t, router, "GET", "/home?email=ana@x.com", nil))
		if !home.Tasks[0].Done {
			t.Error("tarefa deveria estar feita")
		}
		if home.Progress != 1 {
			t.Errorf("progresso = %v, esperava 1", home.Progress)
		}
	})

	t.Run("marcar de novo é no-op", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/rotina/status", gin.H{
			"idItem": itemID, "feito": true, "data": today,
		})
		assertStatus(t, w, 200, "Atualizado", true)
	})

	t.Run("desmarcar limpa o dia", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/rotina/status", gin.H{
			"idItem": itemID, "feito": false, "data": today,
		})
		assertStatus(t, w, 200, "Atualizado", true)

		home := decodeHome(t, performJSON(t, router, "GET", "/home?email=ana@x.com", nil))
		if home.Tasks[0].Done {
			t.Error("tarefa não deveria estar feita")
		}
		if home.Progress != 0 {
			t.Errorf("progresso = %v, esperava 0", home.Progress)
		}
	})

	t.Run("data malformada retorna 400", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/rotina/status", gin.H{
			"idItem": itemID, "feito": true, "data": "01/01/2026",
		})
		assertStatus(t, w, 400, "Erro", false)
	})

	t.Run("sem idItem retorna 400", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/rotina/status", gin.H{"feito": true, "data": today})
		assertStatus(t, w, 400, "Erro", false)
	})
}

func TestDeleteItemEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	registerTestUser(t, router, "Ana", "ana@x.com")
	createCareItem(t, router, "ana@x.com", "Losartana", "08:00")

	resp := decodeHome(t, performJSON(t, router, "GET", "/home?email=ana@x.com", nil))
	itemID := resp.Tasks[0].ID

	t.Run("remoção retorna 200 e some da home", func(t *testing.T) {
		w := performJSON(t, router, "DELETE", fmt.Sprintf("/rotina/%d", itemID), nil)
		assertStatus(t, w, 200, "Deletado", true)

		home := decodeHome(t, performJSON(t, router, "GET", "/home?email=ana@x.com", nil))
		if len(home.Tasks) != 0 {
			t.Errorf("tarefas = %d, esperava 0", len(home.Tasks))
		}
	})

	t.Run("id não numérico retorna 400", func(t *testing.T) {
		w := performJSON(t, router, "DELETE", "/rotina/abc", nil)
		assertStatus(t, w, 400, "ID invalido", false)
	})

	t.Run("item inexistente retorna 200", func(t *testing.T) {
		w := performJSON(t, router, "DELETE", "/rotina/9999", nil)
		assertStatus(t, w, 200, "Deletado", true)
	})
}
