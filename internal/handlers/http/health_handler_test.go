package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/persistence/postgres"
)

func TestRecordSymptomEndpoint(t *testing.T) {
	router, db := newTestRouter(t)

	t.Run("registro válido retorna 201", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/sintomas", gin.H{
			"emailUsuario": "ana@x.com", "bemEstar": 8, "sintomas": 2,
		})
		assertStatus(t, w, 201, "Sintomas registrados", true)

		var row postgres.SymptomModel
		if err := db.First(&row).Error; err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if row.WellBeingScore != 8 || row.SymptomScore != 2 {
			t.Errorf("valores = (%d, %d), esperava (8, 2)", row.WellBeingScore, row.SymptomScore)
		}
		if row.RiskAlert {
			t.Error("não esperava alerta de risco")
		}
	})

	t.Run("sintomas altos geram alerta de risco", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/sintomas", gin.H{
			"emailUsuario": "ana@x.com", "bemEstar": 9, "sintomas": 7,
		})
		assertStatus(t, w, 201, "Sintomas registrados", true)

		var row postgres.SymptomModel
		if err := db.Order("id_registro DESC").First(&row).Error; err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !row.RiskAlert {
			t.Error("esperava alerta de risco")
		}
	})

	t.Run("bem-estar baixo também gera alerta", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/sintomas", gin.H{
			"emailUsuario": "ana@x.com", "bemEstar": 3, "sintomas": 0,
		})
		assertStatus(t, w, 201, "Sintomas registrados", true)

		var row postgres.SymptomModel
		if err := db.Order("id_registro DESC").First(&row).Error; err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !row.RiskAlert {
			t.Error("esperava alerta de risco")
		}
	})

	t.Run("sem email retorna 400", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/sintomas", gin.H{"bemEstar": 8, "sintomas": 2})
		assertStatus(t, w, 400, "Erro", false)
	})
}

func decodeSheet(t *testing.T, w *httptest.ResponseRecorder) dto.MedicalSheetPayload {
	t.Helper()

	if w.Code != 200 {
		t.Fatalf("status = %d, esperava 200 (body %q)", w.Code, w.Body.String())
	}
	var resp dto.MedicalSheetPayload
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("erro ao desserializar resposta %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestMedicalSheetEndpoints(t *testing.T) {
	router, db := newTestRouter(t)

	t.Run("ficha inexistente retorna placeholder vazio", func(t *testing.T) {
		resp := decodeSheet(t, performJSON(t, router, "GET", "/ficha?email=ana@x.com", nil))
		if resp.UserEmail != "ana@x.com" {
			t.Errorf("emailUsuario = %q, esperava ana@x.com", resp.UserEmail)
		}
		if resp.Allergies != "" || resp.ContinuousMedication != "" || resp.Comorbidities != "" {
			t.Errorf("esperava ficha vazia, veio %+v", resp)
		}
	})

	t.Run("sem email retorna 400", func(t *testing.T) {
		w := performJSON(t, router, "GET", "/ficha", nil)
		assertStatus(t, w, 400, "Email obrigatório", false)
	})

	t.Run("gravação cria a ficha", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/ficha", gin.H{
			"emailUsuario": "ana@x.com",
			"alergias":     "Dipirona",
			"medicacoes":   "Losartana 50mg",
			"comorbidades": "Hipertensão",
		})
		assertStatus(t, w, 200, "Dados médicos salvos!", true)

		resp := decodeSheet(t, performJSON(t, router, "GET", "/ficha?email=ana@x.com", nil))
		if resp.Allergies != "Dipirona" {
			t.Errorf("alergias = %q, esperava Dipirona", resp.Allergies)
		}
		if resp.ContinuousMedication != "Losartana 50mg" {
			t.Errorf("medicacoes = %q, esperava Losartana 50mg", resp.ContinuousMedication)
		}
	})

	t.Run("segunda gravação atualiza a mesma ficha", func(t *testing.T) {
		w := performJSON(t, router, "POST", "/ficha", gin.H{
			"emailUsuario": "ana@x.com",
			"alergias":     "Nenhuma",
			"medicacoes":   "Losartana 50mg",
			"comorbidades": "Hipertensão",
		})
		assertStatus(t, w, 200, "Dados médicos salvos!", true)

		resp := decodeSheet(t, performJSON(t, router, "GET", "/ficha?email=ana@x.com", nil))
		if resp.Allergies != "Nenhuma" {
			t.Errorf("alergias = %q, esperava Nenhuma", resp.Allergies)
		}

		var count int64
		if err := db.Model(&postgres.MedicalSheetModel{}).Count(&count).Error; err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if count != 1 {
			t.Errorf("fichas = %d, esperava 1", count)
		}
	})
}
