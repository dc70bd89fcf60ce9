package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
	"github.com/rafabene/cuidar-backend/internal/handlers/middleware"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/i18n"
	"github.com/rafabene/cuidar-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/cuidar-backend/internal/services"
	"github.com/rafabene/cuidar-backend/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestRouter monta o router completo sobre um banco de teste isolado,
// com o mesmo wiring de rotas usado pelo main
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := testutil.NewTestLogger()

	i18nService, err := i18n.NewService("../../infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		t.Fatalf("erro ao carregar locales: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	routineRepo := postgres.NewRoutineRepository(db)
	adherenceRepo := postgres.NewAdherenceRepository(db)
	symptomRepo := postgres.NewSymptomRepository(db)
	sheetRepo := postgres.NewMedicalSheetRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	uow := postgres.NewUnitOfWork(db)

	userService := services.NewUserService(userRepo, uow, logger)
	routineService := services.NewRoutineService(routineRepo, adherenceRepo, userRepo, uow, logger)
	healthService := services.NewHealthService(symptomRepo, sheetRepo, uow, logger)
	notificationService := services.NewNotificationService(notificationRepo, uow, logger)

	router := gin.New()
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())

	RegisterRoutes(router, Handlers{
		User:         NewUserHandler(userService, logger),
		Routine:      NewRoutineHandler(routineService, logger),
		Health:       NewHealthHandler(healthService, logger),
		Notification: NewNotificationHandler(notificationService, logger),
	})

	return router, db
}

// performJSON executa uma requisição contra o router, serializando o body
// como JSON quando presente
func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("erro ao serializar body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeStatus desserializa a resposta padrão {mensagem, sucesso}
func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) dto.StatusResponse {
	t.Helper()

	var resp dto.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("erro ao desserializar resposta %q: %v", w.Body.String(), err)
	}
	return resp
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, code int, message string, success bool) {
	t.Helper()

	if w.Code != code {
		t.Fatalf("status = %d, esperava %d (body %q)", w.Code, code, w.Body.String())
	}
	resp := decodeStatus(t, w)
	if resp.Message != message {
		t.Errorf("mensagem = %q, esperava %q", resp.Message, message)
	}
	if resp.Success != success {
		t.Errorf("sucesso = %v, esperava %v", resp.Success, success)
	}
}

// registerTestUser cria uma conta via rota de cadastro
func registerTestUser(t *testing.T, router *gin.Engine, name, email string) {
	t.Helper()

	w := performJSON(t, router, "POST", "/cadastro", gin.H{
		"nome":     name,
		"email":    email,
		"senha":    "12345678",
		"telefone": "11999990000",
	})
	if w.Code != 201 {
		t.Fatalf("cadastro falhou: status = %d (body %q)", w.Code, w.Body.String())
	}
}
