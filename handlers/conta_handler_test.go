// github.com/kawanwagnner/API-Rest/handlers/conta_handler_test.go
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/kawanwagnner/API-Rest/models"
)

type stubContaService struct {
	create  func(ctx context.Context, req *models.CreateContaRequest) (*models.Conta, error)
	getAll  func(ctx context.Context) ([]models.Conta, error)
	getByID func(ctx context.Context, id int) (*models.Conta, error)
	update  func(ctx context.Context, id int, req *models.UpdateContaRequest) (*models.Conta, error)
	delete  func(ctx context.Context, id int) (*models.Conta, error)
}

func (s *stubContaService) Create(ctx context.Context, req *models.CreateContaRequest) (*models.Conta, error) {
	return s.create(ctx, req)
}
func (s *stubContaService) GetAll(ctx context.Context) ([]models.Conta, error) {
	return s.getAll(ctx)
}
func (s *stubContaService) GetByID(ctx context.Context, id int) (*models.Conta, error) {
	return s.getByID(ctx, id)
}
func (s *stubContaService) Update(ctx context.Context, id int, req *models.UpdateContaRequest) (*models.Conta, error) {
	return s.update(ctx, id, req)
}
func (s *stubContaService) Delete(ctx context.Context, id int) (*models.Conta, error) {
	return s.delete(ctx, id)
}

func contaRouter(svc *stubContaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContaHandler(svc, zerolog.Nop())
	router := gin.New()
	router.POST("/contas", h.Create)
	router.GET("/contas", h.GetAll)
	router.GET("/contas/:id", h.GetOne)
	router.PUT("/contas/:id", h.Update)
	router.DELETE("/contas/:id", h.Delete)
	return router
}

func TestContaHandlerCreate(t *testing.T) {
	svc := &stubContaService{
		create: func(_ context.Context, req *models.CreateContaRequest) (*models.Conta, error) {
			return &models.Conta{
				ID: 5, Numero: req.Numero, Tipo: req.Tipo, Saldo: req.Saldo, ClienteID: req.ClienteID,
				Cliente: &models.ClienteResumo{ID: req.ClienteID, Nome: "Maria", Email: "maria@exemplo.com"},
			}, nil
		},
	}
	router := contaRouter(svc)

	body := `{"numero":"0001-7","tipo":"corrente","saldo":150.5,"clienteId":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"msg":"Conta criada com sucesso"`)
	assert.Contains(t, w.Body.String(), `"numero":"0001-7"`)
	// A associação vem embutida no corpo.
	assert.Contains(t, w.Body.String(), `"cliente"`)
	assert.Contains(t, w.Body.String(), `"maria@exemplo.com"`)
}

func TestContaHandlerCreateDuplicateNumero(t *testing.T) {
	svc := &stubContaService{
		create: func(context.Context, *models.CreateContaRequest) (*models.Conta, error) {
			return nil, models.ErrDuplicado
		},
	}
	router := contaRouter(svc)

	body := `{"numero":"0001-7","tipo":"corrente","clienteId":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Número da conta já está em uso"}`, w.Body.String())
}

// Saldo ausente no corpo é conta com saldo zero, não erro de validação.
func TestContaHandlerCreateSemSaldo(t *testing.T) {
	svc := &stubContaService{
		create: func(_ context.Context, req *models.CreateContaRequest) (*models.Conta, error) {
			return &models.Conta{ID: 5, Numero: req.Numero, Tipo: req.Tipo, Saldo: req.Saldo, ClienteID: req.ClienteID}, nil
		},
	}
	router := contaRouter(svc)

	body := `{"numero":"0001-7","tipo":"corrente","clienteId":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"saldo":0`)
}

func TestContaHandlerGetOneNotFound(t *testing.T) {
	svc := &stubContaService{
		getByID: func(context.Context, int) (*models.Conta, error) {
			return nil, models.ErrNaoEncontrado
		},
	}
	router := contaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/contas/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Conta não encontrada"}`, w.Body.String())
}

func TestContaHandlerUpdateNumeroEmUso(t *testing.T) {
	svc := &stubContaService{
		update: func(context.Context, int, *models.UpdateContaRequest) (*models.Conta, error) {
			return nil, models.ErrDuplicado
		},
	}
	router := contaRouter(svc)

	body := `{"numero":"0002-5"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/contas/5", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Número da conta já está em uso por outra conta"}`, w.Body.String())
}

func TestContaHandlerDelete(t *testing.T) {
	svc := &stubContaService{
		delete: func(_ context.Context, id int) (*models.Conta, error) {
			return &models.Conta{ID: id, Numero: "0001-7", Tipo: "corrente"}, nil
		},
	}
	router := contaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/contas/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"msg":"Conta deletada com sucesso!"`)
	assert.Contains(t, w.Body.String(), `"numero":"0001-7"`)
}

func TestContaHandlerDeleteNotFound(t *testing.T) {
	svc := &stubContaService{
		delete: func(context.Context, int) (*models.Conta, error) {
			return nil, models.ErrNaoEncontrado
		},
	}
	router := contaRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/contas/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Conta não encontrada"}`, w.Body.String())
}
