package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
)

type pedidoTestEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	negocio  *models.Negocio
	producto *models.Producto
}

func setupPedidoEnv(t *testing.T) *pedidoTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Usuario{}, &models.Negocio{}, &models.Categoria{},
		&models.Subcategoria{}, &models.Producto{}, &models.Pedido{},
		&models.PedidoProducto{}, &models.Licencia{}, &models.Billetera{},
		&models.TransaccionBilletera{},
	))

	usuario := &models.Usuario{Email: "duenio@test.com", Nombre: "Dueño", Activo: true}
	require.NoError(t, db.Create(usuario).Error)
	negocio := &models.Negocio{UsuarioID: usuario.ID, Nombre: "Mi Tienda", Slug: "mi-tienda", Activo: true}
	require.NoError(t, db.Create(negocio).Error)
	categoria := &models.Categoria{NegocioID: negocio.ID, Nombre: "General"}
	require.NoError(t, db.Create(categoria).Error)
	subcategoria := &models.Subcategoria{CategoriaID: categoria.ID, Nombre: "Varios"}
	require.NoError(t, db.Create(subcategoria).Error)
	producto := &models.Producto{
		Nombre:         "Cafetera",
		Precio:         decimal.RequireFromString("100.00"),
		Stock:          5,
		SubcategoriaID: subcategoria.ID,
		Activo:         true,
	}
	require.NoError(t, db.Create(producto).Error)

	negocioRepo := repositories.NewNegocioRepository(db)
	billeteraRepo := repositories.NewBilleteraRepository(db)
	referidoSvc := services.NewReferidoService(db, billeteraRepo, decimal.RequireFromString("2.00"))
	licenciaSvc := services.NewLicenciaService(db, repositories.NewLicenciaRepository(db), negocioRepo, referidoSvc, 30)
	negocioSvc := services.NewNegocioService(negocioRepo, licenciaSvc)
	pedidoSvc := services.NewPedidoService(db, repositories.NewPedidoRepository(db))

	controller := NewPedidoController(pedidoSvc, negocioSvc)
	router := gin.New()
	router.POST("/tienda/:slug/pedidos/", controller.Crear)
	router.POST("/pedido/pedidos/:id/cancelar/", controller.Cancelar)
	router.GET("/pedido/pedidos/consultar", controller.Consultar)

	return &pedidoTestEnv{router: router, db: db, negocio: negocio, producto: producto}
}

func (env *pedidoTestEnv) crearPedidoRequest(t *testing.T, slug string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/tienda/"+slug+"/pedidos/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

func pedidoBody(productoID uint, cantidad int) dto.CrearPedidoRequest {
	return dto.CrearPedidoRequest{
		NombreCliente:    "Ana Cliente",
		EmailCliente:     "ana@cliente.com",
		TelefonoCliente:  "+53 55551234",
		DireccionEntrega: "Calle 23 #456",
		Productos: []dto.ItemPedidoRequest{
			{ProductoID: productoID, Cantidad: cantidad},
		},
	}
}

func TestCrearPedidoEndpoint(t *testing.T) {
	env := setupPedidoEnv(t)

	resp := env.crearPedidoRequest(t, "mi-tienda", pedidoBody(env.producto.ID, 2))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var creado dto.PedidoResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &creado))
	assert.Equal(t, models.EstadoPendiente, creado.Estado)
	assert.True(t, creado.Total.Equal(decimal.RequireFromString("200.00")))
	assert.Len(t, creado.Items, 1)
}

func TestCrearPedidoEndpoint_TiendaInexistente(t *testing.T) {
	env := setupPedidoEnv(t)

	resp := env.crearPedidoRequest(t, "no-existe", pedidoBody(env.producto.ID, 1))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCrearPedidoEndpoint_TiendaInactiva(t *testing.T) {
	env := setupPedidoEnv(t)
	require.NoError(t, env.db.Model(&models.Negocio{}).Where("id = ?", env.negocio.ID).
		Update("activo", false).Error)

	resp := env.crearPedidoRequest(t, "mi-tienda", pedidoBody(env.producto.ID, 1))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCrearPedidoEndpoint_StockInsuficiente(t *testing.T) {
	env := setupPedidoEnv(t)

	resp := env.crearPedidoRequest(t, "mi-tienda", pedidoBody(env.producto.ID, 99))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Stock insuficiente")
}

func TestCancelarPedidoEndpoint(t *testing.T) {
	env := setupPedidoEnv(t)

	resp := env.crearPedidoRequest(t, "mi-tienda", pedidoBody(env.producto.ID, 1))
	require.Equal(t, http.StatusCreated, resp.Code)
	var creado dto.PedidoResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &creado))

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/pedido/pedidos/%d/cancelar/", creado.ID), nil)
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var pedido models.Pedido
	require.NoError(t, env.db.First(&pedido, creado.ID).Error)
	assert.Equal(t, models.EstadoCancelado, pedido.Estado)
}

func TestConsultarPedidosEndpoint(t *testing.T) {
	env := setupPedidoEnv(t)

	resp := env.crearPedidoRequest(t, "mi-tienda", pedidoBody(env.producto.ID, 1))
	require.Equal(t, http.StatusCreated, resp.Code)

	req := httptest.NewRequest(http.MethodGet,
		"/pedido/pedidos/consultar?telefono=%2B53+55551234", nil)
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var pedidos []dto.PedidoResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &pedidos))
	assert.Len(t, pedidos, 1)

	req = httptest.NewRequest(http.MethodGet,
		"/pedido/pedidos/consultar?telefono=%2B53+00000000", nil)
	recorder = httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
