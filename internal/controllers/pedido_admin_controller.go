package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/middleware"
	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

// PedidoAdminController lets a business owner manage the orders of their
// own store. Every handler resolves the caller's negocio first; callers
// without one get the same not-found answer regardless of what exists.
type PedidoAdminController struct {
	pedidoService  services.PedidoService
	negocioService services.NegocioService
}

func NewPedidoAdminController(pedidoService services.PedidoService, negocioService services.NegocioService) *PedidoAdminController {
	return &PedidoAdminController{
		pedidoService:  pedidoService,
		negocioService: negocioService,
	}
}

func (pc *PedidoAdminController) resolverNegocio(c *gin.Context) (uint, bool) {
	usuarioID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorizedError(c, "User not authenticated")
		return 0, false
	}
	negocio, err := pc.negocioService.ResolverPorUsuario(usuarioID)
	if err != nil {
		utils.SendAppError(c, err)
		return 0, false
	}
	return negocio.ID, true
}

// Listar handles GET /mi-negocio/pedidos-admin/
func (pc *PedidoAdminController) Listar(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	pedidos, err := pc.pedidoService.ListarDeNegocio(negocioID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPedidoListResponse(pedidos))
}

// Obtener handles GET /mi-negocio/pedidos-admin/:id/
func (pc *PedidoAdminController) Obtener(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	pedido, err := pc.pedidoService.ObtenerDeNegocio(negocioID, uint(id))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}

// Crear handles POST /mi-negocio/pedidos-admin/
func (pc *PedidoAdminController) Crear(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	var req dto.CrearPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	pedido, err := pc.pedidoService.CrearPedido(negocioID, &req)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPedidoResponse(pedido))
}

// ActualizarEstado handles PATCH /mi-negocio/pedidos-admin/:id/actualizar_estado/
func (pc *PedidoAdminController) ActualizarEstado(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var req dto.ActualizarEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Debe proporcionar un estado")
		return
	}

	pedido, err := pc.pedidoService.ActualizarEstado(negocioID, uint(id), models.EstadoPedido(req.Estado))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}
