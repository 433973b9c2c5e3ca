package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

// PedidoController serves the public, unauthenticated order endpoints.
type PedidoController struct {
	pedidoService  services.PedidoService
	negocioService services.NegocioService
}

func NewPedidoController(pedidoService services.PedidoService, negocioService services.NegocioService) *PedidoController {
	return &PedidoController{
		pedidoService:  pedidoService,
		negocioService: negocioService,
	}
}

// Crear handles POST /tienda/:slug/pedidos/
func (pc *PedidoController) Crear(c *gin.Context) {
	negocio, err := pc.negocioService.ResolverPorSlug(c.Param("slug"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	var req dto.CrearPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	pedido, err := pc.pedidoService.CrearPedido(negocio.ID, &req)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPedidoResponse(pedido))
}

// Cancelar handles POST /pedido/pedidos/:id/cancelar/
func (pc *PedidoController) Cancelar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if err := pc.pedidoService.CancelarPedido(uint(id)); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pedido cancelado correctamente"})
}

// Consultar handles GET /pedido/pedidos/consultar?telefono=
func (pc *PedidoController) Consultar(c *gin.Context) {
	pedidos, err := pc.pedidoService.ConsultarPorTelefono(c.Query("telefono"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPedidoListResponse(pedidos))
}
