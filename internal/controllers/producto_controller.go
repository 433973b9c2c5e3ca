package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/middleware"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

// ProductoController serves the owner's inventory management endpoints.
type ProductoController struct {
	productoService services.ProductoService
	negocioService  services.NegocioService
}

func NewProductoController(productoService services.ProductoService, negocioService services.NegocioService) *ProductoController {
	return &ProductoController{
		productoService: productoService,
		negocioService:  negocioService,
	}
}

func (pc *ProductoController) resolverNegocio(c *gin.Context) (uint, bool) {
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

// Obtener handles GET /mi-negocio/productos/:id/
func (pc *ProductoController) Obtener(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	producto, err := pc.productoService.Obtener(negocioID, uint(id))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductoResponse(producto))
}

// Crear handles POST /mi-negocio/productos/
func (pc *ProductoController) Crear(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	var req dto.CrearProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	producto, err := pc.productoService.Crear(negocioID, &req)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductoResponse(producto))
}

// Actualizar handles PATCH /mi-negocio/productos/:id/
func (pc *ProductoController) Actualizar(c *gin.Context) {
	negocioID, ok := pc.resolverNegocio(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var req dto.ActualizarProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	producto, err := pc.productoService.Actualizar(negocioID, uint(id), &req)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductoResponse(producto))
}
