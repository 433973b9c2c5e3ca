package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/middleware"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

type NegocioController struct {
	negocioService services.NegocioService
}

func NewNegocioController(negocioService services.NegocioService) *NegocioController {
	return &NegocioController{negocioService: negocioService}
}

// Registrar handles POST /mi-negocio/registrar/ — creates the caller's
// storefront and its initial license.
func (nc *NegocioController) Registrar(c *gin.Context) {
	usuarioID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorizedError(c, "User not authenticated")
		return
	}

	var req dto.RegistrarNegocioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	negocio, err := nc.negocioService.Registrar(usuarioID, req.Nombre, req.Descripcion, req.Direccion, req.Telefono)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, negocio)
}

// Obtener handles GET /mi-negocio/ — the caller's own storefront.
func (nc *NegocioController) Obtener(c *gin.Context) {
	usuarioID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorizedError(c, "User not authenticated")
		return
	}

	negocio, err := nc.negocioService.ResolverPorUsuario(usuarioID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, negocio)
}
