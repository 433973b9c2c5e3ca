package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/middleware"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

var timeNow = time.Now

type LicenciaController struct {
	licenciaService services.LicenciaService
	negocioService  services.NegocioService
}

func NewLicenciaController(licenciaService services.LicenciaService, negocioService services.NegocioService) *LicenciaController {
	return &LicenciaController{
		licenciaService: licenciaService,
		negocioService:  negocioService,
	}
}

// Estado handles GET /licencia/estado/ for the authenticated business owner.
func (lc *LicenciaController) Estado(c *gin.Context) {
	usuarioID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorizedError(c, "User not authenticated")
		return
	}

	negocio, err := lc.negocioService.ResolverPorUsuario(usuarioID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	licencia, err := lc.licenciaService.EstadoParaNegocio(negocio.ID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	if !licencia.EstaActiva {
		negocio.Activo = false
	}

	c.JSON(http.StatusOK, dto.LicenciaEstadoResponse{
		EstaActiva:       licencia.EstaActiva,
		DiasRestantes:    licencia.DiasRestantes(timeNow()),
		FechaVencimiento: licencia.FechaVencimiento,
		NegocioActivo:    negocio.Activo,
	})
}

// Extender handles POST /admin/licencias/:id/extender/ (operator tool).
func (lc *LicenciaController) Extender(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var req dto.ExtenderLicenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	licencia, err := lc.licenciaService.Extender(uint(id), req.Dias)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Licencia extendida", licencia)
}

// Vencer handles POST /admin/licencias/:id/vencer/ (operator tool).
func (lc *LicenciaController) Vencer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, err)
		return
	}

	licencia, err := lc.licenciaService.Vencer(uint(id))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Licencia vencida y negocio desactivado", licencia)
}
