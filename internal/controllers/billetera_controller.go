package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/middleware"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/utils"
)

// BilleteraController exposes the authenticated user's wallet: balance,
// referral code and the commission ledger.
type BilleteraController struct {
	referidoService services.ReferidoService
}

func NewBilleteraController(referidoService services.ReferidoService) *BilleteraController {
	return &BilleteraController{referidoService: referidoService}
}

// Obtener handles GET /billetera/
func (bc *BilleteraController) Obtener(c *gin.Context) {
	usuarioID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorizedError(c, "User not authenticated")
		return
	}

	billetera, transacciones, err := bc.referidoService.ObtenerBilletera(usuarioID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBilleteraResponse(billetera, transacciones))
}

// Crear handles POST /billetera/
func (bc *BilleteraController) Crear(c *gin.Context) {
	usuarioID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorizedError(c, "User not authenticated")
		return
	}

	var req dto.CrearBilleteraRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.SendValidationError(c, err)
		return
	}

	billetera, err := bc.referidoService.CrearBilletera(usuarioID, req.CodigoReferido)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBilleteraResponse(billetera, nil))
}
