package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Rodolf-GitHub/jatishop-back/internal/config"
	"github.com/Rodolf-GitHub/jatishop-back/internal/controllers"
	"github.com/Rodolf-GitHub/jatishop-back/internal/middleware"
)

func SetupRouter(
	cfg *config.Config,
	pedidoController *controllers.PedidoController,
	pedidoAdminController *controllers.PedidoAdminController,
	productoController *controllers.ProductoController,
	negocioController *controllers.NegocioController,
	billeteraController *controllers.BilleteraController,
	licenciaController *controllers.LicenciaController,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "jatishop-back",
			"timestamp": time.Now().UTC(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		tienda := api.Group("/tienda")
		{
			tienda.POST("/:slug/pedidos/", pedidoController.Crear)
		}

		pedido := api.Group("/pedido/pedidos")
		{
			pedido.GET("/consultar", pedidoController.Consultar)
			pedido.POST("/:id/cancelar/", pedidoController.Cancelar)
		}

		miNegocio := api.Group("/mi-negocio")
		miNegocio.Use(middleware.AuthMiddleware(cfg.JWT))
		{
			miNegocio.GET("/", negocioController.Obtener)
			miNegocio.POST("/registrar/", negocioController.Registrar)
			miNegocio.GET("/pedidos-admin/", pedidoAdminController.Listar)
			miNegocio.POST("/pedidos-admin/", pedidoAdminController.Crear)
			miNegocio.GET("/pedidos-admin/:id/", pedidoAdminController.Obtener)
			miNegocio.PATCH("/pedidos-admin/:id/actualizar_estado/", pedidoAdminController.ActualizarEstado)
			miNegocio.POST("/productos/", productoController.Crear)
			miNegocio.GET("/productos/:id/", productoController.Obtener)
			miNegocio.PATCH("/productos/:id/", productoController.Actualizar)
		}

		billetera := api.Group("/billetera")
		billetera.Use(middleware.AuthMiddleware(cfg.JWT))
		{
			billetera.GET("/", billeteraController.Obtener)
			billetera.POST("/", billeteraController.Crear)
		}

		licencia := api.Group("/licencia")
		licencia.Use(middleware.AuthMiddleware(cfg.JWT))
		{
			licencia.GET("/estado/", licenciaController.Estado)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg.JWT))
		admin.Use(middleware.AdminOnlyMiddleware())
		{
			admin.POST("/licencias/:id/extender/", licenciaController.Extender)
			admin.POST("/licencias/:id/vencer/", licenciaController.Vencer)
		}
	}

	return router
}
