package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Negocio{},
		&models.Categoria{},
		&models.Subcategoria{},
		&models.Producto{},
		&models.Pedido{},
		&models.PedidoProducto{},
		&models.Licencia{},
		&models.Billetera{},
		&models.TransaccionBilletera{},
	)
	require.NoError(t, err)

	return db
}

func crearUsuario(t *testing.T, db *gorm.DB, email string) *models.Usuario {
	t.Helper()
	usuario := &models.Usuario{Email: email, Nombre: "Test", Activo: true}
	require.NoError(t, db.Create(usuario).Error)
	return usuario
}

func crearNegocio(t *testing.T, db *gorm.DB, usuarioID uint, slug string) *models.Negocio {
	t.Helper()
	negocio := &models.Negocio{
		UsuarioID: usuarioID,
		Nombre:    "Negocio " + slug,
		Slug:      slug,
		Activo:    true,
	}
	require.NoError(t, db.Create(negocio).Error)
	return negocio
}

// crearProducto wires the full ownership chain negocio -> categoria ->
// subcategoria -> producto.
func crearProducto(t *testing.T, db *gorm.DB, negocioID uint, nombre string, precio string, descuento, stock int) *models.Producto {
	t.Helper()

	categoria := &models.Categoria{NegocioID: negocioID, Nombre: "Categoria"}
	require.NoError(t, db.Create(categoria).Error)
	subcategoria := &models.Subcategoria{CategoriaID: categoria.ID, Nombre: "Subcategoria"}
	require.NoError(t, db.Create(subcategoria).Error)

	producto := &models.Producto{
		Nombre:         nombre,
		Precio:         decimal.RequireFromString(precio),
		Stock:          stock,
		Descuento:      descuento,
		SubcategoriaID: subcategoria.ID,
		Activo:         true,
	}
	require.NoError(t, db.Create(producto).Error)
	return producto
}

func crearLicencia(t *testing.T, db *gorm.DB, negocioID uint, vencimiento time.Time, activa bool) *models.Licencia {
	t.Helper()
	licencia := &models.Licencia{
		NegocioID:        negocioID,
		FechaInicio:      time.Now().AddDate(0, 0, -30),
		FechaVencimiento: vencimiento,
		EstaActiva:       activa,
	}
	require.NoError(t, db.Create(licencia).Error)
	return licencia
}

func stockActual(t *testing.T, db *gorm.DB, productoID uint) int {
	t.Helper()
	var producto models.Producto
	require.NoError(t, db.First(&producto, productoID).Error)
	return producto.Stock
}
