package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type CrearProductoRequest struct {
	Nombre         string          `json:"nombre" binding:"required"`
	Descripcion    string          `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio" binding:"required"`
	Stock          int             `json:"stock"`
	Descuento      int             `json:"descuento"`
	SubcategoriaID uint            `json:"subcategoria_id" binding:"required"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
	Descuento   *int             `json:"descuento"`
	Activo      *bool            `json:"activo"`
}

type ProductoResponse struct {
	ID                 uint            `json:"id"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion"`
	Precio             decimal.Decimal `json:"precio"`
	PrecioConDescuento decimal.Decimal `json:"precio_con_descuento"`
	Stock              int             `json:"stock"`
	Descuento          int             `json:"descuento"`
	SubcategoriaID     uint            `json:"subcategoria_id"`
	Activo             bool            `json:"activo"`
}

func ToProductoResponse(producto *models.Producto) ProductoResponse {
	return ProductoResponse{
		ID:                 producto.ID,
		Nombre:             producto.Nombre,
		Descripcion:        producto.Descripcion,
		Precio:             producto.Precio,
		PrecioConDescuento: producto.PrecioConDescuento(),
		Stock:              producto.Stock,
		Descuento:          producto.Descuento,
		SubcategoriaID:     producto.SubcategoriaID,
		Activo:             producto.Activo,
	}
}
