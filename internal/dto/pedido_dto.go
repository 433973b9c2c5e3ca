package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type ItemPedidoRequest struct {
	ProductoID uint `json:"producto_id" binding:"required"`
	Cantidad   int  `json:"cantidad"`
}

type CrearPedidoRequest struct {
	NombreCliente    string              `json:"nombre_cliente" binding:"required"`
	EmailCliente     string              `json:"email_cliente" binding:"required,email"`
	TelefonoCliente  string              `json:"telefono_cliente" binding:"required"`
	DireccionEntrega string              `json:"direccion_entrega" binding:"required"`
	MetodoPago       string              `json:"metodo_pago"`
	NotaComprador    string              `json:"nota_comprador"`
	Productos        []ItemPedidoRequest `json:"productos" binding:"required"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type ItemPedidoResponse struct {
	ID             uint            `json:"id"`
	ProductoID     uint            `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID               uint                 `json:"id"`
	NombreCliente    string               `json:"nombre_cliente"`
	EmailCliente     string               `json:"email_cliente"`
	TelefonoCliente  string               `json:"telefono_cliente"`
	DireccionEntrega string               `json:"direccion_entrega"`
	NegocioID        uint                 `json:"negocio_id"`
	Estado           models.EstadoPedido  `json:"estado"`
	MetodoPago       models.MetodoPago    `json:"metodo_pago"`
	NotaComprador    string               `json:"nota_comprador"`
	NotaVendedor     string               `json:"nota_vendedor"`
	Total            decimal.Decimal      `json:"total"`
	FechaPedido      time.Time            `json:"fecha_pedido"`
	Items            []ItemPedidoResponse `json:"items"`
}

func ToPedidoResponse(pedido *models.Pedido) PedidoResponse {
	items := make([]ItemPedidoResponse, 0, len(pedido.Items))
	for _, item := range pedido.Items {
		items = append(items, ItemPedidoResponse{
			ID:             item.ID,
			ProductoID:     item.ProductoID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		})
	}
	return PedidoResponse{
		ID:               pedido.ID,
		NombreCliente:    pedido.NombreCliente,
		EmailCliente:     pedido.EmailCliente,
		TelefonoCliente:  pedido.TelefonoCliente,
		DireccionEntrega: pedido.DireccionEntrega,
		NegocioID:        pedido.NegocioID,
		Estado:           pedido.Estado,
		MetodoPago:       pedido.MetodoPago,
		NotaComprador:    pedido.NotaComprador,
		NotaVendedor:     pedido.NotaVendedor,
		Total:            pedido.Total,
		FechaPedido:      pedido.FechaPedido,
		Items:            items,
	}
}

func ToPedidoListResponse(pedidos []models.Pedido) []PedidoResponse {
	responses := make([]PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		responses = append(responses, ToPedidoResponse(&pedidos[i]))
	}
	return responses
}
