package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EstadoPedido string

const (
	EstadoPendiente  EstadoPedido = "pendiente"
	EstadoConfirmado EstadoPedido = "confirmado"
	EstadoEnProceso  EstadoPedido = "en_proceso"
	EstadoEnviado    EstadoPedido = "enviado"
	EstadoEntregado  EstadoPedido = "entregado"
	EstadoCancelado  EstadoPedido = "cancelado"
)

type MetodoPago string

const (
	PagoEfectivo      MetodoPago = "efectivo"
	PagoTransferencia MetodoPago = "transferencia"
	PagoTarjeta       MetodoPago = "tarjeta"
)

type Pedido struct {
	ID               uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	NombreCliente    string          `json:"nombre_cliente" gorm:"not null;size:200"`
	EmailCliente     string          `json:"email_cliente" gorm:"not null;size:100"`
	TelefonoCliente  string          `json:"telefono_cliente" gorm:"not null;size:20;index"`
	DireccionEntrega string          `json:"direccion_entrega" gorm:"type:text;not null"`
	NegocioID        uint            `json:"negocio_id" gorm:"not null;index"`
	Estado           EstadoPedido    `json:"estado" gorm:"size:20;default:'pendiente'"`
	MetodoPago       MetodoPago      `json:"metodo_pago" gorm:"size:20;default:'efectivo'"`
	NotaComprador    string          `json:"nota_comprador" gorm:"type:text"`
	NotaVendedor     string          `json:"nota_vendedor" gorm:"type:text"`
	Total            decimal.Decimal `json:"total" gorm:"type:decimal(10,2);default:0"`
	FechaPedido      time.Time       `json:"fecha_pedido" gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Negocio Negocio          `json:"-" gorm:"foreignKey:NegocioID"`
	Items   []PedidoProducto `json:"items" gorm:"foreignKey:PedidoID"`
}

func (p *Pedido) TableName() string {
	return "pedidos"
}

type PedidoProducto struct {
	ID             uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	PedidoID       uint            `json:"pedido_id" gorm:"not null;index"`
	ProductoID     uint            `json:"producto_id" gorm:"not null;index"`
	Cantidad       int             `json:"cantidad" gorm:"not null;default:1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`

	Producto Producto `json:"-" gorm:"foreignKey:ProductoID"`
}

func (pp *PedidoProducto) TableName() string {
	return "pedido_productos"
}

func EstadoValido(estado EstadoPedido) bool {
	switch estado {
	case EstadoPendiente, EstadoConfirmado, EstadoEnProceso,
		EstadoEnviado, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// EsTerminal reports whether no further transitions are allowed.
func (p *Pedido) EsTerminal() bool {
	return p.Estado == EstadoEntregado || p.Estado == EstadoCancelado
}

// PuedeTransicionarA encodes the order state machine:
// pendiente -> {confirmado, cancelado}; confirmado -> en_proceso;
// en_proceso -> {enviado, entregado}; enviado -> entregado;
// any non-terminal state -> cancelado.
func (p *Pedido) PuedeTransicionarA(destino EstadoPedido) bool {
	if !EstadoValido(destino) {
		return false
	}
	if p.EsTerminal() {
		return false
	}
	if destino == EstadoCancelado {
		return true
	}
	switch p.Estado {
	case EstadoPendiente:
		return destino == EstadoConfirmado
	case EstadoConfirmado:
		return destino == EstadoEnProceso
	case EstadoEnProceso:
		return destino == EstadoEnviado || destino == EstadoEntregado
	case EstadoEnviado:
		return destino == EstadoEntregado
	}
	return false
}
