package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/monitoring"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

type PedidoService interface {
	CrearPedido(negocioID uint, req *dto.CrearPedidoRequest) (*models.Pedido, error)
	ActualizarEstado(negocioID, pedidoID uint, estado models.EstadoPedido) (*models.Pedido, error)
	CancelarPedido(pedidoID uint) error
	ConsultarPorTelefono(telefono string) ([]models.Pedido, error)
	ListarDeNegocio(negocioID uint) ([]models.Pedido, error)
	ObtenerDeNegocio(negocioID, pedidoID uint) (*models.Pedido, error)
}

// pedidoService holds the db handle directly: order creation is a single
// explicit transaction boundary (lock, re-check, write) rather than a chain
// of repository calls.
type pedidoService struct {
	db         *gorm.DB
	pedidoRepo repositories.PedidoRepository
}

func NewPedidoService(db *gorm.DB, pedidoRepo repositories.PedidoRepository) PedidoService {
	return &pedidoService{
		db:         db,
		pedidoRepo: pedidoRepo,
	}
}

// CrearPedido builds the order aggregate: it validates the request, then in
// one transaction locks each referenced product, re-checks stock under the
// lock, snapshots the discounted unit price, creates the order and its
// items, decrements stock and writes the total last. Any failure rolls the
// whole thing back; no partial order or stock change survives.
//
// Duplicate product ids are processed line by line in input order, without
// merging: the second line for the same product sees the stock remaining
// after the first.
func (s *pedidoService) CrearPedido(negocioID uint, req *dto.CrearPedidoRequest) (*models.Pedido, error) {
	if err := validarPedidoRequest(req); err != nil {
		return nil, err
	}

	metodoPago := models.MetodoPago(req.MetodoPago)
	if req.MetodoPago == "" {
		metodoPago = models.PagoEfectivo
	} else if !metodoPagoValido(metodoPago) {
		return nil, apperrors.NewValidationError("Método de pago no válido")
	}

	pedido := &models.Pedido{
		NombreCliente:    strings.TrimSpace(req.NombreCliente),
		EmailCliente:     strings.ToLower(strings.TrimSpace(req.EmailCliente)),
		TelefonoCliente:  strings.TrimSpace(req.TelefonoCliente),
		DireccionEntrega: strings.TrimSpace(req.DireccionEntrega),
		NegocioID:        negocioID,
		Estado:           models.EstadoPendiente,
		MetodoPago:       metodoPago,
		NotaComprador:    req.NotaComprador,
		Total:            decimal.Zero,
	}

	inicio := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pedido).Error; err != nil {
			return fmt.Errorf("failed to create pedido: %w", err)
		}

		total := decimal.Zero
		for _, item := range req.Productos {
			cantidad := item.Cantidad
			if cantidad == 0 {
				cantidad = 1
			}

			producto, err := s.lockProducto(tx, item.ProductoID, negocioID)
			if err != nil {
				return err
			}

			if producto.Stock < cantidad {
				return apperrors.NewStockError(producto.Nombre)
			}

			precioUnitario := producto.PrecioConDescuento()
			subtotal := precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))

			linea := models.PedidoProducto{
				PedidoID:       pedido.ID,
				ProductoID:     producto.ID,
				Cantidad:       cantidad,
				PrecioUnitario: precioUnitario,
				Subtotal:       subtotal,
			}
			if err := tx.Create(&linea).Error; err != nil {
				return fmt.Errorf("failed to create pedido item: %w", err)
			}
			pedido.Items = append(pedido.Items, linea)

			nuevoStock := producto.Stock - cantidad
			if err := tx.Model(&models.Producto{}).Where("id = ?", producto.ID).
				Update("stock", nuevoStock).Error; err != nil {
				return fmt.Errorf("failed to update stock: %w", err)
			}

			total = total.Add(subtotal)
		}

		pedido.Total = total
		if err := tx.Model(&models.Pedido{}).Where("id = ?", pedido.ID).
			Update("total", total).Error; err != nil {
			return fmt.Errorf("failed to update total: %w", err)
		}
		return nil
	})
	if err != nil {
		monitoring.RecordPedidoCreado("error", time.Since(inicio))
		pedido.Items = nil
		logrus.WithFields(logrus.Fields{
			"negocio_id": negocioID,
			"telefono":   req.TelefonoCliente,
		}).WithError(err).Warn("Creación de pedido revertida")
		return nil, err
	}

	monitoring.RecordPedidoCreado("ok", time.Since(inicio))
	logrus.WithFields(logrus.Fields{
		"pedido_id":  pedido.ID,
		"negocio_id": negocioID,
		"total":      pedido.Total.String(),
		"items":      len(pedido.Items),
	}).Info("Pedido creado")
	return pedido, nil
}

// lockProducto selects the product FOR UPDATE so concurrent orders for the
// same product serialize on the stock check-and-decrement. SQLite has no
// FOR UPDATE syntax; its single-writer lock already serializes the
// transaction.
func (s *pedidoService) lockProducto(tx *gorm.DB, productoID, negocioID uint) (*models.Producto, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "productos"}})
	}

	var producto models.Producto
	err := q.
		Joins("JOIN subcategorias ON subcategorias.id = productos.subcategoria_id").
		Joins("JOIN categorias ON categorias.id = subcategorias.categoria_id").
		Where("productos.id = ? AND productos.activo = ? AND categorias.negocio_id = ?",
			productoID, true, negocioID).
		First(&producto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("El producto %d no pertenece a este negocio", productoID))
		}
		return nil, fmt.Errorf("failed to lock producto %d: %w", productoID, err)
	}
	return &producto, nil
}

func (s *pedidoService) ActualizarEstado(negocioID, pedidoID uint, estado models.EstadoPedido) (*models.Pedido, error) {
	if !models.EstadoValido(estado) {
		return nil, apperrors.ErrEstadoInvalido
	}

	pedido, err := s.obtenerScoped(negocioID, pedidoID)
	if err != nil {
		return nil, err
	}

	if !pedido.PuedeTransicionarA(estado) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("No se puede cambiar el estado de %s a %s", pedido.Estado, estado))
	}

	pedido.Estado = estado
	if err := s.pedidoRepo.Update(pedido); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pedido_id": pedido.ID,
		"estado":    estado,
	}).Info("Estado de pedido actualizado")
	return pedido, nil
}

// CancelarPedido is the customer-facing cancel: allowed only while the
// order is still pendiente.
func (s *pedidoService) CancelarPedido(pedidoID uint) error {
	pedido, err := s.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return apperrors.ErrPedidoNoEncontrado
	}

	if pedido.Estado != models.EstadoPendiente {
		return apperrors.NewValidationError(
			fmt.Sprintf("Solo se pueden cancelar pedidos pendientes, el pedido está %s", pedido.Estado))
	}

	pedido.Estado = models.EstadoCancelado
	return s.pedidoRepo.Update(pedido)
}

func (s *pedidoService) ConsultarPorTelefono(telefono string) ([]models.Pedido, error) {
	telefono = strings.TrimSpace(telefono)
	if telefono == "" {
		return nil, apperrors.NewValidationError("Debe proporcionar un número de teléfono")
	}

	pedidos, err := s.pedidoRepo.ListByTelefono(telefono)
	if err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return nil, apperrors.NewAppError(http.StatusNotFound, "No se encontraron pedidos con ese número de teléfono")
	}
	return pedidos, nil
}

func (s *pedidoService) ListarDeNegocio(negocioID uint) ([]models.Pedido, error) {
	return s.pedidoRepo.ListByNegocio(negocioID)
}

func (s *pedidoService) ObtenerDeNegocio(negocioID, pedidoID uint) (*models.Pedido, error) {
	pedido, err := s.pedidoRepo.GetByIDConItems(pedidoID)
	if err != nil {
		return nil, apperrors.ErrPedidoNoEncontrado
	}
	if pedido.NegocioID != negocioID {
		return nil, apperrors.ErrPedidoNoEncontrado
	}
	return pedido, nil
}

func (s *pedidoService) obtenerScoped(negocioID, pedidoID uint) (*models.Pedido, error) {
	pedido, err := s.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, apperrors.ErrPedidoNoEncontrado
	}
	if pedido.NegocioID != negocioID {
		return nil, apperrors.ErrPedidoNoEncontrado
	}
	return pedido, nil
}

func validarPedidoRequest(req *dto.CrearPedidoRequest) error {
	if len(req.Productos) == 0 {
		return apperrors.ErrPedidoSinProductos
	}
	if strings.TrimSpace(req.NombreCliente) == "" ||
		strings.TrimSpace(req.TelefonoCliente) == "" ||
		strings.TrimSpace(req.DireccionEntrega) == "" {
		return apperrors.NewValidationError("Faltan datos del cliente")
	}
	for _, item := range req.Productos {
		if item.Cantidad < 0 {
			return apperrors.NewValidationError("La cantidad debe ser al menos 1")
		}
	}
	return nil
}

func metodoPagoValido(metodo models.MetodoPago) bool {
	switch metodo {
	case models.PagoEfectivo, models.PagoTransferencia, models.PagoTarjeta:
		return true
	}
	return false
}
