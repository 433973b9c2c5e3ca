package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type PedidoRepository interface {
	GetByID(id uint) (*models.Pedido, error)
	GetByIDConItems(id uint) (*models.Pedido, error)
	ListByNegocio(negocioID uint) ([]models.Pedido, error)
	ListByTelefono(telefono string) ([]models.Pedido, error)
	Update(pedido *models.Pedido) error
}

type pedidoRepository struct {
	db *gorm.DB
}

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

func (r *pedidoRepository) GetByID(id uint) (*models.Pedido, error) {
	var pedido models.Pedido
	if err := r.db.First(&pedido, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pedido not found")
		}
		return nil, fmt.Errorf("failed to get pedido: %w", err)
	}
	return &pedido, nil
}

func (r *pedidoRepository) GetByIDConItems(id uint) (*models.Pedido, error) {
	var pedido models.Pedido
	if err := r.db.Preload("Items").First(&pedido, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pedido not found")
		}
		return nil, fmt.Errorf("failed to get pedido: %w", err)
	}
	return &pedido, nil
}

func (r *pedidoRepository) ListByNegocio(negocioID uint) ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := r.db.
		Preload("Items").
		Where("negocio_id = ?", negocioID).
		Order("fecha_pedido DESC").
		Find(&pedidos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pedidos: %w", err)
	}
	return pedidos, nil
}

func (r *pedidoRepository) ListByTelefono(telefono string) ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := r.db.
		Preload("Items").
		Where("telefono_cliente = ?", telefono).
		Order("fecha_pedido DESC").
		Find(&pedidos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pedidos by telefono: %w", err)
	}
	return pedidos, nil
}

func (r *pedidoRepository) Update(pedido *models.Pedido) error {
	if err := r.db.Save(pedido).Error; err != nil {
		return fmt.Errorf("failed to update pedido: %w", err)
	}
	return nil
}
