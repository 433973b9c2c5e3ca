package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type BilleteraRepository interface {
	Create(billetera *models.Billetera) error
	GetByUsuarioID(usuarioID uint) (*models.Billetera, error)
	GetByCodigoReferido(codigo string) (*models.Billetera, error)
	ListTransacciones(billeteraID uint) ([]models.TransaccionBilletera, error)
}

type billeteraRepository struct {
	db *gorm.DB
}

func NewBilleteraRepository(db *gorm.DB) BilleteraRepository {
	return &billeteraRepository{db: db}
}

func (r *billeteraRepository) Create(billetera *models.Billetera) error {
	if err := r.db.Create(billetera).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("billetera already exists")
		}
		return fmt.Errorf("failed to create billetera: %w", err)
	}
	return nil
}

func (r *billeteraRepository) GetByUsuarioID(usuarioID uint) (*models.Billetera, error) {
	var billetera models.Billetera
	if err := r.db.Where("usuario_id = ?", usuarioID).First(&billetera).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("billetera not found")
		}
		return nil, fmt.Errorf("failed to get billetera: %w", err)
	}
	return &billetera, nil
}

func (r *billeteraRepository) GetByCodigoReferido(codigo string) (*models.Billetera, error) {
	var billetera models.Billetera
	if err := r.db.Where("codigo_referido = ?", codigo).First(&billetera).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("billetera not found")
		}
		return nil, fmt.Errorf("failed to get billetera by codigo: %w", err)
	}
	return &billetera, nil
}

func (r *billeteraRepository) ListTransacciones(billeteraID uint) ([]models.TransaccionBilletera, error) {
	var transacciones []models.TransaccionBilletera
	err := r.db.
		Where("billetera_id = ?", billeteraID).
		Order("fecha DESC").
		Find(&transacciones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transacciones: %w", err)
	}
	return transacciones, nil
}
