package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type NegocioRepository interface {
	Create(negocio *models.Negocio) error
	GetByID(id uint) (*models.Negocio, error)
	GetByUsuarioID(usuarioID uint) (*models.Negocio, error)
	GetBySlug(slug string) (*models.Negocio, error)
	Update(negocio *models.Negocio) error
	SetActivo(id uint, activo bool) error
	ListSinLicencia() ([]models.Negocio, error)
}

type negocioRepository struct {
	db *gorm.DB
}

func NewNegocioRepository(db *gorm.DB) NegocioRepository {
	return &negocioRepository{db: db}
}

func (r *negocioRepository) Create(negocio *models.Negocio) error {
	if err := r.db.Create(negocio).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("negocio already exists")
		}
		return fmt.Errorf("failed to create negocio: %w", err)
	}
	return nil
}

func (r *negocioRepository) GetByID(id uint) (*models.Negocio, error) {
	var negocio models.Negocio
	if err := r.db.First(&negocio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("negocio not found")
		}
		return nil, fmt.Errorf("failed to get negocio: %w", err)
	}
	return &negocio, nil
}

func (r *negocioRepository) GetByUsuarioID(usuarioID uint) (*models.Negocio, error) {
	var negocio models.Negocio
	if err := r.db.Where("usuario_id = ?", usuarioID).First(&negocio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("negocio not found")
		}
		return nil, fmt.Errorf("failed to get negocio by usuario: %w", err)
	}
	return &negocio, nil
}

func (r *negocioRepository) GetBySlug(slug string) (*models.Negocio, error) {
	var negocio models.Negocio
	if err := r.db.Where("slug = ?", slug).First(&negocio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("negocio not found")
		}
		return nil, fmt.Errorf("failed to get negocio by slug: %w", err)
	}
	return &negocio, nil
}

func (r *negocioRepository) Update(negocio *models.Negocio) error {
	if err := r.db.Save(negocio).Error; err != nil {
		return fmt.Errorf("failed to update negocio: %w", err)
	}
	return nil
}

func (r *negocioRepository) SetActivo(id uint, activo bool) error {
	result := r.db.Model(&models.Negocio{}).Where("id = ?", id).Update("activo", activo)
	if result.Error != nil {
		return fmt.Errorf("failed to update negocio: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("negocio not found")
	}
	return nil
}

func (r *negocioRepository) ListSinLicencia() ([]models.Negocio, error) {
	var negocios []models.Negocio
	err := r.db.
		Joins("LEFT JOIN licencias ON licencias.negocio_id = negocios.id").
		Where("licencias.id IS NULL").
		Find(&negocios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list negocios without licencia: %w", err)
	}
	return negocios, nil
}
