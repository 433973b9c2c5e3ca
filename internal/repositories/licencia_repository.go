package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type LicenciaRepository interface {
	Create(licencia *models.Licencia) error
	GetByID(id uint) (*models.Licencia, error)
	GetByNegocioID(negocioID uint) (*models.Licencia, error)
	Update(licencia *models.Licencia) error
	ListActivasVencidas(ahora time.Time) ([]models.Licencia, error)
	CountActivas() (int64, error)
}

type licenciaRepository struct {
	db *gorm.DB
}

func NewLicenciaRepository(db *gorm.DB) LicenciaRepository {
	return &licenciaRepository{db: db}
}

func (r *licenciaRepository) Create(licencia *models.Licencia) error {
	if err := r.db.Create(licencia).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("licencia already exists for negocio %d", licencia.NegocioID)
		}
		return fmt.Errorf("failed to create licencia: %w", err)
	}
	return nil
}

func (r *licenciaRepository) GetByID(id uint) (*models.Licencia, error) {
	var licencia models.Licencia
	if err := r.db.First(&licencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("licencia not found")
		}
		return nil, fmt.Errorf("failed to get licencia: %w", err)
	}
	return &licencia, nil
}

func (r *licenciaRepository) GetByNegocioID(negocioID uint) (*models.Licencia, error) {
	var licencia models.Licencia
	if err := r.db.Where("negocio_id = ?", negocioID).First(&licencia).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("licencia not found")
		}
		return nil, fmt.Errorf("failed to get licencia by negocio: %w", err)
	}
	return &licencia, nil
}

func (r *licenciaRepository) Update(licencia *models.Licencia) error {
	if err := r.db.Save(licencia).Error; err != nil {
		return fmt.Errorf("failed to update licencia: %w", err)
	}
	return nil
}

func (r *licenciaRepository) ListActivasVencidas(ahora time.Time) ([]models.Licencia, error) {
	var licencias []models.Licencia
	err := r.db.
		Where("esta_activa = ? AND fecha_vencimiento < ?", true, ahora).
		Find(&licencias).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired licencias: %w", err)
	}
	return licencias, nil
}

func (r *licenciaRepository) CountActivas() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Licencia{}).Where("esta_activa = ?", true).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active licencias: %w", err)
	}
	return count, nil
}
