package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/monitoring"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

// SweepResult summarizes one pass over the license table.
type SweepResult struct {
	Activas  int `json:"activas"`
	Vencidas int `json:"vencidas"`
	Creadas  int `json:"creadas"`
}

type LicenciaService interface {
	CrearParaNegocio(negocioID uint) (*models.Licencia, error)
	Extender(licenciaID uint, dias int) (*models.Licencia, error)
	Vencer(licenciaID uint) (*models.Licencia, error)
	Sweep() SweepResult
	EstadoParaNegocio(negocioID uint) (*models.Licencia, error)
}

// diasExtensionPermitidos mirrors the operator actions: one month, three
// months, six months, one year.
var diasExtensionPermitidos = map[int]bool{30: true, 90: true, 180: true, 365: true}

type licenciaService struct {
	db            *gorm.DB
	licenciaRepo  repositories.LicenciaRepository
	negocioRepo   repositories.NegocioRepository
	referidoSvc   ReferidoService
	diasIniciales int
	ahora         func() time.Time
}

func NewLicenciaService(
	db *gorm.DB,
	licenciaRepo repositories.LicenciaRepository,
	negocioRepo repositories.NegocioRepository,
	referidoSvc ReferidoService,
	diasIniciales int,
) LicenciaService {
	return &licenciaService{
		db:            db,
		licenciaRepo:  licenciaRepo,
		negocioRepo:   negocioRepo,
		referidoSvc:   referidoSvc,
		diasIniciales: diasIniciales,
		ahora:         time.Now,
	}
}

// CrearParaNegocio gives a fresh business its initial validity window.
func (s *licenciaService) CrearParaNegocio(negocioID uint) (*models.Licencia, error) {
	if _, err := s.negocioRepo.GetByID(negocioID); err != nil {
		return nil, apperrors.NewNotFoundError("Negocio")
	}

	ahora := s.ahora()
	licencia := &models.Licencia{
		NegocioID:        negocioID,
		FechaInicio:      ahora,
		FechaVencimiento: ahora.AddDate(0, 0, s.diasIniciales),
		EstaActiva:       true,
	}
	if licencia.FechaVencimiento.Before(ahora) {
		return nil, apperrors.NewValidationError("La fecha de vencimiento no puede estar en el pasado")
	}

	if err := s.licenciaRepo.Create(licencia); err != nil {
		return nil, err
	}
	return licencia, nil
}

// Extender adds days on top of whatever validity remains: a lapsed license
// restarts from now, a live one keeps its remaining time. The license and
// its business are reactivated, which may fire the one-time referral
// commission.
func (s *licenciaService) Extender(licenciaID uint, dias int) (*models.Licencia, error) {
	if !diasExtensionPermitidos[dias] {
		return nil, apperrors.NewValidationError("Los días de extensión deben ser 30, 90, 180 o 365")
	}

	licencia, err := s.licenciaRepo.GetByID(licenciaID)
	if err != nil {
		return nil, apperrors.ErrSinLicencia
	}

	ahora := s.ahora()
	if licencia.FechaVencimiento.Before(ahora) {
		licencia.FechaVencimiento = ahora.AddDate(0, 0, dias)
	} else {
		licencia.FechaVencimiento = licencia.FechaVencimiento.AddDate(0, 0, dias)
	}
	licencia.EstaActiva = true

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(licencia).Error; err != nil {
			return fmt.Errorf("failed to update licencia: %w", err)
		}
		if err := tx.Model(&models.Negocio{}).Where("id = ?", licencia.NegocioID).
			Update("activo", true).Error; err != nil {
			return fmt.Errorf("failed to reactivate negocio: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"licencia_id":       licencia.ID,
		"negocio_id":        licencia.NegocioID,
		"fecha_vencimiento": licencia.FechaVencimiento,
	}).Info("Licencia extendida")

	// Best effort: a commission failure never undoes the extension.
	s.referidoSvc.AcreditarComisionPrimeraLicencia(licencia)

	return licencia, nil
}

// Vencer forces the license one second into the past and deactivates the
// business immediately.
func (s *licenciaService) Vencer(licenciaID uint) (*models.Licencia, error) {
	licencia, err := s.licenciaRepo.GetByID(licenciaID)
	if err != nil {
		return nil, apperrors.ErrSinLicencia
	}

	licencia.FechaVencimiento = s.ahora().Add(-time.Second)
	licencia.EstaActiva = false

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(licencia).Error; err != nil {
			return fmt.Errorf("failed to update licencia: %w", err)
		}
		if err := tx.Model(&models.Negocio{}).Where("id = ?", licencia.NegocioID).
			Update("activo", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate negocio: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"licencia_id": licencia.ID,
		"negocio_id":  licencia.NegocioID,
	}).Warn("Licencia vencida manualmente")
	return licencia, nil
}

// Sweep deactivates every lapsed license (and its business) and backfills a
// license for every business that lacks one. Each record is processed
// independently: a failure is logged and the sweep moves on, so one bad row
// never blocks the rest. Safe to run repeatedly.
func (s *licenciaService) Sweep() SweepResult {
	var result SweepResult
	ahora := s.ahora()

	vencidas, err := s.licenciaRepo.ListActivasVencidas(ahora)
	if err != nil {
		logrus.WithError(err).Error("Sweep: no se pudieron listar licencias vencidas")
	}
	for i := range vencidas {
		licencia := &vencidas[i]
		licencia.EstaActiva = false
		if err := s.licenciaRepo.Update(licencia); err != nil {
			logrus.WithError(err).WithField("licencia_id", licencia.ID).
				Error("Sweep: no se pudo desactivar la licencia")
			continue
		}
		if err := s.negocioRepo.SetActivo(licencia.NegocioID, false); err != nil {
			logrus.WithError(err).WithField("negocio_id", licencia.NegocioID).
				Error("Sweep: no se pudo desactivar el negocio")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"licencia_id": licencia.ID,
			"negocio_id":  licencia.NegocioID,
		}).Info("Sweep: licencia vencida desactivada")
		result.Vencidas++
	}

	sinLicencia, err := s.negocioRepo.ListSinLicencia()
	if err != nil {
		logrus.WithError(err).Error("Sweep: no se pudieron listar negocios sin licencia")
	}
	for i := range sinLicencia {
		if _, err := s.CrearParaNegocio(sinLicencia[i].ID); err != nil {
			logrus.WithError(err).WithField("negocio_id", sinLicencia[i].ID).
				Error("Sweep: no se pudo crear la licencia")
			continue
		}
		logrus.WithField("negocio_id", sinLicencia[i].ID).Info("Sweep: licencia creada")
		result.Creadas++
	}

	if activas, err := s.licenciaRepo.CountActivas(); err == nil {
		result.Activas = int(activas)
	}

	monitoring.RecordSweep(result.Vencidas, result.Creadas)
	return result
}

// EstadoParaNegocio reconciles the stored flag with the clock before
// reporting, mirroring the on-access check of the license status endpoint.
func (s *licenciaService) EstadoParaNegocio(negocioID uint) (*models.Licencia, error) {
	licencia, err := s.licenciaRepo.GetByNegocioID(negocioID)
	if err != nil {
		return nil, apperrors.ErrSinLicencia
	}

	ahora := s.ahora()
	if licencia.EstaActiva && licencia.EstaVencida(ahora) {
		licencia.EstaActiva = false
		if err := s.licenciaRepo.Update(licencia); err != nil {
			return nil, err
		}
		if err := s.negocioRepo.SetActivo(licencia.NegocioID, false); err != nil {
			return nil, err
		}
	}
	return licencia, nil
}
