package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/monitoring"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

type ReferidoService interface {
	// AcreditarComisionPrimeraLicencia credits the fixed referral
	// commission the first time a business's license is active. Best
	// effort: errors are logged and counted, never returned to the
	// activation path.
	AcreditarComisionPrimeraLicencia(licencia *models.Licencia)
	CrearBilletera(usuarioID uint, codigoReferidoDe string) (*models.Billetera, error)
	ObtenerBilletera(usuarioID uint) (*models.Billetera, []models.TransaccionBilletera, error)
}

type referidoService struct {
	db            *gorm.DB
	billeteraRepo repositories.BilleteraRepository
	comision      decimal.Decimal
}

func NewReferidoService(db *gorm.DB, billeteraRepo repositories.BilleteraRepository, comision decimal.Decimal) ReferidoService {
	return &referidoService{
		db:            db,
		billeteraRepo: billeteraRepo,
		comision:      comision,
	}
}

func (s *referidoService) AcreditarComisionPrimeraLicencia(licencia *models.Licencia) {
	if !licencia.EstaActiva || licencia.PrimeraLicenciaPagada {
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var negocio models.Negocio
		if err := tx.First(&negocio, licencia.NegocioID).Error; err != nil {
			return fmt.Errorf("failed to load negocio: %w", err)
		}

		var billeteraDuenio models.Billetera
		err := tx.Where("usuario_id = ?", negocio.UsuarioID).First(&billeteraDuenio).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Owner has no wallet: nothing to refer, but the
				// license still counts as paid once.
				return s.marcarPagada(tx, licencia)
			}
			return fmt.Errorf("failed to load billetera: %w", err)
		}
		if billeteraDuenio.ReferidoPorID == nil {
			return s.marcarPagada(tx, licencia)
		}

		q := tx
		if tx.Dialector.Name() != "sqlite" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var billeteraReferente models.Billetera
		if err := q.Where("usuario_id = ?", *billeteraDuenio.ReferidoPorID).
			First(&billeteraReferente).Error; err != nil {
			return fmt.Errorf("failed to lock billetera del referente: %w", err)
		}

		saldoAnterior := billeteraReferente.Saldo
		saldoPosterior := saldoAnterior.Add(s.comision)
		negocioID := negocio.ID

		transaccion := models.TransaccionBilletera{
			BilleteraID:       billeteraReferente.ID,
			Monto:             s.comision,
			SaldoAnterior:     saldoAnterior,
			SaldoPosterior:    saldoPosterior,
			Descripcion:       fmt.Sprintf("Comisión por primera licencia del negocio %s", negocio.Nombre),
			ReferidoNegocioID: &negocioID,
		}
		if err := tx.Create(&transaccion).Error; err != nil {
			return fmt.Errorf("failed to create transaccion: %w", err)
		}

		if err := tx.Model(&models.Billetera{}).Where("id = ?", billeteraReferente.ID).
			Update("saldo", saldoPosterior).Error; err != nil {
			return fmt.Errorf("failed to update saldo: %w", err)
		}

		return s.marcarPagada(tx, licencia)
	})
	if err != nil {
		monitoring.RecordComisionFallida()
		logrus.WithError(err).WithFields(logrus.Fields{
			"licencia_id": licencia.ID,
			"negocio_id":  licencia.NegocioID,
		}).Error("No se pudo acreditar la comisión de referido")
		return
	}

	monitoring.RecordComisionAcreditada()
	logrus.WithFields(logrus.Fields{
		"licencia_id": licencia.ID,
		"negocio_id":  licencia.NegocioID,
		"monto":       s.comision.String(),
	}).Info("Comisión de referido acreditada")
}

func (s *referidoService) marcarPagada(tx *gorm.DB, licencia *models.Licencia) error {
	licencia.PrimeraLicenciaPagada = true
	if err := tx.Model(&models.Licencia{}).Where("id = ?", licencia.ID).
		Update("primera_licencia_pagada", true).Error; err != nil {
		return fmt.Errorf("failed to mark licencia as pagada: %w", err)
	}
	return nil
}

// CrearBilletera creates the per-user wallet at signup, with a unique
// referral code. The referring user, when a valid code is given, is fixed
// at creation and never reassigned.
func (s *referidoService) CrearBilletera(usuarioID uint, codigoReferidoDe string) (*models.Billetera, error) {
	billetera := &models.Billetera{
		UsuarioID:      usuarioID,
		Saldo:          decimal.Zero,
		CodigoReferido: generarCodigoReferido(),
	}

	if codigoReferidoDe != "" {
		referente, err := s.billeteraRepo.GetByCodigoReferido(strings.TrimSpace(codigoReferidoDe))
		if err != nil {
			return nil, apperrors.NewValidationError("Código de referido no válido")
		}
		if referente.UsuarioID == usuarioID {
			return nil, apperrors.NewValidationError("No puedes referirte a ti mismo")
		}
		billetera.ReferidoPorID = &referente.UsuarioID
	}

	if err := s.billeteraRepo.Create(billetera); err != nil {
		return nil, err
	}
	return billetera, nil
}

// ObtenerBilletera returns the user's wallet with its ledger, newest first.
func (s *referidoService) ObtenerBilletera(usuarioID uint) (*models.Billetera, []models.TransaccionBilletera, error) {
	billetera, err := s.billeteraRepo.GetByUsuarioID(usuarioID)
	if err != nil {
		return nil, nil, apperrors.NewNotFoundError("Billetera")
	}
	transacciones, err := s.billeteraRepo.ListTransacciones(billetera.ID)
	if err != nil {
		return nil, nil, err
	}
	return billetera, transacciones, nil
}

func generarCodigoReferido() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
