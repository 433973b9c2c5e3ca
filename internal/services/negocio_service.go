package services

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

type NegocioService interface {
	// ResolverPorUsuario is the single ownership-resolution step used by
	// every admin operation: it returns the caller's negocio or the
	// "no tienes un negocio asociado" error, never leaking other tenants.
	ResolverPorUsuario(usuarioID uint) (*models.Negocio, error)
	// ResolverPorSlug resolves the public storefront; inactive stores are
	// reported as not found, not as forbidden.
	ResolverPorSlug(slug string) (*models.Negocio, error)
	Registrar(usuarioID uint, nombre, descripcion, direccion, telefono string) (*models.Negocio, error)
}

type negocioService struct {
	negocioRepo repositories.NegocioRepository
	licenciaSvc LicenciaService
}

func NewNegocioService(negocioRepo repositories.NegocioRepository, licenciaSvc LicenciaService) NegocioService {
	return &negocioService{
		negocioRepo: negocioRepo,
		licenciaSvc: licenciaSvc,
	}
}

func (s *negocioService) ResolverPorUsuario(usuarioID uint) (*models.Negocio, error) {
	negocio, err := s.negocioRepo.GetByUsuarioID(usuarioID)
	if err != nil {
		return nil, apperrors.ErrSinNegocio
	}
	return negocio, nil
}

func (s *negocioService) ResolverPorSlug(slug string) (*models.Negocio, error) {
	negocio, err := s.negocioRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, apperrors.NewNotFoundError("Negocio")
	}
	if !negocio.Activo {
		return nil, apperrors.NewNotFoundError("Negocio")
	}
	return negocio, nil
}

// Registrar creates the storefront and its initial license in one step; the
// license creation is explicit here instead of hanging off a model hook.
func (s *negocioService) Registrar(usuarioID uint, nombre, descripcion, direccion, telefono string) (*models.Negocio, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, apperrors.NewValidationError("El nombre del negocio es obligatorio")
	}

	if existente, _ := s.negocioRepo.GetByUsuarioID(usuarioID); existente != nil {
		return nil, apperrors.NewConflictError("El usuario ya tiene un negocio")
	}

	negocio := &models.Negocio{
		UsuarioID:   usuarioID,
		Nombre:      nombre,
		Slug:        slugify(nombre),
		Descripcion: descripcion,
		Direccion:   direccion,
		Telefono:    telefono,
		Activo:      true,
	}
	if err := s.negocioRepo.Create(negocio); err != nil {
		return nil, err
	}

	if _, err := s.licenciaSvc.CrearParaNegocio(negocio.ID); err != nil {
		// The sweep backfills missing licenses, so registration itself
		// still succeeds.
		logrus.WithError(err).WithField("negocio_id", negocio.ID).
			Error("No se pudo crear la licencia inicial")
	}

	logrus.WithFields(logrus.Fields{
		"negocio_id": negocio.ID,
		"usuario_id": usuarioID,
	}).Info("Negocio registrado")
	return negocio, nil
}

var slugInvalido = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(nombre string) string {
	slug := strings.ToLower(nombre)
	slug = slugInvalido.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
