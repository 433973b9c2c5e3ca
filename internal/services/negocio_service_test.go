package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

func setupNegocioService(t *testing.T) (NegocioService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	negocioRepo := repositories.NewNegocioRepository(db)
	billeteraRepo := repositories.NewBilleteraRepository(db)
	referidoSvc := NewReferidoService(db, billeteraRepo, decimal.RequireFromString("2.00"))
	licenciaSvc := NewLicenciaService(db, repositories.NewLicenciaRepository(db), negocioRepo, referidoSvc, 30)
	return NewNegocioService(negocioRepo, licenciaSvc), db
}

func TestRegistrar_CreaNegocioYLicencia(t *testing.T) {
	svc, db := setupNegocioService(t)
	usuario := crearUsuario(t, db, "duenio@test.com")

	negocio, err := svc.Registrar(usuario.ID, "La Bodega de Ana", "Víveres", "Calle 1", "+53 5551234")
	require.NoError(t, err)

	assert.Equal(t, "la-bodega-de-ana", negocio.Slug)
	assert.True(t, negocio.Activo)

	var licencia models.Licencia
	require.NoError(t, db.Where("negocio_id = ?", negocio.ID).First(&licencia).Error)
	assert.True(t, licencia.EstaActiva)
}

func TestRegistrar_UnNegocioPorUsuario(t *testing.T) {
	svc, db := setupNegocioService(t)
	usuario := crearUsuario(t, db, "duenio@test.com")

	_, err := svc.Registrar(usuario.ID, "Primera Tienda", "", "", "")
	require.NoError(t, err)

	_, err = svc.Registrar(usuario.ID, "Segunda Tienda", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya tiene un negocio")
}

func TestRegistrar_NombreObligatorio(t *testing.T) {
	svc, db := setupNegocioService(t)
	usuario := crearUsuario(t, db, "duenio@test.com")

	_, err := svc.Registrar(usuario.ID, "   ", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obligatorio")
}

func TestResolverPorUsuario(t *testing.T) {
	svc, db := setupNegocioService(t)
	usuario := crearUsuario(t, db, "duenio@test.com")
	negocio := crearNegocio(t, db, usuario.ID, "mi-tienda")

	resuelto, err := svc.ResolverPorUsuario(usuario.ID)
	require.NoError(t, err)
	assert.Equal(t, negocio.ID, resuelto.ID)

	_, err = svc.ResolverPorUsuario(usuario.ID + 1)
	assert.ErrorIs(t, err, apperrors.ErrSinNegocio)
}

func TestResolverPorSlug_InactivoEsNoEncontrado(t *testing.T) {
	svc, db := setupNegocioService(t)
	usuario := crearUsuario(t, db, "duenio@test.com")
	negocio := crearNegocio(t, db, usuario.ID, "mi-tienda")

	resuelto, err := svc.ResolverPorSlug("mi-tienda")
	require.NoError(t, err)
	assert.Equal(t, negocio.ID, resuelto.ID)

	require.NoError(t, db.Model(&models.Negocio{}).Where("id = ?", negocio.ID).
		Update("activo", false).Error)

	_, err = svc.ResolverPorSlug("mi-tienda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrado")

	_, err = svc.ResolverPorSlug("no-existe")
	require.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "la-bodega-de-ana", slugify("La Bodega de Ana"))
	assert.Equal(t, "tienda-24-7", slugify("  Tienda 24/7!  "))
	assert.Equal(t, "caf", slugify("Café"))
}
