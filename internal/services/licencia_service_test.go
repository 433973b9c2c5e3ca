package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

func setupLicenciaService(t *testing.T) (*licenciaService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	billeteraRepo := repositories.NewBilleteraRepository(db)
	referidoSvc := NewReferidoService(db, billeteraRepo, decimal.RequireFromString("2.00"))
	svc := NewLicenciaService(
		db,
		repositories.NewLicenciaRepository(db),
		repositories.NewNegocioRepository(db),
		referidoSvc,
		30,
	)
	return svc.(*licenciaService), db
}

func negocioConUsuario(t *testing.T, db *gorm.DB, slug string) *models.Negocio {
	t.Helper()
	usuario := crearUsuario(t, db, slug+"@test.com")
	return crearNegocio(t, db, usuario.ID, slug)
}

func TestCrearParaNegocio_VentanaInicial(t *testing.T) {
	svc, db := setupLicenciaService(t)
	negocio := negocioConUsuario(t, db, "nuevo")

	inicio := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return inicio }

	licencia, err := svc.CrearParaNegocio(negocio.ID)
	require.NoError(t, err)

	assert.True(t, licencia.EstaActiva)
	assert.False(t, licencia.PrimeraLicenciaPagada)
	assert.Equal(t, inicio, licencia.FechaInicio)
	assert.Equal(t, inicio.AddDate(0, 0, 30), licencia.FechaVencimiento)
	assert.Equal(t, 30, licencia.DiasRestantes(inicio))
}

func TestCrearParaNegocio_NegocioInexistente(t *testing.T) {
	svc, _ := setupLicenciaService(t)
	_, err := svc.CrearParaNegocio(99999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Negocio")
}

func TestExtender_LicenciaVigenteAcumula(t *testing.T) {
	svc, db := setupLicenciaService(t)
	negocio := negocioConUsuario(t, db, "vigente")

	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return ahora }

	vencimiento := ahora.AddDate(0, 0, 10)
	licencia := crearLicencia(t, db, negocio.ID, vencimiento, true)

	extendida, err := svc.Extender(licencia.ID, 90)
	require.NoError(t, err)

	// Remaining time is kept: 10 days left + 90 added.
	assert.Equal(t, vencimiento.AddDate(0, 0, 90), extendida.FechaVencimiento.UTC())
	assert.True(t, extendida.EstaActiva)
}

func TestExtender_LicenciaVencidaReiniciaDesdeAhora(t *testing.T) {
	svc, db := setupLicenciaService(t)
	negocio := negocioConUsuario(t, db, "vencido")
	require.NoError(t, db.Model(&models.Negocio{}).Where("id = ?", negocio.ID).
		Update("activo", false).Error)

	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return ahora }

	licencia := crearLicencia(t, db, negocio.ID, ahora.AddDate(0, 0, -15), false)

	extendida, err := svc.Extender(licencia.ID, 30)
	require.NoError(t, err)

	// Lapsed time is not owed: the new window starts from now.
	assert.Equal(t, ahora.AddDate(0, 0, 30), extendida.FechaVencimiento.UTC())
	assert.True(t, extendida.EstaActiva)

	// The business comes back with the license.
	var reactivado models.Negocio
	require.NoError(t, db.First(&reactivado, negocio.ID).Error)
	assert.True(t, reactivado.Activo)
}

func TestExtender_DiasNoPermitidos(t *testing.T) {
	svc, db := setupLicenciaService(t)
	negocio := negocioConUsuario(t, db, "dias")
	licencia := crearLicencia(t, db, negocio.ID, time.Now().AddDate(0, 0, 5), true)

	for _, dias := range []int{0, 1, 7, 60, 366, -30} {
		_, err := svc.Extender(licencia.ID, dias)
		require.Error(t, err, "dias=%d", dias)
		assert.Contains(t, err.Error(), "30, 90, 180 o 365")
	}

	_, err := svc.Extender(99999, 30)
	assert.ErrorIs(t, err, apperrors.ErrSinLicencia)
}

func TestVencer_ForzarVencimiento(t *testing.T) {
	svc, db := setupLicenciaService(t)
	negocio := negocioConUsuario(t, db, "forzado")

	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return ahora }

	licencia := crearLicencia(t, db, negocio.ID, ahora.AddDate(0, 0, 20), true)

	vencida, err := svc.Vencer(licencia.ID)
	require.NoError(t, err)

	assert.Equal(t, ahora.Add(-time.Second), vencida.FechaVencimiento.UTC())
	assert.False(t, vencida.EstaActiva)
	assert.True(t, vencida.EstaVencida(ahora))
	assert.Equal(t, 0, vencida.DiasRestantes(ahora))

	var desactivado models.Negocio
	require.NoError(t, db.First(&desactivado, negocio.ID).Error)
	assert.False(t, desactivado.Activo)
}

func TestSweep_DesactivaVencidasYCreaFaltantes(t *testing.T) {
	svc, db := setupLicenciaService(t)

	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return ahora }

	vigente := negocioConUsuario(t, db, "vigente")
	crearLicencia(t, db, vigente.ID, ahora.AddDate(0, 0, 10), true)

	caducado := negocioConUsuario(t, db, "caducado")
	crearLicencia(t, db, caducado.ID, ahora.AddDate(0, 0, -1), true)

	sinLicencia := negocioConUsuario(t, db, "sin-licencia")

	result := svc.Sweep()
	assert.Equal(t, 1, result.Vencidas)
	assert.Equal(t, 1, result.Creadas)
	assert.Equal(t, 2, result.Activas)

	var licCaducado models.Licencia
	require.NoError(t, db.Where("negocio_id = ?", caducado.ID).First(&licCaducado).Error)
	assert.False(t, licCaducado.EstaActiva)

	var negCaducado models.Negocio
	require.NoError(t, db.First(&negCaducado, caducado.ID).Error)
	assert.False(t, negCaducado.Activo)

	var licNueva models.Licencia
	require.NoError(t, db.Where("negocio_id = ?", sinLicencia.ID).First(&licNueva).Error)
	assert.True(t, licNueva.EstaActiva)
	assert.WithinDuration(t, ahora.AddDate(0, 0, 30), licNueva.FechaVencimiento, time.Second)

	var licVigente models.Licencia
	require.NoError(t, db.Where("negocio_id = ?", vigente.ID).First(&licVigente).Error)
	assert.True(t, licVigente.EstaActiva)
}

func TestSweep_Idempotente(t *testing.T) {
	svc, db := setupLicenciaService(t)

	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return ahora }

	caducado := negocioConUsuario(t, db, "caducado")
	crearLicencia(t, db, caducado.ID, ahora.AddDate(0, 0, -1), true)
	negocioConUsuario(t, db, "sin-licencia")

	primera := svc.Sweep()
	assert.Equal(t, 1, primera.Vencidas)
	assert.Equal(t, 1, primera.Creadas)

	// A second pass over the same state does nothing new.
	segunda := svc.Sweep()
	assert.Zero(t, segunda.Vencidas)
	assert.Zero(t, segunda.Creadas)
	assert.Equal(t, primera.Activas, segunda.Activas)
}

func TestEstadoParaNegocio_ReconciliaAlConsultar(t *testing.T) {
	svc, db := setupLicenciaService(t)
	negocio := negocioConUsuario(t, db, "consulta")

	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.ahora = func() time.Time { return ahora }

	// Lapsed by the clock but still flagged active: the read fixes it.
	crearLicencia(t, db, negocio.ID, ahora.AddDate(0, 0, -2), true)

	licencia, err := svc.EstadoParaNegocio(negocio.ID)
	require.NoError(t, err)
	assert.False(t, licencia.EstaActiva)

	var negDesactivado models.Negocio
	require.NoError(t, db.First(&negDesactivado, negocio.ID).Error)
	assert.False(t, negDesactivado.Activo)

	_, err = svc.EstadoParaNegocio(99999)
	assert.ErrorIs(t, err, apperrors.ErrSinLicencia)
}

func TestDiasRestantes(t *testing.T) {
	ahora := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	licencia := &models.Licencia{
		FechaVencimiento: ahora.Add(36 * time.Hour),
		EstaActiva:       true,
	}
	assert.Equal(t, 1, licencia.DiasRestantes(ahora), "floors partial days")

	licencia.FechaVencimiento = ahora.AddDate(0, 0, -1)
	assert.Equal(t, 0, licencia.DiasRestantes(ahora))

	licencia.FechaVencimiento = ahora.AddDate(0, 0, 10)
	licencia.EstaActiva = false
	assert.Equal(t, 0, licencia.DiasRestantes(ahora), "inactive reports zero")
}
