package dto

import "time"

type LicenciaEstadoResponse struct {
	EstaActiva       bool      `json:"esta_activa"`
	DiasRestantes    int       `json:"dias_restantes"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
	NegocioActivo    bool      `json:"negocio_activo"`
}

type ExtenderLicenciaRequest struct {
	Dias int `json:"dias" binding:"required"`
}
