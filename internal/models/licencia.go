package models

import "time"

type Licencia struct {
	ID                    uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	NegocioID             uint      `json:"negocio_id" gorm:"uniqueIndex;not null"`
	FechaInicio           time.Time `json:"fecha_inicio" gorm:"not null"`
	FechaVencimiento      time.Time `json:"fecha_vencimiento" gorm:"not null"`
	EstaActiva            bool      `json:"esta_activa" gorm:"default:true"`
	PrimeraLicenciaPagada bool      `json:"primera_licencia_pagada" gorm:"default:false"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	Negocio Negocio `json:"-" gorm:"foreignKey:NegocioID;constraint:OnDelete:CASCADE"`
}

func (l *Licencia) TableName() string {
	return "licencias"
}

// EstaVencida compares against the clock regardless of the stored flag;
// the sweep reconciles the flag afterwards.
func (l *Licencia) EstaVencida(ahora time.Time) bool {
	return ahora.After(l.FechaVencimiento)
}

// DiasRestantes returns 0 when the license is inactive or already lapsed,
// otherwise the whole-day floor of the remaining window.
func (l *Licencia) DiasRestantes(ahora time.Time) int {
	if !l.EstaActiva {
		return 0
	}
	restante := l.FechaVencimiento.Sub(ahora)
	if restante <= 0 {
		return 0
	}
	return int(restante.Hours() / 24)
}
