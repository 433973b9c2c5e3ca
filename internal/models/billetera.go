package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Billetera struct {
	ID             uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	UsuarioID      uint            `json:"usuario_id" gorm:"uniqueIndex;not null"`
	Saldo          decimal.Decimal `json:"saldo" gorm:"type:decimal(10,2);default:0"`
	CodigoReferido string          `json:"codigo_referido" gorm:"uniqueIndex;not null;size:20"`
	ReferidoPorID  *uint           `json:"referido_por_id" gorm:"index"`
	CreatedAt      time.Time       `json:"fecha_creacion"`
	UpdatedAt      time.Time       `json:"ultima_actualizacion"`

	Usuario     Usuario  `json:"-" gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
	ReferidoPor *Usuario `json:"-" gorm:"foreignKey:ReferidoPorID;constraint:OnDelete:SET NULL"`
}

func (b *Billetera) TableName() string {
	return "billeteras"
}

// TransaccionBilletera is the append-only ledger. Creating one is the only
// path that mutates Billetera.Saldo; saldo_anterior and saldo_posterior are
// snapshotted inside the same transaction as the insert.
type TransaccionBilletera struct {
	ID                uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	BilleteraID       uint            `json:"billetera_id" gorm:"not null;index"`
	Monto             decimal.Decimal `json:"monto" gorm:"type:decimal(10,2);not null"`
	SaldoAnterior     decimal.Decimal `json:"saldo_anterior" gorm:"type:decimal(10,2);not null"`
	SaldoPosterior    decimal.Decimal `json:"saldo_posterior" gorm:"type:decimal(10,2);not null"`
	Descripcion       string          `json:"descripcion" gorm:"type:text"`
	ReferidoNegocioID *uint           `json:"referido_negocio_id" gorm:"index"`
	Fecha             time.Time       `json:"fecha" gorm:"autoCreateTime"`

	Billetera       Billetera `json:"-" gorm:"foreignKey:BilleteraID;constraint:OnDelete:CASCADE"`
	ReferidoNegocio *Negocio  `json:"-" gorm:"foreignKey:ReferidoNegocioID;constraint:OnDelete:SET NULL"`
}

func (t *TransaccionBilletera) TableName() string {
	return "transacciones_billetera"
}
