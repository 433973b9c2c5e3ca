package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Producto struct {
	ID             uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre         string          `json:"nombre" gorm:"not null;size:200"`
	Descripcion    string          `json:"descripcion" gorm:"type:text"`
	Precio         decimal.Decimal `json:"precio" gorm:"type:decimal(10,2);not null"`
	Stock          int             `json:"stock" gorm:"not null;default:0"`
	Descuento      int             `json:"descuento" gorm:"not null;default:0"`
	SubcategoriaID uint            `json:"subcategoria_id" gorm:"not null;index"`
	Activo         bool            `json:"activo" gorm:"default:true"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Subcategoria Subcategoria `json:"-" gorm:"foreignKey:SubcategoriaID;constraint:OnDelete:CASCADE"`
}

func (p *Producto) TableName() string {
	return "productos"
}

// PrecioConDescuento applies the integer discount percentage (0-99) in
// fixed-point arithmetic, rounded to two decimal places.
func (p *Producto) PrecioConDescuento() decimal.Decimal {
	if p.Descuento <= 0 {
		return p.Precio
	}
	factor := decimal.NewFromInt(int64(100 - p.Descuento))
	return p.Precio.Mul(factor).Div(decimal.NewFromInt(100)).Round(2)
}

func (p *Producto) Validar() error {
	if p.Precio.LessThan(decimal.Zero) {
		return fmt.Errorf("el precio no puede ser negativo")
	}
	if p.Stock < 0 {
		return fmt.Errorf("el stock no puede ser negativo")
	}
	if p.Descuento < 0 || p.Descuento > 99 {
		return fmt.Errorf("el descuento debe estar entre 0 y 99")
	}
	return nil
}
