package models

import "time"

type Negocio struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UsuarioID   uint      `json:"usuario_id" gorm:"not null;index"`
	Nombre      string    `json:"nombre" gorm:"not null;size:200"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	Descripcion string    `json:"descripcion" gorm:"type:text"`
	Direccion   string    `json:"direccion" gorm:"type:text"`
	Telefono    string    `json:"telefono" gorm:"size:20"`
	Activo      bool      `json:"activo" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Usuario Usuario `json:"-" gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
}

func (n *Negocio) TableName() string {
	return "negocios"
}
