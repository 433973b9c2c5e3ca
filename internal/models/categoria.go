package models

import "time"

type Categoria struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	NegocioID uint      `json:"negocio_id" gorm:"not null;index"`
	Nombre    string    `json:"nombre" gorm:"not null;size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Negocio Negocio `json:"-" gorm:"foreignKey:NegocioID;constraint:OnDelete:CASCADE"`
}

func (c *Categoria) TableName() string {
	return "categorias"
}

type Subcategoria struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoriaID uint      `json:"categoria_id" gorm:"not null;index"`
	Nombre      string    `json:"nombre" gorm:"not null;size:100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Categoria Categoria `json:"-" gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}

func (s *Subcategoria) TableName() string {
	return "subcategorias"
}
