package models

import "time"

type Usuario struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:100"`
	Nombre    string    `json:"nombre" gorm:"size:100"`
	Activo    bool      `json:"activo" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *Usuario) TableName() string {
	return "usuarios"
}
