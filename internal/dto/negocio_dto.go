package dto

type RegistrarNegocioRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
}
