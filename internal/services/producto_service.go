package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

// ProductoService covers the owner-side inventory management that feeds the
// order path: creating products under the store's own subcategorias and
// adjusting price, discount, stock and visibility.
type ProductoService interface {
	Obtener(negocioID, productoID uint) (*models.Producto, error)
	Crear(negocioID uint, req *dto.CrearProductoRequest) (*models.Producto, error)
	Actualizar(negocioID, productoID uint, req *dto.ActualizarProductoRequest) (*models.Producto, error)
}

type productoService struct {
	productoRepo repositories.ProductoRepository
}

func NewProductoService(productoRepo repositories.ProductoRepository) ProductoService {
	return &productoService{productoRepo: productoRepo}
}

func (s *productoService) Obtener(negocioID, productoID uint) (*models.Producto, error) {
	producto, err := s.productoRepo.GetActivoDeNegocio(productoID, negocioID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Producto")
	}
	return producto, nil
}

func (s *productoService) Crear(negocioID uint, req *dto.CrearProductoRequest) (*models.Producto, error) {
	pertenece, err := s.productoRepo.SubcategoriaPerteneceANegocio(req.SubcategoriaID, negocioID)
	if err != nil {
		return nil, err
	}
	if !pertenece {
		return nil, apperrors.NewValidationError("La subcategoría no pertenece a este negocio")
	}

	producto := &models.Producto{
		Nombre:         strings.TrimSpace(req.Nombre),
		Descripcion:    req.Descripcion,
		Precio:         req.Precio,
		Stock:          req.Stock,
		Descuento:      req.Descuento,
		SubcategoriaID: req.SubcategoriaID,
		Activo:         true,
	}
	if err := producto.Validar(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.productoRepo.Create(producto); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"producto_id": producto.ID,
		"negocio_id":  negocioID,
	}).Info("Producto creado")
	return producto, nil
}

func (s *productoService) Actualizar(negocioID, productoID uint, req *dto.ActualizarProductoRequest) (*models.Producto, error) {
	producto, err := s.productoRepo.GetActivoDeNegocio(productoID, negocioID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Producto")
	}

	if req.Nombre != nil {
		producto.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		producto.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		producto.Precio = *req.Precio
	}
	if req.Stock != nil {
		producto.Stock = *req.Stock
	}
	if req.Descuento != nil {
		producto.Descuento = *req.Descuento
	}
	if req.Activo != nil {
		producto.Activo = *req.Activo
	}

	if err := producto.Validar(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := s.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return producto, nil
}
