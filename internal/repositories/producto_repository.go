package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type ProductoRepository interface {
	Create(producto *models.Producto) error
	GetByID(id uint) (*models.Producto, error)
	GetActivoDeNegocio(id, negocioID uint) (*models.Producto, error)
	SubcategoriaPerteneceANegocio(subcategoriaID, negocioID uint) (bool, error)
	Update(producto *models.Producto) error
}

type productoRepository struct {
	db *gorm.DB
}

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{db: db}
}

func (r *productoRepository) Create(producto *models.Producto) error {
	if err := producto.Validar(); err != nil {
		return err
	}
	if err := r.db.Create(producto).Error; err != nil {
		return fmt.Errorf("failed to create producto: %w", err)
	}
	return nil
}

func (r *productoRepository) GetByID(id uint) (*models.Producto, error) {
	var producto models.Producto
	if err := r.db.First(&producto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("producto not found")
		}
		return nil, fmt.Errorf("failed to get producto: %w", err)
	}
	return &producto, nil
}

// GetActivoDeNegocio resolves a product only when it is active and its
// subcategoria -> categoria chain belongs to the given negocio.
func (r *productoRepository) GetActivoDeNegocio(id, negocioID uint) (*models.Producto, error) {
	var producto models.Producto
	err := r.db.
		Joins("JOIN subcategorias ON subcategorias.id = productos.subcategoria_id").
		Joins("JOIN categorias ON categorias.id = subcategorias.categoria_id").
		Where("productos.id = ? AND productos.activo = ? AND categorias.negocio_id = ?", id, true, negocioID).
		First(&producto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("producto not found")
		}
		return nil, fmt.Errorf("failed to get producto: %w", err)
	}
	return &producto, nil
}

func (r *productoRepository) SubcategoriaPerteneceANegocio(subcategoriaID, negocioID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subcategoria{}).
		Joins("JOIN categorias ON categorias.id = subcategorias.categoria_id").
		Where("subcategorias.id = ? AND categorias.negocio_id = ?", subcategoriaID, negocioID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check subcategoria: %w", err)
	}
	return count > 0, nil
}

func (r *productoRepository) Update(producto *models.Producto) error {
	if err := r.db.Save(producto).Error; err != nil {
		return fmt.Errorf("failed to update producto: %w", err)
	}
	return nil
}
