package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrecioConDescuento(t *testing.T) {
	tests := []struct {
		nombre    string
		precio    string
		descuento int
		esperado  string
	}{
		{"sin descuento", "100.00", 0, "100.00"},
		{"descuento negativo se ignora", "100.00", -10, "100.00"},
		{"diez por ciento", "100.00", 10, "90.00"},
		{"redondeo a dos decimales", "9.99", 33, "6.69"},
		{"descuento maximo", "50.00", 99, "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			p := Producto{
				Precio:    decimal.RequireFromString(tt.precio),
				Descuento: tt.descuento,
			}
			esperado := decimal.RequireFromString(tt.esperado)
			assert.True(t, p.PrecioConDescuento().Equal(esperado),
				"got %s, want %s", p.PrecioConDescuento(), esperado)
		})
	}
}

func TestProductoValidar(t *testing.T) {
	valido := Producto{Precio: decimal.RequireFromString("10.00"), Stock: 5, Descuento: 20}
	assert.NoError(t, valido.Validar())

	precioNegativo := Producto{Precio: decimal.RequireFromString("-1.00")}
	assert.Error(t, precioNegativo.Validar())

	stockNegativo := Producto{Precio: decimal.Zero, Stock: -1}
	assert.Error(t, stockNegativo.Validar())

	descuentoExcesivo := Producto{Precio: decimal.Zero, Descuento: 100}
	assert.Error(t, descuentoExcesivo.Validar())
}
