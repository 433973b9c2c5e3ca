package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rodolf-GitHub/jatishop-back/internal/models"
)

type CrearBilleteraRequest struct {
	CodigoReferido string `json:"codigo_referido"`
}

type TransaccionResponse struct {
	ID             uint            `json:"id"`
	Monto          decimal.Decimal `json:"monto"`
	SaldoAnterior  decimal.Decimal `json:"saldo_anterior"`
	SaldoPosterior decimal.Decimal `json:"saldo_posterior"`
	Descripcion    string          `json:"descripcion"`
	Fecha          time.Time       `json:"fecha"`
}

type BilleteraResponse struct {
	ID             uint                  `json:"id"`
	Saldo          decimal.Decimal       `json:"saldo"`
	CodigoReferido string                `json:"codigo_referido"`
	Transacciones  []TransaccionResponse `json:"transacciones"`
}

func ToBilleteraResponse(billetera *models.Billetera, transacciones []models.TransaccionBilletera) BilleteraResponse {
	items := make([]TransaccionResponse, 0, len(transacciones))
	for i := range transacciones {
		tx := &transacciones[i]
		items = append(items, TransaccionResponse{
			ID:             tx.ID,
			Monto:          tx.Monto,
			SaldoAnterior:  tx.SaldoAnterior,
			SaldoPosterior: tx.SaldoPosterior,
			Descripcion:    tx.Descripcion,
			Fecha:          tx.Fecha,
		})
	}
	return BilleteraResponse{
		ID:             billetera.ID,
		Saldo:          billetera.Saldo,
		CodigoReferido: billetera.CodigoReferido,
		Transacciones:  items,
	}
}
