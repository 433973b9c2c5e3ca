package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuedeTransicionarA(t *testing.T) {
	tests := []struct {
		desde   EstadoPedido
		hacia   EstadoPedido
		permite bool
	}{
		{EstadoPendiente, EstadoConfirmado, true},
		{EstadoPendiente, EstadoCancelado, true},
		{EstadoPendiente, EstadoEnProceso, false},
		{EstadoPendiente, EstadoEnviado, false},
		{EstadoPendiente, EstadoEntregado, false},

		{EstadoConfirmado, EstadoEnProceso, true},
		{EstadoConfirmado, EstadoCancelado, true},
		{EstadoConfirmado, EstadoEnviado, false},
		{EstadoConfirmado, EstadoPendiente, false},

		{EstadoEnProceso, EstadoEnviado, true},
		{EstadoEnProceso, EstadoEntregado, true},
		{EstadoEnProceso, EstadoCancelado, true},
		{EstadoEnProceso, EstadoConfirmado, false},

		{EstadoEnviado, EstadoEntregado, true},
		{EstadoEnviado, EstadoCancelado, true},
		{EstadoEnviado, EstadoEnProceso, false},

		// Terminal states admit nothing, not even cancel.
		{EstadoEntregado, EstadoCancelado, false},
		{EstadoEntregado, EstadoPendiente, false},
		{EstadoCancelado, EstadoPendiente, false},
		{EstadoCancelado, EstadoConfirmado, false},

		{EstadoPendiente, "inventado", false},
	}

	for _, tt := range tests {
		p := Pedido{Estado: tt.desde}
		assert.Equal(t, tt.permite, p.PuedeTransicionarA(tt.hacia),
			"%s -> %s", tt.desde, tt.hacia)
	}
}

func TestEsTerminal(t *testing.T) {
	assert.True(t, (&Pedido{Estado: EstadoEntregado}).EsTerminal())
	assert.True(t, (&Pedido{Estado: EstadoCancelado}).EsTerminal())
	assert.False(t, (&Pedido{Estado: EstadoPendiente}).EsTerminal())
	assert.False(t, (&Pedido{Estado: EstadoEnviado}).EsTerminal())
}

func TestEstadoValido(t *testing.T) {
	for _, estado := range []EstadoPedido{
		EstadoPendiente, EstadoConfirmado, EstadoEnProceso,
		EstadoEnviado, EstadoEntregado, EstadoCancelado,
	} {
		assert.True(t, EstadoValido(estado), string(estado))
	}
	assert.False(t, EstadoValido("enviando"))
	assert.False(t, EstadoValido(""))
}
