package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pedidosCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jatishop_pedidos_creados_total",
		Help: "Pedidos creados, etiquetados por resultado",
	}, []string{"resultado"})

	pedidoCreacionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jatishop_pedido_creacion_segundos",
		Help:    "Duración de la creación transaccional de pedidos",
		Buckets: prometheus.DefBuckets,
	})

	licenciaSweepTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jatishop_licencia_sweep_total",
		Help: "Resultados del sweep de licencias",
	}, []string{"accion"})

	comisionesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jatishop_comisiones_acreditadas_total",
		Help: "Comisiones de referido acreditadas",
	})

	comisionesFallidasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jatishop_comisiones_fallidas_total",
		Help: "Comisiones de referido que fallaron y fueron descartadas",
	})
)

func RecordPedidoCreado(resultado string, duration time.Duration) {
	pedidosCreatedTotal.WithLabelValues(resultado).Inc()
	pedidoCreacionDuration.Observe(duration.Seconds())
}

func RecordSweep(vencidas, creadas int) {
	licenciaSweepTotal.WithLabelValues("vencida").Add(float64(vencidas))
	licenciaSweepTotal.WithLabelValues("creada").Add(float64(creadas))
}

func RecordComisionAcreditada() {
	comisionesTotal.Inc()
}

func RecordComisionFallida() {
	comisionesFallidasTotal.Inc()
}
