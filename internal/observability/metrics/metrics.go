// Package metrics expone contadores Prometheus de la API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ScreenOps operaciones CRUD por pantalla (browse, detail, create,
	// update, delete).
	ScreenOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arstock_screen_operations_total",
		Help: "Operaciones CRUD por pantalla del panel.",
	}, []string{"screen", "operation"})

	// Logins logins aceptados.
	Logins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arstock_logins_total",
		Help: "Logins aceptados.",
	})
)

// Handler devuelve el handler HTTP estándar de Prometheus (incluye los
// colectores de runtime por defecto).
func Handler() http.Handler {
	return promhttp.Handler()
}
