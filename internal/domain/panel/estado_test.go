package panel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-instalaciones/internal/domain/entity"
	"github.com/jhoicas/ventas-instalaciones/internal/domain/panel"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		visita    string
		aprov     string
		want      string
		prioridad int
	}{
		{"venta sin visita", "", "", panel.EstadoSinAgendar, 1},
		{"visita pendiente", entity.VisitaPendiente, "", panel.EstadoPorConfirmar, 2},
		{"visita reprogramada", entity.VisitaReprogramada, "", panel.EstadoPorConfirmar, 2},
		{"visita programada", entity.VisitaProgramada, "", panel.EstadoVisitaProgramada, 3},
		{"programada con aprov en proceso", entity.VisitaProgramada, entity.AprovEnProceso, panel.EstadoPendienteAprov, 4},
		{"visita completada sin aprov", entity.VisitaCompletada, "", panel.EstadoPendienteAprov, 4},
		{"visita completada aprov pendiente", entity.VisitaCompletada, entity.AprovPendiente, panel.EstadoPendienteAprov, 4},
		{"aprov sin visita", "", entity.AprovPendiente, panel.EstadoPendienteAprov, 4},
		{"instalado", entity.VisitaCompletada, entity.AprovCompletado, panel.EstadoInstalado, 5},
		{"completado gana a cancelada", entity.VisitaCancelada, entity.AprovCompletado, panel.EstadoInstalado, 5},
		{"cancelado", entity.VisitaCancelada, "", panel.EstadoCancelado, 6},
		{"cancelado con aprov pendiente", entity.VisitaCancelada, entity.AprovPendiente, panel.EstadoCancelado, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := panel.Resolve(tc.visita, tc.aprov)
			assert.Equal(t, tc.want, got.Nombre)
			assert.Equal(t, tc.prioridad, got.Prioridad)
		})
	}
}

func TestEstados_OrdenadosPorPrioridad(t *testing.T) {
	estados := panel.Estados()
	for i := 1; i < len(estados); i++ {
		assert.Less(t, estados[i-1].Prioridad, estados[i].Prioridad)
	}
	assert.True(t, panel.IsValid(panel.EstadoInstalado))
	assert.False(t, panel.IsValid("Desconocido"))
}
