package paginacion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configDePrueba() *ConfigMemoria {
	return &ConfigMemoria{
		MemoriaFisica:  16 * kbyte,
		MemoriaVirtual: 64 * kbyte,
		TamanioPagina:  4 * kbyte,
	}
}

func TestEjecutarSesion(t *testing.T) {
	dispersa := TablaDispersa{
		0: {Marco: 2, Asignada: true},
		1: {},
	}
	direcciones := []string{"0x0FA0", "0x1050", "no-es-hex"}

	reporte, err := EjecutarSesion(configDePrueba(), dispersa, direcciones)
	require.NoError(t, err)

	// El resumen repite la configuración y los anchos derivados
	assert.Equal(t, TamanioBytes(16*kbyte), reporte.Resumen.MemoriaFisica)
	assert.Equal(t, 12, reporte.Resumen.BitsOffset)
	assert.Equal(t, 4, reporte.Resumen.BitsNumeroPagina)

	// La tabla densa cubre todos los índices del espacio virtual
	require.Len(t, reporte.TablaPaginas, 16)
	require.NotNil(t, reporte.TablaPaginas[0])
	assert.Equal(t, 2, *reporte.TablaPaginas[0])
	assert.Nil(t, reporte.TablaPaginas[1])
	assert.Nil(t, reporte.TablaPaginas[15])

	// Un resultado por dirección, en el orden de entrada
	require.Len(t, reporte.Resultados, 3)
	assert.Equal(t, EstadoExito, reporte.Resultados[0].Estado)
	assert.Equal(t, "0x2FA0", reporte.Resultados[0].FisicaHex)
	assert.Equal(t, EstadoFalloPagina, reporte.Resultados[1].Estado)
	assert.Equal(t, EstadoEntradaInvalida, reporte.Resultados[2].Estado)

	assert.Equal(t, Metricas{Exitos: 1, FallosPagina: 1, EntradasInvalidas: 1, Total: 3}, reporte.Metricas)
}

func TestEjecutarSesionPreservaOrden(t *testing.T) {
	// Muchas direcciones para ejercitar la traducción en paralelo: cada
	// resultado tiene que quedar en la posición de su entrada
	dispersa := TablaDispersa{}
	for i := 0; i < 16; i++ {
		dispersa[i] = EntradaTabla{Marco: i % 4, Asignada: true}
	}

	var direcciones []string
	for i := 0; i < 500; i++ {
		direcciones = append(direcciones, fmt.Sprintf("0x%04X", (i*16)%0x10000))
	}

	reporte, err := EjecutarSesion(configDePrueba(), dispersa, direcciones)
	require.NoError(t, err)
	require.Len(t, reporte.Resultados, len(direcciones))

	for i, r := range reporte.Resultados {
		require.Equal(t, EstadoExito, r.Estado)
		assert.Equal(t, direcciones[i], r.VirtualHex, "posición %d", i)
	}
	assert.Equal(t, len(direcciones), reporte.Metricas.Exitos)
}

func TestEjecutarSesionConfiguracionInvalidaAborta(t *testing.T) {
	config := &ConfigMemoria{
		MemoriaFisica:  16 * kbyte,
		MemoriaVirtual: 64 * kbyte,
		TamanioPagina:  3000, // no es potencia de 2
	}

	reporte, err := EjecutarSesion(config, TablaDispersa{}, []string{"0x0FA0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaginaNoPotenciaDeDos)
	assert.Nil(t, reporte)
}

func TestEjecutarSesionSinDirecciones(t *testing.T) {
	reporte, err := EjecutarSesion(configDePrueba(), TablaDispersa{}, nil)
	require.NoError(t, err)
	assert.Empty(t, reporte.Resultados)
	assert.Equal(t, Metricas{}, reporte.Metricas)
}

func TestConstruirTablaDensaDescartaFueraDeRango(t *testing.T) {
	densa := ConstruirTablaDensa(TablaDispersa{
		0:  {Marco: 1, Asignada: true},
		99: {Marco: 2, Asignada: true}, // fuera del espacio de 16 páginas
	}, 16)

	require.Len(t, densa, 16)
	assert.True(t, densa[0].Asignada)
	for i := 1; i < 16; i++ {
		assert.False(t, densa[i].Asignada)
	}
}
