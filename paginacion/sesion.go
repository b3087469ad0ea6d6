package paginacion

import (
	"runtime"
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

// Resumen repite los tamaños recibidos junto con los anchos derivados.
type Resumen struct {
	ConfigMemoria
	EsquemaBits
}

// Metricas cuenta los resultados de un lote por clasificación.
type Metricas struct {
	Exitos            int `json:"exitos"`
	FallosPagina      int `json:"fallos_pagina"`
	EntradasInvalidas int `json:"entradas_invalidas"`
	Total             int `json:"total"`
}

// Reporte es el resultado completo de un lote de traducción.
type Reporte struct {
	Resumen      Resumen               `json:"resumen"`
	TablaPaginas map[int]*int          `json:"tabla_paginas"`
	Resultados   []ResultadoTraduccion `json:"resultados"`
	Metricas     Metricas              `json:"metricas"`
}

// EjecutarSesion corre un lote completo: valida la configuración, densifica la
// tabla y traduce cada dirección preservando el orden de entrada. Un error de
// configuración aborta el lote; las fallas por dirección quedan en el reporte.
//
// La tabla densa y el esquema son de solo lectura durante el lote, así que las
// direcciones se traducen en paralelo, acotadas por un semáforo del tamaño de
// la cantidad de CPUs.
func EjecutarSesion(config *ConfigMemoria, dispersa TablaDispersa, direcciones []string) (*Reporte, error) {
	esquema, err := CalcularEsquemaBits(config.MemoriaFisica, config.MemoriaVirtual, config.TamanioPagina)
	if err != nil {
		utils.ErrorLog.Error("Configuración de memoria inválida", "error", err)
		return nil, err
	}

	utils.InfoLog.Debug("Esquema de bits calculado",
		"bits_offset", esquema.BitsOffset,
		"bits_pagina", esquema.BitsNumeroPagina,
		"bits_marco", esquema.BitsMarco,
		"paginas_virtuales", esquema.PaginasVirtuales,
		"marcos", esquema.Marcos)

	densa := ConstruirTablaDensa(dispersa, esquema.PaginasVirtuales)

	resultados := make([]ResultadoTraduccion, len(direcciones))
	sem := utils.NewSemaforo(runtime.NumCPU())
	var wg sync.WaitGroup
	for i, direccion := range direcciones {
		wg.Add(1)
		sem.Wait()
		go func(i int, direccion string) {
			defer wg.Done()
			defer sem.Signal()
			resultados[i] = TraducirDireccion(direccion, esquema, densa)
		}(i, direccion)
	}
	wg.Wait()

	var metricas Metricas
	for _, r := range resultados {
		metricas.Total++
		switch r.Estado {
		case EstadoExito:
			metricas.Exitos++
		case EstadoFalloPagina:
			metricas.FallosPagina++
		case EstadoEntradaInvalida:
			metricas.EntradasInvalidas++
		}
	}

	utils.InfoLog.Info("Lote de traducción completado",
		"direcciones", metricas.Total,
		"exitos", metricas.Exitos,
		"fallos_pagina", metricas.FallosPagina,
		"entradas_invalidas", metricas.EntradasInvalidas)

	return &Reporte{
		Resumen:      Resumen{ConfigMemoria: *config, EsquemaBits: *esquema},
		TablaPaginas: tablaParaReporte(densa),
		Resultados:   resultados,
		Metricas:     metricas,
	}, nil
}

// ConstruirTablaDensa expande la tabla dispersa a todos los índices de página
// en [0, paginas); los índices ausentes quedan sin asignar. Los índices de la
// tabla dispersa que exceden el espacio virtual se descartan.
func ConstruirTablaDensa(dispersa TablaDispersa, paginas uint64) TablaDensa {
	densa := make(TablaDensa, paginas)
	for indice, entrada := range dispersa {
		if indice >= 0 && uint64(indice) < paginas {
			densa[indice] = entrada
		}
	}
	return densa
}

// tablaParaReporte convierte la tabla densa al formato del reporte: índice de
// página a número de marco, con null para las páginas sin mapear.
func tablaParaReporte(densa TablaDensa) map[int]*int {
	tabla := make(map[int]*int, len(densa))
	for indice, entrada := range densa {
		if entrada.Asignada {
			marco := entrada.Marco
			tabla[indice] = &marco
		} else {
			tabla[indice] = nil
		}
	}
	return tabla
}
