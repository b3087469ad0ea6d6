package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/paginacion"
)

var (
	estiloTitulo  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	estiloEtiq    = lipgloss.NewStyle().Faint(true)
	estiloExito   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	estiloFallo   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	estiloInvalid = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	estiloResumen = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderizarReporte arma la versión para terminal del reporte de un lote.
func renderizarReporte(reporte *paginacion.Reporte) string {
	var b strings.Builder

	resumen := fmt.Sprintf(
		"%s\n%s %d bytes\n%s %d bytes\n%s %d bytes\n%s offset=%d página=%d marco=%d (virtual=%d, física=%d)\n%s %d páginas, %d marcos",
		estiloTitulo.Render("Esquema de memoria"),
		estiloEtiq.Render("memoria física: "), reporte.Resumen.MemoriaFisica,
		estiloEtiq.Render("memoria virtual:"), reporte.Resumen.MemoriaVirtual,
		estiloEtiq.Render("tamaño página:  "), reporte.Resumen.TamanioPagina,
		estiloEtiq.Render("bits:           "),
		reporte.Resumen.BitsOffset,
		reporte.Resumen.BitsNumeroPagina,
		reporte.Resumen.BitsMarco,
		reporte.Resumen.BitsDireccionVirtual,
		reporte.Resumen.BitsDireccionFisica,
		estiloEtiq.Render("espacio:        "),
		reporte.Resumen.PaginasVirtuales,
		reporte.Resumen.Marcos,
	)
	b.WriteString(estiloResumen.Render(resumen))
	b.WriteString("\n\n")

	b.WriteString(estiloTitulo.Render("Tabla de páginas"))
	b.WriteString("\n")
	indices := make([]int, 0, len(reporte.TablaPaginas))
	for indice := range reporte.TablaPaginas {
		indices = append(indices, indice)
	}
	sort.Ints(indices)
	for _, indice := range indices {
		marco := reporte.TablaPaginas[indice]
		if marco == nil {
			b.WriteString(fmt.Sprintf("  página %d → %s\n", indice, estiloFallo.Render("sin mapear")))
		} else {
			b.WriteString(fmt.Sprintf("  página %d → marco %d\n", indice, *marco))
		}
	}
	b.WriteString("\n")

	b.WriteString(estiloTitulo.Render("Traducciones"))
	b.WriteString("\n")
	for _, r := range reporte.Resultados {
		switch r.Estado {
		case paginacion.EstadoExito:
			b.WriteString(fmt.Sprintf("  %s %s → %s (página %d, marco %d)\n",
				estiloExito.Render("✓"), r.VirtualHex, r.FisicaHex, *r.Pagina, *r.Marco))
		case paginacion.EstadoFalloPagina:
			b.WriteString(fmt.Sprintf("  %s %s: %s\n",
				estiloFallo.Render("✗"), r.VirtualHex, r.Motivo))
		default:
			b.WriteString(fmt.Sprintf("  %s %q: %s\n",
				estiloInvalid.Render("!"), r.Entrada, r.Motivo))
		}
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d traducciones: %d éxitos, %d fallos de página, %d entradas inválidas",
		estiloTitulo.Render("Total:"),
		reporte.Metricas.Total,
		reporte.Metricas.Exitos,
		reporte.Metricas.FallosPagina,
		reporte.Metricas.EntradasInvalidas))

	return b.String()
}
