package paginacion

import (
	"fmt"
	"math/bits"
)

// BitsMarcoMinimo es la cantidad de bits reservados para el número de marco
// cuando hay a lo sumo un marco físico (Marcos <= 1). Con 0, la dirección
// física de un sistema de un solo marco es directamente el offset.
const BitsMarcoMinimo = 0

// CalcularEsquemaBits deriva los anchos de campo a partir de los tres tamaños,
// usando BitsMarcoMinimo como política para Marcos <= 1.
func CalcularEsquemaBits(fisica, virtual, pagina TamanioBytes) (*EsquemaBits, error) {
	return CalcularEsquemaBitsConMinimo(fisica, virtual, pagina, BitsMarcoMinimo)
}

// CalcularEsquemaBitsConMinimo permite elegir explícitamente cuántos bits de
// marco reservar cuando hay a lo sumo un marco físico.
//
// Los tres tamaños deben ser potencias de 2: una memoria que no lo sea no
// define un espacio de direcciones completo y se rechaza en lugar de truncar
// el logaritmo.
func CalcularEsquemaBitsConMinimo(fisica, virtual, pagina TamanioBytes, minimoBitsMarco int) (*EsquemaBits, error) {
	if virtual == 0 {
		return nil, ErrMemoriaVirtualInvalida
	}
	if fisica == 0 {
		return nil, ErrMemoriaFisicaInvalida
	}
	if !esPotenciaDeDos(pagina) {
		return nil, fmt.Errorf("%w: %d bytes", ErrPaginaNoPotenciaDeDos, pagina)
	}
	if !esPotenciaDeDos(virtual) {
		return nil, fmt.Errorf("%w: memoria virtual de %d bytes", ErrMemoriaNoPotenciaDeDos, virtual)
	}
	if !esPotenciaDeDos(fisica) {
		return nil, fmt.Errorf("%w: memoria física de %d bytes", ErrMemoriaNoPotenciaDeDos, fisica)
	}
	if pagina > virtual {
		return nil, fmt.Errorf("%w: página de %d bytes, memoria virtual de %d bytes",
			ErrPaginaMayorQueVirtual, pagina, virtual)
	}

	bitsOffset := log2(pagina)
	bitsVirtual := log2(virtual)
	marcos := fisica / pagina

	bitsMarco := minimoBitsMarco
	if marcos > 1 {
		// techo de log2: cantidad de bits necesarios para numerar marcos-1
		bitsMarco = bits.Len64(marcos - 1)
	}

	return &EsquemaBits{
		BitsOffset:           bitsOffset,
		BitsDireccionVirtual: bitsVirtual,
		BitsNumeroPagina:     bitsVirtual - bitsOffset,
		BitsMarco:            bitsMarco,
		BitsDireccionFisica:  bitsMarco + bitsOffset,
		PaginasVirtuales:     virtual / pagina,
		Marcos:               marcos,
	}, nil
}

func esPotenciaDeDos(n uint64) bool {
	return n > 0 && n&(n-1) == 0
}

// log2 exacto; solo válido para potencias de 2.
func log2(n uint64) int {
	return bits.TrailingZeros64(n)
}
