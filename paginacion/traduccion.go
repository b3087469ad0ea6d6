package paginacion

import (
	"fmt"
	"strconv"
	"strings"
)

// EstadoTraduccion clasifica el resultado de traducir una dirección.
type EstadoTraduccion string

const (
	EstadoExito           EstadoTraduccion = "exito"
	EstadoFalloPagina     EstadoTraduccion = "fallo_pagina"
	EstadoEntradaInvalida EstadoTraduccion = "entrada_invalida"
)

// ResultadoTraduccion es el resultado de una única dirección. Según Estado:
// éxito lleva todos los campos, fallo de página lleva los campos de la
// dirección virtual más el motivo, y entrada inválida solo lleva el texto
// recibido y el motivo.
type ResultadoTraduccion struct {
	Estado  EstadoTraduccion `json:"estado"`
	Entrada string           `json:"entrada"`

	VirtualHex string `json:"virtual_hex,omitempty"`
	VirtualBin string `json:"virtual_bin,omitempty"`
	PaginaBin  string `json:"pagina_bin,omitempty"`
	OffsetBin  string `json:"offset_bin,omitempty"`
	Pagina     *int   `json:"pagina,omitempty"`

	Marco     *int   `json:"marco,omitempty"`
	MarcoBin  string `json:"marco_bin,omitempty"`
	FisicaBin string `json:"fisica_bin,omitempty"`
	FisicaHex string `json:"fisica_hex,omitempty"`

	Motivo string `json:"motivo,omitempty"`
}

// Exito informa si la dirección se tradujo a una dirección física.
func (r ResultadoTraduccion) Exito() bool {
	return r.Estado == EstadoExito
}

// TraducirDireccion traduce una dirección virtual en hexadecimal (prefijo 0x
// opcional) contra una tabla de páginas densa. Nunca devuelve error: cada
// modo de falla queda clasificado en el resultado y no afecta al resto del
// lote.
func TraducirDireccion(texto string, esquema *EsquemaBits, tabla TablaDensa) ResultadoTraduccion {
	crudo := strings.TrimSpace(texto)
	sinPrefijo := strings.TrimPrefix(strings.TrimPrefix(crudo, "0x"), "0X")

	valor, err := strconv.ParseUint(sinPrefijo, 16, 64)
	if err != nil {
		return ResultadoTraduccion{
			Estado:  EstadoEntradaInvalida,
			Entrada: crudo,
			Motivo:  fmt.Sprintf("dirección virtual inválida: %q no es hexadecimal", crudo),
		}
	}

	if esquema.BitsDireccionVirtual < 64 && valor >= uint64(1)<<esquema.BitsDireccionVirtual {
		return ResultadoTraduccion{
			Estado:  EstadoEntradaInvalida,
			Entrada: crudo,
			Motivo: fmt.Sprintf("la dirección 0x%s excede el espacio de direcciones virtuales (%d bits)",
				strings.ToUpper(sinPrefijo), esquema.BitsDireccionVirtual),
		}
	}

	virtualBin := binarioFijo(valor, esquema.BitsDireccionVirtual)
	paginaBin := virtualBin[:esquema.BitsNumeroPagina]
	offsetBin := virtualBin[esquema.BitsNumeroPagina:]
	pagina := int(binarioAEntero(paginaBin))

	parcial := ResultadoTraduccion{
		Entrada:    crudo,
		VirtualHex: "0x" + strings.ToUpper(sinPrefijo),
		VirtualBin: virtualBin,
		PaginaBin:  paginaBin,
		OffsetBin:  offsetBin,
		Pagina:     &pagina,
	}

	if pagina >= len(tabla) {
		parcial.Estado = EstadoFalloPagina
		parcial.Motivo = fmt.Sprintf("la página %d excede la cantidad de páginas virtuales (%d)", pagina, len(tabla))
		return parcial
	}

	entrada := tabla[pagina]
	if !entrada.Asignada {
		parcial.Estado = EstadoFalloPagina
		parcial.Motivo = fmt.Sprintf("fallo de página: la página %d no tiene marco asignado", pagina)
		return parcial
	}

	if uint64(entrada.Marco) >= esquema.Marcos {
		parcial.Estado = EstadoFalloPagina
		parcial.Motivo = fmt.Sprintf("fallo de página: el marco %d excede la cantidad de marcos físicos (%d)",
			entrada.Marco, esquema.Marcos)
		return parcial
	}

	marcoBin := binarioFijo(uint64(entrada.Marco), esquema.BitsMarco)
	fisicaBin := marcoBin + offsetBin
	fisica := binarioAEntero(fisicaBin)

	marco := entrada.Marco
	parcial.Estado = EstadoExito
	parcial.Marco = &marco
	parcial.MarcoBin = marcoBin
	parcial.FisicaBin = fisicaBin
	parcial.FisicaHex = "0x" + strings.ToUpper(strconv.FormatUint(fisica, 16))
	return parcial
}

// binarioFijo representa un valor en binario con exactamente `ancho` dígitos,
// completando con ceros a la izquierda. Con ancho 0 devuelve la cadena vacía.
func binarioFijo(valor uint64, ancho int) string {
	if ancho == 0 {
		return ""
	}
	s := strconv.FormatUint(valor, 2)
	if len(s) < ancho {
		s = strings.Repeat("0", ancho-len(s)) + s
	}
	return s
}

// binarioAEntero es la inversa de binarioFijo; la cadena vacía vale 0.
func binarioAEntero(bin string) uint64 {
	if bin == "" {
		return 0
	}
	valor, _ := strconv.ParseUint(bin, 2, 64)
	return valor
}
