package paginacion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Multiplicadores por unidad, base 1024.
var unidades = map[string]uint64{
	"":      1,
	"B":     1,
	"BYTE":  1,
	"KBYTE": 1024,
	"MBYTE": 1024 * 1024,
	"GBYTE": 1024 * 1024 * 1024,
}

// ParsearTamanio convierte textos como "8 KByte", "1GByte" o "64" a bytes.
// La unidad es opcional (sin unidad se asume bytes), no distingue mayúsculas
// y tolera espacios internos.
func ParsearTamanio(texto string) (TamanioBytes, error) {
	limpio := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(texto))

	if limpio == "" {
		return 0, fmt.Errorf("%w: texto vacío", ErrFormatoTamanio)
	}

	// Separar la magnitud decimal del sufijo de unidad
	fin := 0
	for fin < len(limpio) && limpio[fin] >= '0' && limpio[fin] <= '9' {
		fin++
	}
	if fin == 0 {
		return 0, fmt.Errorf("%w: %q", ErrFormatoTamanio, texto)
	}

	magnitud, err := strconv.ParseUint(limpio[:fin], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: magnitud fuera de rango en %q", ErrFormatoTamanio, texto)
	}

	unidad := limpio[fin:]
	multiplicador, existe := unidades[unidad]
	if !existe {
		return 0, fmt.Errorf("%w: %q", ErrUnidadDesconocida, unidad)
	}

	if magnitud > math.MaxUint64/multiplicador {
		return 0, fmt.Errorf("%w: %q no es representable en 64 bits", ErrFormatoTamanio, texto)
	}

	return magnitud * multiplicador, nil
}
