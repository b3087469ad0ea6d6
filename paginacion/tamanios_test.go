package paginacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsearTamanio(t *testing.T) {
	casos := []struct {
		texto    string
		esperado TamanioBytes
	}{
		{"64", 64},
		{"512B", 512},
		{"512 Byte", 512},
		{"8 KByte", 8 * 1024},
		{"8KBYTE", 8 * 1024},
		{"16 kbyte", 16 * 1024},
		{"4 MByte", 4 * 1024 * 1024},
		{"1 GByte", 1024 * 1024 * 1024},
		{"1 G Byte", 1024 * 1024 * 1024}, // los espacios internos se descartan
		{"  64 KByte  ", 64 * 1024},
		{"0", 0},
	}

	for _, caso := range casos {
		t.Run(caso.texto, func(t *testing.T) {
			valor, err := ParsearTamanio(caso.texto)
			require.NoError(t, err)
			assert.Equal(t, caso.esperado, valor)
		})
	}
}

func TestParsearTamanioInvalido(t *testing.T) {
	casos := []struct {
		nombre   string
		texto    string
		esperado error
	}{
		{"vacio", "", ErrFormatoTamanio},
		{"sin magnitud", "KByte", ErrFormatoTamanio},
		{"magnitud negativa", "-8 KByte", ErrFormatoTamanio},
		{"magnitud fuera de rango", "99999999999999999999", ErrFormatoTamanio},
		{"basura", "ocho KByte", ErrFormatoTamanio},
		{"unidad desconocida", "8 TByte", ErrUnidadDesconocida},
		{"unidad inventada", "8 KBits", ErrUnidadDesconocida},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			_, err := ParsearTamanio(caso.texto)
			require.Error(t, err)
			assert.ErrorIs(t, err, caso.esperado)
		})
	}
}

func TestParsearTamanioMagnitudGrande(t *testing.T) {
	// Sin límite superior mientras entre en 64 bits
	valor, err := ParsearTamanio("8 GByte")
	require.NoError(t, err)
	assert.Equal(t, TamanioBytes(8*1024*1024*1024), valor)
}
