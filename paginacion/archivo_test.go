package paginacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const archivoEjemplo = `# Configuración de ejemplo
memoria_fisica: 16 KByte
MEMORIA_VIRTUAL: 64KByte

# la clave admite tildes
tamaño_pagina: 4 KByte

tabla_paginas:
0, 2
1, X
2,
3, 9

direcciones_virtuales:
0x0FA0
1050
`

func TestParsearArchivo(t *testing.T) {
	config, tabla, direcciones, err := ParsearArchivo(archivoEjemplo)
	require.NoError(t, err)

	assert.Equal(t, TamanioBytes(16*kbyte), config.MemoriaFisica)
	assert.Equal(t, TamanioBytes(64*kbyte), config.MemoriaVirtual)
	assert.Equal(t, TamanioBytes(4*kbyte), config.TamanioPagina)

	require.Len(t, tabla, 4)
	assert.Equal(t, EntradaTabla{Marco: 2, Asignada: true}, tabla[0])
	assert.Equal(t, EntradaTabla{}, tabla[1]) // X explícita
	assert.Equal(t, EntradaTabla{}, tabla[2]) // campo vacío
	assert.Equal(t, EntradaTabla{Marco: 9, Asignada: true}, tabla[3])

	assert.Equal(t, []string{"0x0FA0", "1050"}, direcciones)
}

func TestParsearArchivoMarcadoresAlternativos(t *testing.T) {
	contenido := `memoria_fisica: 16KByte
memoria_virtual: 64KByte
tamanio_pagina: 4KByte
tabla_de_paginas:
0, 1
direcciones:
0xABC
`
	_, tabla, direcciones, err := ParsearArchivo(contenido)
	require.NoError(t, err)
	assert.Equal(t, EntradaTabla{Marco: 1, Asignada: true}, tabla[0])
	assert.Equal(t, []string{"0xABC"}, direcciones)
}

func TestParsearArchivoSinEncabezados(t *testing.T) {
	// Sin marcadores de sección: las líneas `indice, marco` van a la tabla y
	// los tokens hexadecimales a la lista de direcciones
	contenido := `memoria_fisica: 16KByte
memoria_virtual: 64KByte
tamanio_pagina: 4KByte
0, 2
1, X
0x0FA0
esta línea no es nada reconocible y se ignora
`
	_, tabla, direcciones, err := ParsearArchivo(contenido)
	require.NoError(t, err)
	require.Len(t, tabla, 2)
	assert.Equal(t, []string{"0x0FA0"}, direcciones)
}

func TestParsearArchivoDuplicadosUltimaGana(t *testing.T) {
	contenido := `memoria_fisica: 16KByte
memoria_virtual: 64KByte
tamanio_pagina: 4KByte
tabla_paginas:
0, 1
0, 3
1, 2
1, X
`
	_, tabla, _, err := ParsearArchivo(contenido)
	require.NoError(t, err)
	assert.Equal(t, EntradaTabla{Marco: 3, Asignada: true}, tabla[0])
	assert.Equal(t, EntradaTabla{}, tabla[1]) // la X posterior pisa al marco 2
}

func TestParsearArchivoParametroFaltante(t *testing.T) {
	contenido := `memoria_fisica: 16KByte
tamanio_pagina: 4KByte
`
	_, _, _, err := ParsearArchivo(contenido)
	require.Error(t, err)

	var faltante *ErrorParametroFaltante
	require.ErrorAs(t, err, &faltante)
	assert.Equal(t, "memoria_virtual", faltante.Parametro)
}

func TestParsearArchivoEntradaTablaInvalida(t *testing.T) {
	casos := []struct {
		nombre string
		linea  string
	}{
		{"indice no numérico", "uno, 2"},
		{"marco no numérico", "1, dos"},
		{"indice negativo", "-1, 2"},
		{"marco negativo", "1, -2"},
		{"sin coma", "12"},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			contenido := "memoria_fisica: 16KByte\nmemoria_virtual: 64KByte\ntamanio_pagina: 4KByte\ntabla_paginas:\n" +
				caso.linea + "\n"
			_, _, _, err := ParsearArchivo(contenido)
			require.Error(t, err)

			var invalida *ErrorEntradaTabla
			require.ErrorAs(t, err, &invalida)
			assert.Equal(t, caso.linea, invalida.Linea)
		})
	}
}

func TestParsearArchivoUnidadInvalidaPropaga(t *testing.T) {
	contenido := `memoria_fisica: 16 TByte
memoria_virtual: 64KByte
tamanio_pagina: 4KByte
`
	_, _, _, err := ParsearArchivo(contenido)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnidadDesconocida)
	assert.Contains(t, err.Error(), "memoria_fisica")
}
