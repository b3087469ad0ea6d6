package paginacion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Modos de parseo según la última sección reconocida en el archivo.
const (
	modoNinguno = iota
	modoTabla
	modoDirecciones
)

var patronHexadecimal = regexp.MustCompile(`^(0[xX])?[0-9A-Fa-f]+$`)

// ParsearArchivo interpreta el archivo de configuración completo: los tres
// parámetros de tamaño, la tabla de páginas dispersa y la lista de direcciones
// virtuales a traducir.
//
// El formato es por líneas: se ignoran líneas vacías y comentarios (#), las
// claves no distinguen mayúsculas ni tildes ("tamaño_pagina" equivale a
// "tamanio_pagina"), y los marcadores "tabla_paginas:" y
// "direcciones_virtuales:" abren las secciones de tabla y de direcciones.
// Índices de tabla duplicados se resuelven con última-escritura-gana.
func ParsearArchivo(contenido string) (*ConfigMemoria, TablaDispersa, []string, error) {
	var (
		parametros  = map[string]string{}
		tabla       = TablaDispersa{}
		direcciones []string
		modo        = modoNinguno
	)

	for _, cruda := range strings.Split(contenido, "\n") {
		linea := strings.TrimSpace(cruda)
		if linea == "" || strings.HasPrefix(linea, "#") {
			continue
		}

		clave := normalizarClave(linea)
		switch {
		case strings.HasPrefix(clave, "memoria_fisica"):
			parametros["memoria_fisica"] = valorDeLinea(linea)
		case strings.HasPrefix(clave, "memoria_virtual"):
			parametros["memoria_virtual"] = valorDeLinea(linea)
		case strings.HasPrefix(clave, "tamanio_pagina"), strings.HasPrefix(clave, "tamano_pagina"):
			parametros["tamanio_pagina"] = valorDeLinea(linea)
		case strings.HasPrefix(clave, "tabla_paginas:"), strings.HasPrefix(clave, "tabla_de_paginas:"):
			modo = modoTabla
		case strings.HasPrefix(clave, "direcciones_virtuales:"), strings.HasPrefix(clave, "direcciones:"):
			modo = modoDirecciones
		default:
			switch modo {
			case modoTabla:
				indice, entrada, err := parsearEntradaTabla(linea)
				if err != nil {
					return nil, nil, nil, err
				}
				tabla[indice] = entrada
			case modoDirecciones:
				direcciones = append(direcciones, linea)
			default:
				// Sin encabezado: una línea `indice, marco` va a la tabla y un
				// token hexadecimal suelto a la lista de direcciones. Cualquier
				// otra cosa se ignora.
				if strings.Contains(linea, ",") {
					if indice, entrada, err := parsearEntradaTabla(linea); err == nil {
						tabla[indice] = entrada
					}
				} else if patronHexadecimal.MatchString(linea) {
					direcciones = append(direcciones, linea)
				}
			}
		}
	}

	config := &ConfigMemoria{}
	for _, p := range []struct {
		nombre  string
		destino *TamanioBytes
	}{
		{"memoria_fisica", &config.MemoriaFisica},
		{"memoria_virtual", &config.MemoriaVirtual},
		{"tamanio_pagina", &config.TamanioPagina},
	} {
		crudo, existe := parametros[p.nombre]
		if !existe {
			return nil, nil, nil, &ErrorParametroFaltante{Parametro: p.nombre}
		}
		valor, err := ParsearTamanio(crudo)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parámetro %s: %w", p.nombre, err)
		}
		*p.destino = valor
	}

	return config, tabla, direcciones, nil
}

// parsearEntradaTabla interpreta `indice, marco`, donde marco puede ser un
// entero, estar vacío, o ser la letra X (página sin mapear).
func parsearEntradaTabla(linea string) (int, EntradaTabla, error) {
	partes := strings.SplitN(linea, ",", 3)
	if len(partes) < 2 {
		return 0, EntradaTabla{}, &ErrorEntradaTabla{Linea: linea, Motivo: "se esperaba `indice, marco`"}
	}

	indice, err := strconv.Atoi(strings.TrimSpace(partes[0]))
	if err != nil || indice < 0 {
		return 0, EntradaTabla{}, &ErrorEntradaTabla{Linea: linea, Motivo: "el índice debe ser un entero no negativo"}
	}

	marcoCrudo := strings.ToUpper(strings.TrimSpace(partes[1]))
	if marcoCrudo == "" || marcoCrudo == "X" {
		return indice, EntradaTabla{}, nil
	}

	marco, err := strconv.Atoi(marcoCrudo)
	if err != nil || marco < 0 {
		return 0, EntradaTabla{}, &ErrorEntradaTabla{Linea: linea, Motivo: "el marco debe ser un entero no negativo, X o vacío"}
	}

	return indice, EntradaTabla{Marco: marco, Asignada: true}, nil
}

// valorDeLinea devuelve lo que sigue al primer `:` de una línea `clave: valor`.
func valorDeLinea(linea string) string {
	_, valor, _ := strings.Cut(linea, ":")
	return strings.TrimSpace(valor)
}

// normalizarClave pasa a minúsculas y quita los diacríticos, de modo que
// "Tamaño_Pagina" y "tamano_pagina" comparen iguales.
func normalizarClave(s string) string {
	quitarDiacriticos := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpio, _, err := transform.String(quitarDiacriticos, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return limpio
}
