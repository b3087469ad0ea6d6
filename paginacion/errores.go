package paginacion

import (
	"errors"
	"fmt"
)

// Errores de configuración: abortan el lote completo antes de traducir nada.
var (
	ErrFormatoTamanio         = errors.New("formato de tamaño inválido")
	ErrUnidadDesconocida      = errors.New("unidad desconocida")
	ErrPaginaNoPotenciaDeDos  = errors.New("el tamaño de página debe ser potencia de 2")
	ErrMemoriaNoPotenciaDeDos = errors.New("el tamaño de memoria debe ser potencia de 2")
	ErrMemoriaVirtualInvalida = errors.New("la memoria virtual debe ser mayor que cero")
	ErrMemoriaFisicaInvalida  = errors.New("la memoria física debe ser mayor que cero")
	ErrPaginaMayorQueVirtual  = errors.New("el tamaño de página excede la memoria virtual")
)

// ErrorParametroFaltante indica que el archivo no define uno de los tres
// parámetros obligatorios.
type ErrorParametroFaltante struct {
	Parametro string
}

func (e *ErrorParametroFaltante) Error() string {
	return fmt.Sprintf("falta parámetro en el archivo: %s", e.Parametro)
}

// ErrorEntradaTabla indica una línea de la tabla de páginas que no se pudo
// interpretar como `indice, marco`.
type ErrorEntradaTabla struct {
	Linea  string
	Motivo string
}

func (e *ErrorEntradaTabla) Error() string {
	return fmt.Sprintf("entrada de tabla inválida %q: %s", e.Linea, e.Motivo)
}
