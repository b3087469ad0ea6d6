package paginacion

// TamanioBytes es una cantidad de bytes ya convertida desde magnitud+unidad.
type TamanioBytes = uint64

// ConfigMemoria reúne los tres parámetros que definen el espacio de direcciones.
// Se construye una vez por lote a partir del archivo de configuración y no se
// modifica durante la traducción.
type ConfigMemoria struct {
	MemoriaFisica  TamanioBytes `json:"memoria_fisica_bytes"`
	MemoriaVirtual TamanioBytes `json:"memoria_virtual_bytes"`
	TamanioPagina  TamanioBytes `json:"tamanio_pagina_bytes"`
}

// EntradaTabla representa una entrada de la tabla de páginas.
type EntradaTabla struct {
	Marco    int  // Número de marco asignado
	Asignada bool // false = la página no tiene marco (entrada inválida o ausente)
}

// TablaDispersa es la tabla tal como viene en el archivo: solo los índices listados.
// Índices duplicados se resuelven con última-escritura-gana.
type TablaDispersa map[int]EntradaTabla

// TablaDensa cubre todos los índices de página en [0, PaginasVirtuales).
// Las posiciones sin mapeo quedan con Asignada=false.
type TablaDensa []EntradaTabla

// EsquemaBits contiene los anchos de campo derivados de los tres tamaños.
// Es de solo lectura una vez calculado.
type EsquemaBits struct {
	BitsOffset           int    `json:"offset_bits"`
	BitsDireccionVirtual int    `json:"virtual_address_bits"`
	BitsNumeroPagina     int    `json:"page_number_bits"`
	BitsMarco            int    `json:"frame_bits"`
	BitsDireccionFisica  int    `json:"physical_address_bits"`
	PaginasVirtuales     uint64 `json:"num_pages_virtual"`
	Marcos               uint64 `json:"num_frames"`
}
