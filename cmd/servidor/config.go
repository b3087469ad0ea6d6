package main

// ServidorConfig representa la configuración del servidor de traducción
type ServidorConfig struct {
	IP                string `json:"IP_SERVIDOR"`
	Puerto            int    `json:"PUERTO_SERVIDOR"`
	LogLevel          string `json:"LOG_LEVEL"`
	TamanioMaxArchivo int64  `json:"TAM_MAX_ARCHIVO"`    // Tamaño máximo del archivo subido, en bytes
	RetardoTraduccion int    `json:"RETARDO_TRADUCCION"` // Retardo simulado por lote, en ms
}

var config *ServidorConfig
