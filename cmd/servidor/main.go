package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/servidor-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("info", "Traductor")

	utils.InfoLog.Info("Iniciando servidor de traducción")

	servidor, err := inicializarModulo(os.Args[1])
	if err != nil {
		utils.ErrorLog.Error("Error inicializando el servidor", "error", err)
		os.Exit(1)
	}

	if err := servidor.Start(); err != nil {
		utils.ErrorLog.Error("Error al iniciar servidor HTTP", "error", err)
		os.Exit(1)
	}
}

func inicializarModulo(rutaConfig string) (*utils.HTTPServer, error) {
	// Cargar configuración
	cargada, err := utils.CargarConfiguracion[ServidorConfig](rutaConfig)
	if err != nil {
		return nil, err
	}
	config = cargada

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "Traductor")
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	// Crear servidor y registrar handlers
	servidor := utils.NewHTTPServer(config.IP, config.Puerto, "Traductor")
	registrarHandlers(servidor)

	utils.InfoLog.Info("Servidor inicializado", "ip", config.IP, "puerto", config.Puerto)
	return servidor, nil
}

func registrarHandlers(servidor *utils.HTTPServer) {
	servidor.RegistrarHandler("/traducir", handlerTraducir)

	utils.InfoLog.Info("Handlers registrados correctamente")
}
