package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/paginacion"
	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

func init() {
	rootCmd.AddCommand(newEnviarCmd())
}

func newEnviarCmd() *cobra.Command {
	var servidor string

	cmd := &cobra.Command{
		Use:   "enviar <archivo>",
		Short: "Envía el archivo a un servidor de traducción en ejecución",
		Long: `Sube el archivo de configuración al endpoint /traducir de un servidor de
traducción y muestra el reporte que este devuelve.

Ejemplo:
  traductor enviar memoria.txt
  traductor enviar memoria.txt --servidor http://127.0.0.1:8002`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnviar(args[0], servidor)
		},
	}
	cmd.Flags().StringVarP(&servidor, "servidor", "s", "http://127.0.0.1:8002", "URL base del servidor de traducción")
	return cmd
}

func runEnviar(ruta string, servidor string) error {
	cliente := utils.NewHTTPClient(servidor, "traductor-cli")

	if err := cliente.VerificarConexion(); err != nil {
		return fmt.Errorf("el servidor %s no responde: %w", servidor, err)
	}

	var reporte paginacion.Reporte
	if err := cliente.EnviarArchivo(ruta, &reporte); err != nil {
		return fmt.Errorf("la traducción remota falló: %w", err)
	}

	if jsonOut {
		return imprimirJSON(&reporte)
	}

	fmt.Println(renderizarReporte(&reporte))
	return nil
}
