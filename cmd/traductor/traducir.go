package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/paginacion"
)

func init() {
	rootCmd.AddCommand(newTraducirCmd())
}

func newTraducirCmd() *cobra.Command {
	var salida string

	cmd := &cobra.Command{
		Use:   "traducir <archivo>",
		Short: "Corre un lote de traducción localmente",
		Long: `Lee el archivo de configuración, traduce todas las direcciones virtuales
que contiene y muestra el reporte.

Ejemplo:
  traductor traducir memoria.txt
  traductor traducir memoria.txt --json
  traductor traducir memoria.txt --salida reporte.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraducir(args[0], salida)
		},
	}
	cmd.Flags().StringVarP(&salida, "salida", "o", "", "Guardar el reporte como JSON en el archivo indicado")
	return cmd
}

func runTraducir(ruta string, salida string) error {
	contenido, err := os.ReadFile(ruta)
	if err != nil {
		return fmt.Errorf("no se pudo leer el archivo %s: %w", ruta, err)
	}

	config, tabla, direcciones, err := paginacion.ParsearArchivo(string(contenido))
	if err != nil {
		return fmt.Errorf("archivo de configuración inválido: %w", err)
	}

	reporte, err := paginacion.EjecutarSesion(config, tabla, direcciones)
	if err != nil {
		return fmt.Errorf("configuración de memoria inválida: %w", err)
	}

	if salida != "" {
		if err := guardarReporte(reporte, salida); err != nil {
			return err
		}
	}

	if jsonOut {
		return imprimirJSON(reporte)
	}

	fmt.Println(renderizarReporte(reporte))
	return nil
}

// guardarReporte escribe el reporte como JSON indentado en un archivo
func guardarReporte(reporte *paginacion.Reporte, ruta string) error {
	datos, err := json.MarshalIndent(reporte, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializando el reporte: %w", err)
	}
	if err := os.WriteFile(ruta, datos, 0644); err != nil {
		return fmt.Errorf("error escribiendo el reporte en %s: %w", ruta, err)
	}
	fmt.Printf("Reporte guardado en %s\n", ruta)
	return nil
}
