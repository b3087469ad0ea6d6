package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

var (
	// Flags globales
	jsonOut bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "traductor",
	Short: "Traduce direcciones virtuales a físicas sobre una tabla de páginas",
	Long: `traductor toma un archivo de texto que describe la memoria física, la
memoria virtual, el tamaño de página y la tabla de páginas, y traduce la lista
de direcciones virtuales del archivo reportando las fallas de página.

Puede correr el lote localmente (traducir) o enviarlo a un servidor de
traducción en ejecución (enviar).`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		nivel := "warn"
		if verbose {
			nivel = "debug"
		}
		utils.InicializarLogger(nivel, "Traductor")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Imprimir el reporte como JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mostrar el log de la traducción")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// imprimirJSON escribe un valor como JSON indentado en la salida estándar
func imprimirJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
