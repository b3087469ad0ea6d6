package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/paginacion"
	"github.com/sisoputnfrba/tp-2025-2c-LosTraductores/utils"
)

// handlerTraducir recibe un archivo de configuración (multipart, campo
// "archivo") o el texto crudo en el cuerpo, corre el lote completo y devuelve
// el reporte en JSON. Los errores de configuración responden 400 con el motivo.
func handlerTraducir(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ResponderError(w, http.StatusMethodNotAllowed, "método no permitido")
		return
	}

	if config.TamanioMaxArchivo > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, config.TamanioMaxArchivo)
	}

	contenido, err := leerContenido(r)
	if err != nil {
		utils.ErrorLog.Error("Error leyendo el archivo recibido", "error", err)
		utils.ResponderError(w, http.StatusBadRequest, err.Error())
		return
	}

	configMemoria, tabla, direcciones, err := paginacion.ParsearArchivo(contenido)
	if err != nil {
		utils.ErrorLog.Error("Archivo de configuración inválido", "error", err)
		utils.ResponderError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.AplicarRetardo("traduccion", config.RetardoTraduccion)

	reporte, err := paginacion.EjecutarSesion(configMemoria, tabla, direcciones)
	if err != nil {
		utils.ResponderError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.InfoLog.Info("Solicitud de traducción atendida",
		"direcciones", reporte.Metricas.Total,
		"exitos", reporte.Metricas.Exitos)

	utils.ResponderJSON(w, http.StatusOK, reporte)
}

// leerContenido extrae el texto del archivo subido. Acepta multipart con el
// campo "archivo" (solo .txt) o el texto crudo en el cuerpo de la solicitud.
func leerContenido(r *http.Request) (string, error) {
	tipo := r.Header.Get("Content-Type")
	if !strings.HasPrefix(tipo, "multipart/form-data") {
		cuerpo, err := io.ReadAll(r.Body)
		if err != nil {
			return "", fmt.Errorf("error leyendo el cuerpo de la solicitud: %v", err)
		}
		if len(cuerpo) == 0 {
			return "", fmt.Errorf("la solicitud no trae contenido para traducir")
		}
		return string(cuerpo), nil
	}

	archivo, encabezado, err := r.FormFile("archivo")
	if err != nil {
		return "", fmt.Errorf("falta el campo multipart \"archivo\": %v", err)
	}
	defer archivo.Close()

	if !strings.HasSuffix(strings.ToLower(encabezado.Filename), ".txt") {
		return "", fmt.Errorf("solo se aceptan archivos .txt, llegó %q", encabezado.Filename)
	}

	cuerpo, err := io.ReadAll(archivo)
	if err != nil {
		return "", fmt.Errorf("error leyendo el archivo %q: %v", encabezado.Filename, err)
	}
	return string(cuerpo), nil
}
