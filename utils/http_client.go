package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// HTTPClient representa un cliente HTTP para hablar con un servidor de traducción
type HTTPClient struct {
	BaseURL string
	Nombre  string
	client  *http.Client
}

// NewHTTPClient crea un nuevo cliente HTTP
func NewHTTPClient(baseURL string, nombre string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Nombre:  nombre,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// EnviarArchivo sube un archivo de configuración como multipart al endpoint de
// traducción y decodifica la respuesta JSON en destino.
func (c *HTTPClient) EnviarArchivo(ruta string, destino interface{}) error {
	archivo, err := os.Open(ruta)
	if err != nil {
		return fmt.Errorf("error abriendo archivo %s: %v", ruta, err)
	}
	defer archivo.Close()

	var cuerpo bytes.Buffer
	escritor := multipart.NewWriter(&cuerpo)
	parte, err := escritor.CreateFormFile("archivo", filepath.Base(ruta))
	if err != nil {
		return fmt.Errorf("error armando formulario multipart: %v", err)
	}
	if _, err := io.Copy(parte, archivo); err != nil {
		return fmt.Errorf("error copiando archivo al formulario: %v", err)
	}
	if err := escritor.Close(); err != nil {
		return fmt.Errorf("error cerrando formulario multipart: %v", err)
	}

	resp, err := c.client.Post(
		fmt.Sprintf("%s/traducir", c.BaseURL),
		escritor.FormDataContentType(),
		&cuerpo,
	)
	if err != nil {
		return fmt.Errorf("error enviando archivo por HTTP: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("respuesta HTTP no exitosa: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(destino); err != nil {
		return fmt.Errorf("error decodificando respuesta: %v", err)
	}

	return nil
}

// VerificarConexion verifica si el servidor está disponible
func (c *HTTPClient) VerificarConexion() error {
	resp, err := c.client.Get(fmt.Sprintf("%s/health", c.BaseURL))
	if err != nil {
		return fmt.Errorf("error al verificar conexión con %s: %v", c.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("estado inesperado al verificar conexión: %d", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("error al decodificar respuesta de verificación: %v", err)
	}

	InfoLog.Info("Conexión verificada", "destino", c.BaseURL, "módulo", result["module"])
	return nil
}
