package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPServer representa el servidor HTTP de un módulo
type HTTPServer struct {
	IP     string
	Puerto int
	Nombre string
	server *http.Server
	mux    *http.ServeMux
}

// NewHTTPServer crea un nuevo servidor HTTP con el healthcheck ya registrado
func NewHTTPServer(ip string, puerto int, nombre string) *HTTPServer {
	s := &HTTPServer{
		IP:     ip,
		Puerto: puerto,
		Nombre: nombre,
		mux:    http.NewServeMux(),
	}

	// Endpoint de healthcheck
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "module": s.Nombre})
	})

	return s
}

// RegistrarHandler registra un handler HTTP en la ruta indicada
func (s *HTTPServer) RegistrarHandler(patron string, handler http.HandlerFunc) {
	s.mux.HandleFunc(patron, handler)
}

// Start inicia el servidor HTTP y bloquea hasta que termine
func (s *HTTPServer) Start() error {
	address := fmt.Sprintf("%s:%d", s.IP, s.Puerto)
	s.server = &http.Server{
		Addr:    address,
		Handler: s.mux,
	}

	InfoLog.Info("Servidor HTTP escuchando", "módulo", s.Nombre, "dirección", address)
	return s.server.ListenAndServe()
}

// ResponderJSON serializa la respuesta de un handler con el código indicado
func ResponderJSON(w http.ResponseWriter, codigo int, datos interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(codigo)
	if err := json.NewEncoder(w).Encode(datos); err != nil {
		ErrorLog.Error("Error serializando respuesta", "error", err)
	}
}

// ResponderError envía un error en el formato {"error": motivo}
func ResponderError(w http.ResponseWriter, codigo int, motivo string) {
	ResponderJSON(w, codigo, map[string]string{"error": motivo})
}
