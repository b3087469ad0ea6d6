package utils

// Semaforo implementa un semáforo contador con canales. Se usa para acotar
// la cantidad de traducciones concurrentes dentro de un lote.
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo con la capacidad indicada
func NewSemaforo(capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	return &Semaforo{
		c: make(chan struct{}, capacidad),
	}
}

// Wait (P) decrementa el semáforo, bloquea si es 0
func (s *Semaforo) Wait() {
	s.c <- struct{}{}
}

// Signal (V) incrementa el semáforo
func (s *Semaforo) Signal() {
	select {
	case <-s.c:
	default:
		// Capacidad completa, no hace nada para prevenir incremento excesivo
	}
}
