package utils

import (
	"time"
)

// AplicarRetardo aplica un retardo simulado y lo registra. Permite que el
// servidor imite la latencia de un acceso real a memoria con fines didácticos.
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	InfoLog.Info("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}
