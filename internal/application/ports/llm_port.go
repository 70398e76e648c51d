package ports

import "context"

// InsightGenerator define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type InsightGenerator interface {
	// GenerateInsights envía la instrucción más los datos serializados y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateInsights(ctx context.Context, instruction string, data []byte) (string, error)
}
