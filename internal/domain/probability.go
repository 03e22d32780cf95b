package domain

// Clasificación de confianza del upstream para disponibilidad same-day
// (campo messageType de probability.thisDay).
const (
	ProbabilityHighInStock = "HIGH_IN_STOCK"
	ProbabilityLowInStock  = "LOW_IN_STOCK"
	ProbabilityOutOfStock  = "OUT_OF_STOCK"
)

// probabilityLabels etiquetas legibles por tipo de mensaje del upstream.
var probabilityLabels = map[string]string{
	ProbabilityHighInStock: "High in stock",
	ProbabilityLowInStock:  "Low in stock",
	ProbabilityOutOfStock:  "Out of stock",
}

// ProbabilityLabel devuelve la etiqueta legible de un messageType.
// Códigos desconocidos o vacíos caen a "Unknown".
func ProbabilityLabel(messageType string) string {
	if label, ok := probabilityLabels[messageType]; ok {
		return label
	}
	return "Unknown"
}
