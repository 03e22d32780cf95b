package entity

// Store representa una tienda física del directorio. Se construye una vez
// durante la carga del dataset estático y es inmutable después.
type Store struct {
	BuCode      string
	Name        string
	CountryCode string
	Country     string
	Coordinates []float64 // [longitud, latitud]; vacío si no está disponible
}

// StockInfo es una observación (producto, tienda) de disponibilidad.
// Se construye fresca en cada consulta; no se cachea.
// Invariante: Stock es 0 siempre que Probability sea OUT_OF_STOCK.
type StockInfo struct {
	ProductID   string
	BuCode      string
	StoreName   string
	CountryCode string
	Country     string
	Stock       int
	Probability string
	UpdatedAt   string
}
