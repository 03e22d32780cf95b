package dto

// AvailabilityRecord entrada normalizada del feed de disponibilidad: una por
// combinación (tienda, producto), únicamente unidades de tipo tienda ("STO").
// Los campos opcionales ausentes en el payload llegan ya con sus valores por
// defecto (0, "", ""); el adaptador es tolerante por registro.
type AvailabilityRecord struct {
	BuCode         string
	ProductID      string
	CashCarry      bool
	Quantity       int
	Probability    string
	UpdateDateTime string
}

// StockInfoResponse una observación de disponibilidad para un producto en una tienda.
type StockInfoResponse struct {
	ProductID   string `json:"product_id"`
	BuCode      string `json:"bu_code"`
	StoreName   string `json:"store_name"`
	CountryCode string `json:"country_code"`
	Country     string `json:"country"`
	Stock       int    `json:"stock"`
	Probability string `json:"probability"`
	UpdatedAt   string `json:"updated_at"`
}

// AvailabilityResponse respuesta del endpoint de disponibilidad.
type AvailabilityResponse struct {
	Country string              `json:"country"`
	Count   int                 `json:"count"`
	Results []StockInfoResponse `json:"results"`
}

// StoreResponse tienda del directorio.
type StoreResponse struct {
	BuCode      string    `json:"bu_code"`
	Name        string    `json:"name"`
	CountryCode string    `json:"country_code"`
	Country     string    `json:"country,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

// CountryResponse país soportado por el directorio.
type CountryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
