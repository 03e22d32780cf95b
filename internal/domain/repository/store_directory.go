package repository

import "github.com/jhoicas/finnbar-api/internal/domain/entity"

// StoreDirectory contrato de lectura del directorio de tiendas y países.
// El directorio vive en memoria durante todo el proceso: sin efectos
// secundarios y sin mutación después de la carga inicial.
type StoreDirectory interface {
	// CountryCodes devuelve los códigos de país soportados (dos letras,
	// minúsculas), ordenados lexicográficamente.
	CountryCodes() []string

	// CountryName devuelve el nombre del país para un código. Si el código no
	// está en la tabla devuelve el código en mayúsculas como fallback; nunca falla.
	CountryName(code string) string

	// StoresForCountry devuelve las tiendas cuyo CountryCode coincide con el
	// código (normalizado a minúsculas y sin espacios alrededor), en el orden
	// de inserción del dataset. Código desconocido produce una lista vacía.
	StoresForCountry(code string) []entity.Store

	// AllStores devuelve el directorio completo en el orden del dataset.
	AllStores() []entity.Store
}
