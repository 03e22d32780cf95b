package storedata_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finnbar-api/internal/infrastructure/storedata"
)

// datasetMinimo dataset reducido para ejercitar el directorio sin depender
// del contenido exacto del dataset empaquetado.
const datasetMinimo = `{
  "stores": [
    {"buCode": "174", "name": "Berlin-Tempelhof", "countryCode": "de", "country": "Germany", "coordinates": [13.3908, 52.4567]},
    {"buCode": "391", "name": "Haarlem", "countryCode": "nl", "country": "Netherlands"},
    {"buCode": "294", "name": "Berlin-Lichtenberg", "countryCode": "de", "country": "Germany", "coordinates": [13.5319, 52.5392]}
  ],
  "countries": {"nl": "Netherlands", "de": "Germany"}
}`

func TestNewFromJSON_CodigosOrdenados(t *testing.T) {
	dir, err := storedata.NewFromJSON([]byte(datasetMinimo))
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "nl"}, dir.CountryCodes(),
		"los códigos deben salir ordenados lexicográficamente aunque el dataset no lo esté")
}

func TestCountryName_FallbackMayusculas(t *testing.T) {
	dir, err := storedata.NewFromJSON([]byte(datasetMinimo))
	require.NoError(t, err)

	assert.Equal(t, "Germany", dir.CountryName("de"))
	assert.Equal(t, "XX", dir.CountryName("xx"), "un código desconocido cae al propio código en mayúsculas, nunca falla")
}

func TestStoresForCountry_NormalizaYFiltra(t *testing.T) {
	dir, err := storedata.NewFromJSON([]byte(datasetMinimo))
	require.NoError(t, err)

	stores := dir.StoresForCountry("  DE ")
	require.Len(t, stores, 2, "el código se normaliza a minúsculas y sin espacios")
	// Orden de inserción del dataset, no ordenado.
	assert.Equal(t, "174", stores[0].BuCode)
	assert.Equal(t, "294", stores[1].BuCode)

	assert.Empty(t, dir.StoresForCountry("xx"), "código desconocido produce lista vacía")
	assert.Empty(t, dir.StoresForCountry(""), "código vacío produce lista vacía")
}

func TestAllStores_OrdenDelDataset(t *testing.T) {
	dir, err := storedata.NewFromJSON([]byte(datasetMinimo))
	require.NoError(t, err)

	all := dir.AllStores()
	require.Len(t, all, 3)
	assert.Equal(t, "174", all[0].BuCode)
	assert.Equal(t, "391", all[1].BuCode)
	assert.Equal(t, "294", all[2].BuCode)
	assert.Empty(t, all[1].Coordinates, "coordenadas ausentes quedan vacías, no fallan")
}

func TestNewFromJSON_DatasetInvalido(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"JSON roto", `{`},
		{"sin tiendas", `{"stores": [], "countries": {"de": "Germany"}}`},
		{"sin países", `{"stores": [{"buCode": "174", "name": "x", "countryCode": "de"}], "countries": {}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := storedata.NewFromJSON([]byte(tc.raw))
			require.Error(t, err, "el proceso no debe arrancar con un dataset inservible")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dataset empaquetado
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_DatasetEmpaquetadoConsistente(t *testing.T) {
	dir, err := storedata.Load()
	require.NoError(t, err, "el dataset que viaja en el binario debe cargar siempre")

	codes := dir.CountryCodes()
	require.NotEmpty(t, codes)
	assert.True(t, sort.StringsAreSorted(codes), "los códigos del dataset real deben salir ordenados")

	// Todo código de la tabla de países debe resolver a un nombre propio
	// (distinto del fallback en mayúsculas) y viceversa.
	for _, code := range codes {
		assert.NotEqual(t, "", dir.CountryName(code))
		assert.NotEqual(t, strings.ToUpper(code), dir.CountryName(code),
			"un código soportado nunca usa el fallback en mayúsculas")
	}

	// Toda tienda referencia un país presente en la tabla.
	for _, store := range dir.AllStores() {
		assert.Contains(t, codes, store.CountryCode,
			"el countryCode de %q debe existir en la tabla de países", store.Name)
		assert.NotEmpty(t, store.BuCode)
		assert.NotEmpty(t, store.Name)
	}
}
