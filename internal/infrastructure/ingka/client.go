// Package ingka implementa el adaptador HTTP del feed de disponibilidad de
// Ingka (IKEA). Una petición saliente por consulta, timeout fijo, sin
// reintentos, sin caché, sin paginación.
package ingka

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/finnbar-api/internal/application/dto"
	"github.com/jhoicas/finnbar-api/internal/application/ports"
	"github.com/jhoicas/finnbar-api/internal/domain"
)

// Verificación en tiempo de compilación de que Client implementa el puerto.
var _ ports.AvailabilityFeed = (*Client)(nil)

const (
	// DefaultBaseURL host público del API de disponibilidad de Ingka.
	DefaultBaseURL = "https://api.ingka.ikea.com"
	// DefaultTimeout la consulta debe fallar antes que colgarse indefinidamente.
	DefaultTimeout = 10 * time.Second

	acceptHeader       = "application/json;version=1"
	classUnitTypeStore = "STO"

	// maxResponseBytes tope de lectura del cuerpo; una respuesta legítima con
	// decenas de tiendas queda muy por debajo.
	maxResponseBytes = 4 << 20
)

// Client adaptador del endpoint /cia/availabilities. Usa net/http de la
// librería estándar con timeout de cliente; no requiere SDK del proveedor.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
}

// Config parámetros del cliente Ingka.
type Config struct {
	BaseURL  string        // vacío = DefaultBaseURL
	ClientID string        // valor de la cabecera x-client-id
	Timeout  time.Duration // <= 0 = DefaultTimeout
}

// NewClient construye el adaptador aplicando defaults a los campos vacíos.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		clientID:   cfg.ClientID,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ── Estructuras del wire format ───────────────────────────────────────────────

// availabilityEnvelope sobre del payload. Availabilities queda crudo para
// poder distinguir "ausente o no-lista" (estructura malformada) de una lista
// legítimamente vacía.
type availabilityEnvelope struct {
	Availabilities json.RawMessage `json:"availabilities"`
}

type availabilityItem struct {
	ClassUnitKey struct {
		ClassUnitType string `json:"classUnitType"`
		ClassUnitCode string `json:"classUnitCode"`
	} `json:"classUnitKey"`
	ItemKey struct {
		ItemNo string `json:"itemNo"`
	} `json:"itemKey"`
	AvailableForCashCarry bool `json:"availableForCashCarry"`
	BuyingOption          struct {
		CashCarry struct {
			Availability *struct {
				// Quantity llega como number y puede ser null.
				Quantity    *float64 `json:"quantity"`
				Probability struct {
					ThisDay struct {
						MessageType string `json:"messageType"`
					} `json:"thisDay"`
				} `json:"probability"`
				UpdateDateTime string `json:"updateDateTime"`
			} `json:"availability"`
		} `json:"cashCarry"`
	} `json:"buyingOption"`
}

// FetchAvailabilities emite un GET a /cia/availabilities/ru/{countryCode} y
// proyecta el payload a registros planos. Solo el chequeo estructural del
// nivel superior es fatal; los campos opcionales ausentes por registro caen a
// sus defaults.
func (c *Client) FetchAvailabilities(ctx context.Context, countryCode string, itemNos []string) ([]dto.AvailabilityRecord, error) {
	endpoint := fmt.Sprintf("%s/cia/availabilities/ru/%s", c.baseURL, url.PathEscape(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ingka: crear HTTP request: %w", err)
	}

	q := req.URL.Query()
	q.Set("expand", "StoresList,Restocks")
	q.Set("itemNos", strings.Join(itemNos, ","))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ingka: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("ingka: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("ingka: leer respuesta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.UpstreamHTTPError{StatusCode: resp.StatusCode}
	}

	var envelope availabilityEnvelope
	if err := json.Unmarshal(rawBody, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	raw := bytes.TrimSpace(envelope.Availabilities)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: falta la secuencia availabilities", domain.ErrMalformedResponse)
	}
	var items []availabilityItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	records := make([]dto.AvailabilityRecord, 0, len(items))
	for _, item := range items {
		// El payload mezcla unidades de tienda con otros tipos en el mismo
		// arreglo; aquí solo interesan las de tipo "STO".
		if item.ClassUnitKey.ClassUnitType != classUnitTypeStore {
			continue
		}

		rec := dto.AvailabilityRecord{
			BuCode:    item.ClassUnitKey.ClassUnitCode,
			ProductID: item.ItemKey.ItemNo,
			CashCarry: item.AvailableForCashCarry,
		}
		if avail := item.BuyingOption.CashCarry.Availability; avail != nil {
			if avail.Quantity != nil {
				rec.Quantity = int(*avail.Quantity)
			}
			rec.Probability = avail.Probability.ThisDay.MessageType
			rec.UpdateDateTime = avail.UpdateDateTime
		}
		records = append(records, rec)
	}

	return records, nil
}
