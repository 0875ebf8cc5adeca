package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/logging"
)

// DefaultBaseURL is the CUIF resource on the Colombian open-data portal.
const DefaultBaseURL = "https://www.datos.gov.co/resource/mxk5-ce6w.json"

// PageSize is the fixed $limit used for paginated downloads.
const PageSize = 50000

// RemoteQueryError is any non-success transport response from the dataset
// endpoint, carrying the status and body for diagnosis.
type RemoteQueryError struct {
	StatusCode int
	Body       string
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("remote query failed: HTTP %d: %s", e.StatusCode, e.Body)
}

// Client queries the CUIF open-data resource. It is safe for concurrent use;
// all state is per-call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client. A nil httpClient falls back to a client with a
// generous timeout (full pages of 50k rows are several megabytes); a nil
// logger falls back to slog.Default.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// MaxCutoffDate returns the maximum fecha_corte present in the dataset. Any
// failure at all — transport error, non-2xx status, empty or malformed
// response — degrades to absence; callers treat that as "unknown", never as
// an error.
func (c *Client) MaxCutoffDate(ctx context.Context) (time.Time, bool) {
	params := url.Values{}
	params.Set("$select", "max(fecha_corte)")

	body, err := c.get(ctx, params)
	if err != nil {
		logging.LogError(c.logger, "max cutoff date query failed", err,
			slog.String("component", "socrata_client"))
		return time.Time{}, false
	}

	var rows []struct {
		MaxFechaCorte string `json:"max_fecha_corte"`
	}
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		return time.Time{}, false
	}
	return parseCutoffDate(rows[0].MaxFechaCorte)
}

// Count returns the number of records matching the criteria, with currency
// fixed to the "Total" aggregate.
func (c *Client) Count(ctx context.Context, criteria cuif.FilterCriteria) (int, error) {
	params := url.Values{}
	params.Set("$select", "count(*)")
	params.Set("$where", whereClause(criteria))

	body, err := c.get(ctx, params)
	if err != nil {
		return 0, err
	}

	var rows []struct {
		Count string `json:"count"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return 0, fmt.Errorf("decoding count response: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(rows[0].Count)
	if err != nil {
		return 0, fmt.Errorf("parsing count %q: %w", rows[0].Count, err)
	}
	return n, nil
}

// FetchAll downloads every record matching the criteria using offset
// pagination with a fixed page size, stopping at the first empty page. The
// fetch is atomic from the caller's perspective: any page failure discards
// everything already retrieved and returns the error. No retries.
func (c *Client) FetchAll(ctx context.Context, criteria cuif.FilterCriteria) ([]cuif.RawRecord, error) {
	where := whereClause(criteria)

	var all []cuif.RawRecord
	for offset := 0; ; offset += PageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		params := url.Values{}
		params.Set("$limit", strconv.Itoa(PageSize))
		params.Set("$offset", strconv.Itoa(offset))
		params.Set("$where", where)

		body, err := c.get(ctx, params)
		if err != nil {
			return nil, err
		}

		var page []cuif.RawRecord
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decoding page at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)

		logging.LogOperation(c.logger, "fetched page",
			slog.String("component", "socrata_client"),
			slog.Int("offset", offset),
			slog.Int("rows", len(page)))
	}
	return all, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "http_response_body")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteQueryError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// whereClause builds the SoQL filter shared by Count and FetchAll. Boundaries
// are inclusive at second granularity and currency is pinned to the Total
// aggregate.
func whereClause(criteria cuif.FilterCriteria) string {
	return fmt.Sprintf(
		"fecha_corte between '%sT00:00:00' and '%sT23:59:59' AND nombre_moneda = 'Total' AND nombre_tipo_entidad = '%s'",
		criteria.From.Format("2006-01-02"),
		criteria.To.Format("2006-01-02"),
		criteria.EntityType,
	)
}

// parseCutoffDate handles the floating-timestamp forms Socrata emits.
func parseCutoffDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05.000", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
