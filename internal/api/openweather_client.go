package api

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"skycast/internal/metrics"
	"skycast/internal/models"
)

// middayMarker selects the one sample per calendar day used for the summary.
// Days whose samples never land on 12:00:00 (timezone alignment) produce no
// entry; that is a success with a shorter list, not an error.
const middayMarker = "12:00:00"

// Fetcher is the surface the request handler depends on
type Fetcher interface {
	FetchForecast(city string) (*models.ForecastResult, error)
}

// OpenWeatherClient is a client for the OpenWeatherMap 5-day/3-hour forecast API
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	units   string
	client  *http.Client
}

// NewOpenWeatherClient creates a new OpenWeatherMap API client. The underlying
// http.Client carries no timeout: a hanging upstream blocks the calling request
// for its full duration.
func NewOpenWeatherClient(apiKey, baseURL, units string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		units:   units,
		client:  &http.Client{},
	}
}

// BuildURL constructs the forecast query for the given city. The city string is
// passed through as-is beyond URL encoding; no validation happens here.
func (c *OpenWeatherClient) BuildURL(city string) string {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	return c.baseURL + "?" + params.Encode()
}

// FetchForecast fetches the 5-day forecast for a city and derives one entry per
// day from the midday sample. On success the returned result also carries the
// resolved city info and the raw response bytes exactly as received.
func (c *OpenWeatherClient) FetchForecast(city string) (*models.ForecastResult, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	start := time.Now()
	resp, err := c.client.Get(c.BuildURL(city))
	if err != nil {
		metrics.RecordWeatherRequest(0, time.Since(start))
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	metrics.RecordWeatherRequest(resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &CityNotFoundError{City: city}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: string(body)}
	}

	var payload models.ForecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	return &models.ForecastResult{
		Entries: middayEntries(payload.List),
		City: models.CityInfo{
			Name:    payload.City.Name,
			Country: payload.City.Country,
		},
		Raw: json.RawMessage(body),
	}, nil
}

// middayEntries filters the 3-hour samples down to the midday one per day and
// maps each to a display entry
func middayEntries(samples []models.ForecastSample) []models.ForecastEntry {
	entries := make([]models.ForecastEntry, 0, len(samples)/8+1)
	for _, sample := range samples {
		if !strings.Contains(sample.DtTxt, middayMarker) {
			continue
		}

		entry := models.ForecastEntry{
			Date: time.Unix(sample.Dt, 0).Format("Monday, Jan 02"),
			Temp: int(math.Round(sample.Main.Temp)),
		}
		if len(sample.Weather) > 0 {
			entry.Description = titleCase(sample.Weather[0].Description)
			entry.Icon = sample.Weather[0].Icon
		}
		entries = append(entries, entry)
	}
	return entries
}

// titleCase upper-cases the first letter of each word ("clear sky" -> "Clear Sky")
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
