package models

import (
	"encoding/json"
	"time"
)

// ForecastResponse represents the 5-day/3-hour forecast payload from the
// OpenWeatherMap API
type ForecastResponse struct {
	Cod     string           `json:"cod"`
	Message float64          `json:"message"`
	Cnt     int              `json:"cnt"`
	List    []ForecastSample `json:"list"`
	City    City             `json:"city"`
}

// ForecastSample is one 3-hour-interval data point from the forecast list
type ForecastSample struct {
	Dt      int64       `json:"dt"`
	Main    SampleMain  `json:"main"`
	Weather []Condition `json:"weather"`
	DtTxt   string      `json:"dt_txt"`
}

type SampleMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ForecastEntry is a per-day summary derived from the midday sample
type ForecastEntry struct {
	Date        string `json:"date"`
	Temp        int    `json:"temp"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CityInfo is the city name and country code as resolved by the weather API,
// which may differ in spelling from the user's input
type CityInfo struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ForecastResult bundles everything one lookup produces: the per-day entries,
// the resolved city, and the raw response bytes exactly as received
type ForecastResult struct {
	Entries []ForecastEntry `json:"entries"`
	City    CityInfo        `json:"city"`
	Raw     json.RawMessage `json:"raw"`
}

// SavedForecast represents a persisted forecast row
type SavedForecast struct {
	ID           int64           `json:"id"`
	UserName     string          `json:"user_name"`
	City         string          `json:"city"`
	ForecastData json.RawMessage `json:"forecast_data,omitempty"`
	SavedAt      time.Time       `json:"saved_at"`
}
