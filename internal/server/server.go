package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skycast/internal/api"
	"skycast/internal/database"
	"skycast/internal/metrics"
	"skycast/internal/models"
)

// ForecastSaver is the store surface the handlers depend on
type ForecastSaver interface {
	SaveForecast(userName, city string, forecastData json.RawMessage) error
}

// Server represents the HTTP server
type Server struct {
	store    ForecastSaver
	weather  api.Fetcher
	sessions *sessions.CookieStore
	mux      *http.ServeMux
}

// NewServer creates a new HTTP server. secret signs the flash-message cookie.
func NewServer(store ForecastSaver, weather api.Fetcher, secret string) *Server {
	s := &Server{
		store:    store,
		weather:  weather,
		sessions: sessions.NewCookieStore([]byte(secret)),
		mux:      http.NewServeMux(),
	}

	// Register routes
	s.mux.HandleFunc("/", s.instrument("/", s.handleIndex))
	s.mux.HandleFunc("/save_forecast", s.instrument("/save_forecast", s.handleSaveForecast))
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler exposes the routing mux
func (s *Server) Handler() http.Handler {
	return s.mux
}

// handleHealth returns the server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().String(),
	})
}

// handleIndex serves the form on GET and runs a forecast lookup on POST.
// A successful lookup renders the results page with the raw response embedded
// in the save form; every failure becomes a flash message and a redirect.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		s.renderIndex(w, r, nil)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userName := r.FormValue("name")
	city := r.FormValue("city")

	if userName == "" || city == "" {
		s.flash(w, r, "Please enter both your name and a city.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	result, err := s.weather.FetchForecast(city)
	if err != nil {
		s.flash(w, r, err.Error(), "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.renderIndex(w, r, &forecastView{
		UserName: userName,
		City:     result.City,
		Entries:  result.Entries,
		RawData:  string(result.Raw),
	})
}

// handleSaveForecast persists the raw document round-tripped through the form
func (s *Server) handleSaveForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userName := r.FormValue("user_name")
	city := r.FormValue("city")
	rawData := r.FormValue("raw_data")

	if userName == "" || city == "" || rawData == "" {
		s.flash(w, r, "Missing data to save the forecast.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !json.Valid([]byte(rawData)) {
		s.flash(w, r, "Invalid forecast data format.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := s.store.SaveForecast(userName, city, json.RawMessage(rawData)); err != nil {
		log.Printf("Database error: %v", err)
		if errors.Is(err, database.ErrConnection) {
			s.flash(w, r, "Database connection failed.", "error")
		} else {
			s.flash(w, r, "Failed to save forecast due to a database error.", "error")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.flash(w, r, "Forecast saved successfully!", "success")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderIndex draws the page with any queued flash messages and, when present,
// the forecast results
func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, view *forecastView) {
	data := indexPage{
		Flashes:  s.flashes(w, r),
		Forecast: view,
	}

	if err := pageTemplates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("Failed to render template: %v", err)
	}
}

// forecastView is the successful-lookup portion of the page
type forecastView struct {
	UserName string
	City     models.CityInfo
	Entries  []models.ForecastEntry
	RawData  string
}

type indexPage struct {
	Flashes  []flashMessage
	Forecast *forecastView
}

// statusRecorder captures the response code for instrumentation
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		metrics.RecordHTTPRequest(route, r.Method, rec.status, time.Since(start))
	}
}
