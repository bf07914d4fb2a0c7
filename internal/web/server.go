package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/weather-cli/internal/logger"
	"github.com/pfrederiksen/weather-cli/internal/openweather"
	"github.com/pfrederiksen/weather-cli/internal/report"
)

//go:embed templates/index.html
var templateFS embed.FS

// WeatherClient is the lookup dependency of the server
type WeatherClient interface {
	Current(ctx context.Context, q report.Query) (*report.Report, error)
}

// Server serves the weather form page and the JSON API
type Server struct {
	client  WeatherClient
	log     *logger.Logger
	metrics *logger.Metrics
	mux     *http.ServeMux
	tmpl    *template.Template
}

// page is the template data for the index page
type page struct {
	Query  string
	Error  string
	Report *report.Report
	Fields []report.Field
}

// NewServer creates a Server around the given weather client
func NewServer(client WeatherClient, log *logger.Logger) *Server {
	s := &Server{
		client:  client,
		log:     log,
		metrics: logger.NewMetrics(),
		mux:     http.NewServeMux(),
		tmpl:    template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
	s.routes()
	return s
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/weather", s.handleWeather)
	s.mux.HandleFunc("/api/metrics", s.handleMetrics)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
}

// GET / shows the form; POST / renders the weather for the submitted query
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.metrics.IncrCounter("http.index")

	if r.Method != http.MethodPost {
		s.render(w, page{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	raw := strings.TrimSpace(r.FormValue("city"))
	if raw == "" {
		// Empty resubmission just shows the bare form again
		s.render(w, page{})
		return
	}

	q, err := report.ParseQuery(raw)
	if err != nil {
		s.render(w, page{Query: raw, Error: fmt.Sprintf("No weather info for %s", strings.ToLower(raw))})
		return
	}

	rep, err := s.lookup(r.Context(), q)
	if err != nil {
		// Unknown city is a form UX case, not an HTTP error
		s.render(w, page{Query: raw, Error: userMessage(err, q.City)})
		return
	}

	s.render(w, page{Query: raw, Report: rep, Fields: rep.Fields()})
}

// GET /api/weather?q=<city[+|++]> returns the report as JSON
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.metrics.IncrCounter("http.api.weather")
	w.Header().Set("Content-Type", "application/json")

	q, err := report.ParseQuery(r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing or empty q parameter")
		return
	}

	rep, err := s.lookup(r.Context(), q)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, openweather.ErrCityNotFound) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, userMessage(err, q.City))
		return
	}

	resp := struct {
		Query  string         `json:"query"`
		Units  string         `json:"units"`
		Report *report.Report `json:"report"`
	}{
		Query:  q.String(),
		Units:  string(rep.Units),
		Report: rep,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encoding weather response", logger.Fields{"city": q.City}, err)
	}
}

// GET /api/metrics returns a snapshot of the server's metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.metrics.GetSnapshot()); err != nil {
		s.log.Error("encoding metrics snapshot", nil, err)
	}
}

// GET /healthz
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

// lookup fetches a report and records timing and error metrics
func (s *Server) lookup(ctx context.Context, q report.Query) (*report.Report, error) {
	start := time.Now()
	rep, err := s.client.Current(ctx, q)
	s.metrics.RecordTiming("weather.fetch", time.Since(start))

	if err != nil {
		s.metrics.IncrCounter("weather.errors")
		s.log.Warn("weather lookup failed", logger.Fields{"city": q.City, "detail": string(q.Detail)})
		return nil, err
	}

	s.log.Info("weather lookup", logger.Fields{
		"city":   q.City,
		"detail": string(q.Detail),
		"ms":     time.Since(start).Milliseconds(),
	})
	return rep, nil
}

// userMessage maps an error to the message shown to users
func userMessage(err error, city string) string {
	switch {
	case errors.Is(err, openweather.ErrCityNotFound):
		return fmt.Sprintf("No weather info for %s", city)
	case errors.Is(err, openweather.ErrBadCredentials):
		return "Weather service is misconfigured"
	default:
		return "Weather lookup failed, try again later"
	}
}

func (s *Server) render(w http.ResponseWriter, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, p); err != nil {
		s.log.Error("rendering index page", nil, err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
