// Package web serves a localhost-only single-user dashboard; it intentionally
// has no auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"logmon/config"
	"logmon/parser"
	"logmon/report"
	"logmon/tracker"
)

//go:embed templates/*.html
var templateFS embed.FS

// Analysis is the outcome of one uploaded log file, held in memory until the
// next upload replaces it.
type Analysis struct {
	FileName   string
	UploadedAt time.Time

	LinesRead     int
	EntriesParsed int
	Malformed     []parser.LineError
	Records       []tracker.JobRecord
	Orphans       []tracker.OrphanEnd
	Summary       report.Summary
}

type Server struct {
	cfg config.Config
	mux *http.ServeMux

	mu       sync.RWMutex
	analysis *Analysis
}

type summaryResponse struct {
	TotalJobs          int      `json:"totalJobs"`
	CompletedJobs      int      `json:"completedJobs"`
	IncompleteJobs     int      `json:"incompleteJobs"`
	WarningJobs        int      `json:"warningJobs"`
	ErrorJobs          int      `json:"errorJobs"`
	OrphanEnds         int      `json:"orphanEnds"`
	MalformedLines     int      `json:"malformedLines"`
	AvgDurationMinutes *float64 `json:"avgDurationMinutes"`
	MinDurationMinutes *float64 `json:"minDurationMinutes"`
	MaxDurationMinutes *float64 `json:"maxDurationMinutes"`
}

type pageView struct {
	Title         string
	HasAnalysis   bool
	FileName      string
	UploadedAt    string
	LinesRead     int
	EntriesParsed int
	Malformed     int
	OrphanEnds    int

	TotalJobs      int
	CompletedJobs  int
	IncompleteJobs int
	WarningJobs    int
	ErrorJobs      int
	AvgDuration    string
	MinDuration    string
	MaxDuration    string

	StatusFilter string
	AlertFilter  string
	Rows         []JobRow
}

func NewServer(cfg config.Config) http.Handler {
	server := &Server{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleDashboard)
	mux.HandleFunc("POST /upload", server.handleUpload)
	mux.HandleFunc("GET /report.txt", server.handleTextReport)
	mux.HandleFunc("GET /api/summary", server.handleAPISummary)
	mux.HandleFunc("GET /api/jobs", server.handleAPIJobs)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	statusFilter := strings.TrimSpace(r.URL.Query().Get("status"))
	alertFilter := strings.TrimSpace(r.URL.Query().Get("alert"))

	view := pageView{
		Title:        "logmon dashboard",
		StatusFilter: statusFilter,
		AlertFilter:  alertFilter,
	}

	if analysis := s.currentAnalysis(); analysis != nil {
		view.HasAnalysis = true
		view.FileName = analysis.FileName
		view.UploadedAt = analysis.UploadedAt.Format("2006-01-02 15:04:05")
		view.LinesRead = analysis.LinesRead
		view.EntriesParsed = analysis.EntriesParsed
		view.Malformed = len(analysis.Malformed)
		view.OrphanEnds = len(analysis.Orphans)

		view.TotalJobs = analysis.Summary.TotalJobs
		view.CompletedJobs = analysis.Summary.CompletedJobs
		view.IncompleteJobs = analysis.Summary.IncompleteJobs
		view.WarningJobs = analysis.Summary.WarningJobs
		view.ErrorJobs = analysis.Summary.ErrorJobs
		view.AvgDuration = summaryDuration(analysis.Summary, analysis.Summary.AvgDurationMinutes)
		view.MinDuration = summaryDuration(analysis.Summary, analysis.Summary.MinDurationMinutes)
		view.MaxDuration = summaryDuration(analysis.Summary, analysis.Summary.MaxDurationMinutes)

		view.Rows = BuildJobRows(FilterJobs(analysis.Records, statusFilter, alertFilter))
	}

	if err := renderTemplate(w, "index.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("parse multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := parser.Parse(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse uploaded log: %v", err), http.StatusBadRequest)
		return
	}

	tr := tracker.New(tracker.Thresholds{
		WarningMinutes: s.cfg.Thresholds.WarningMinutes,
		ErrorMinutes:   s.cfg.Thresholds.ErrorMinutes,
	})
	for _, entry := range result.Entries {
		tr.Observe(entry)
	}
	tr.Finalize()

	records := tr.Records()
	orphans := tr.Orphans()
	analysis := &Analysis{
		FileName:      header.Filename,
		UploadedAt:    time.Now(),
		LinesRead:     result.LinesRead,
		EntriesParsed: len(result.Entries),
		Malformed:     result.Malformed,
		Records:       records,
		Orphans:       orphans,
		Summary:       report.Build(records, len(orphans)),
	}

	s.mu.Lock()
	s.analysis = analysis
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTextReport(w http.ResponseWriter, r *http.Request) {
	analysis := s.currentAnalysis()
	if analysis == nil {
		http.Error(w, "no log file analyzed yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := report.Render(w, analysis.Summary, analysis.Records); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	analysis := s.currentAnalysis()
	if analysis == nil {
		http.Error(w, "no log file analyzed yet", http.StatusNotFound)
		return
	}

	resp := summaryResponse{
		TotalJobs:      analysis.Summary.TotalJobs,
		CompletedJobs:  analysis.Summary.CompletedJobs,
		IncompleteJobs: analysis.Summary.IncompleteJobs,
		WarningJobs:    analysis.Summary.WarningJobs,
		ErrorJobs:      analysis.Summary.ErrorJobs,
		OrphanEnds:     analysis.Summary.OrphanEnds,
		MalformedLines: len(analysis.Malformed),
	}
	if analysis.Summary.HasDurations {
		avg := analysis.Summary.AvgDurationMinutes
		min := analysis.Summary.MinDurationMinutes
		max := analysis.Summary.MaxDurationMinutes
		resp.AvgDurationMinutes = &avg
		resp.MinDurationMinutes = &min
		resp.MaxDurationMinutes = &max
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIJobs(w http.ResponseWriter, r *http.Request) {
	analysis := s.currentAnalysis()
	if analysis == nil {
		http.Error(w, "no log file analyzed yet", http.StatusNotFound)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	alert := strings.TrimSpace(r.URL.Query().Get("alert"))
	rows := BuildJobRows(FilterJobs(analysis.Records, status, alert))

	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) currentAnalysis() *Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analysis
}

func summaryDuration(summary report.Summary, minutes float64) string {
	if !summary.HasDurations {
		return "n/a"
	}
	return report.FormatMinutes(minutes)
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
