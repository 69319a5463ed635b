package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/audit"
	"github.com/gaurav-prasanna/claritycompass/core/fetch"
	"github.com/gaurav-prasanna/claritycompass/report"
)

// Handler holds the pipeline components the endpoints dispatch to.
type Handler struct {
	analyzer   *audit.Analyzer
	fetcher    core.Fetcher
	fullReport *report.Service
	logger     *slog.Logger
}

type analyzeRequest struct {
	URL string `json:"url"`
}

// Analyze runs the heuristic audit for the submitted URL.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL missing")
		return
	}

	pageURL, err := fetch.NormalizeURL(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Provide a valid URL")
		return
	}

	result, err := h.fetcher.Fetch(r.Context(), pageURL)
	if err != nil {
		// Transport detail stays in the log; the caller gets an opaque
		// failure with no partial result.
		h.logger.Error("fetch failed", "url", pageURL, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to analyze this URL.")
		return
	}

	rep, err := h.analyzer.AnalyzeHTML(pageURL, result.HTML)
	if err != nil {
		h.logger.Error("analysis failed", "url", pageURL, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to analyze this URL.")
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// FullReport runs the model-backed audit for the submitted URL.
func (h *Handler) FullReport(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL missing")
		return
	}

	pageURL, err := fetch.NormalizeURL(req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Please provide a valid URL starting with http(s)://")
		return
	}

	if h.fullReport == nil {
		writeError(w, http.StatusInternalServerError, "Missing OPENAI_API_KEY on server.")
		return
	}

	result, err := h.fullReport.Run(r.Context(), pageURL)
	if err != nil {
		h.logger.Error("full report failed", "url", pageURL, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to audit this URL.")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
