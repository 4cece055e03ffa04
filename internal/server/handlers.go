package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/report"
	"github.com/claude/ftracker/internal/training"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies; a package is a handful of numbers.
const maxBodyBytes = 1 << 20

// reportRequest is a package as sent over HTTP. Readings are decoded loosely
// so that non-numeric values are reported as malformed readings rather than
// as a JSON error.
type reportRequest struct {
	Code     string `json:"code"`
	Readings []any  `json:"readings"`
}

func (req reportRequest) toPackage() (models.Package, error) {
	readings := make([]float64, 0, len(req.Readings))
	for i, v := range req.Readings {
		n, ok := v.(json.Number)
		if !ok {
			return models.Package{}, fmt.Errorf("%w: reading %d (%v) is not a number", training.ErrMalformedReadings, i+1, v)
		}
		f, err := n.Float64()
		if err != nil {
			return models.Package{}, fmt.Errorf("%w: reading %d (%s) is not a number", training.ErrMalformedReadings, i+1, n)
		}
		readings = append(readings, f)
	}
	return models.Package{Code: req.Code, Readings: readings}, nil
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, training.Kinds())
}

func (s *Server) handleWorkoutType(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	k, ok := training.LookupKind(code)
	if !ok {
		s.writeReportError(w, fmt.Errorf("%w %q", training.ErrUnknownWorkoutKind, code))
		return
	}
	writeJSON(w, http.StatusOK, k)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	p, err := req.toPackage()
	if err != nil {
		s.writeReportError(w, err)
		return
	}

	rep, err := report.Compute(p)
	if err != nil {
		s.writeReportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []reportRequest
	if err := decodeJSON(w, r, &reqs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	reports := make([]*report.Report, 0, len(reqs))
	for i, req := range reqs {
		p, err := req.toPackage()
		if err == nil {
			var rep *report.Report
			rep, err = report.Compute(p)
			reports = append(reports, rep)
		}
		if err != nil {
			s.writeReportError(w, fmt.Errorf("package %d (%s): %w", i+1, req.Code, err))
			return
		}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleReportQuery(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	readings, err := training.ParseReadings(r.URL.Query()["r"])
	if err != nil {
		s.writeReportError(w, err)
		return
	}

	rep, err := report.Compute(models.Package{Code: code, Readings: readings})
	if err != nil {
		s.writeReportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// writeReportError maps dispatch errors to HTTP statuses.
func (s *Server) writeReportError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutKind):
		status = http.StatusNotFound
	case errors.Is(err, training.ErrMalformedReadings):
		status = http.StatusBadRequest
	case errors.Is(err, training.ErrInvalidDomainValue):
		status = http.StatusUnprocessableEntity
	default:
		s.log.Error("report error", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
