package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/passlab/crackestimate/internal/safemem"
)

// NewMuxRouter builds the default, framework-free HTTP surface on top
// of gorilla/mux: POST /estimate, POST /batch, GET /compare,
// GET /metadata, POST /targeted.
func NewMuxRouter(svc *Service) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/estimate", muxEstimate(svc)).Methods(http.MethodPost)
	r.HandleFunc("/batch", muxBatch(svc)).Methods(http.MethodPost)
	r.HandleFunc("/compare", muxCompare(svc)).Methods(http.MethodGet)
	r.HandleFunc("/metadata", muxMetadata(svc)).Methods(http.MethodGet)
	r.HandleFunc("/targeted", muxTargeted(svc)).Methods(http.MethodPost)
	return r
}

func muxEstimate(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EstimateRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		resp, err := svc.Estimate(req)
		writeResult(w, resp, err)
	}
}

func muxBatch(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		if len(req.Passwords) == 0 {
			writeJSONError(w, http.StatusBadRequest, "passwords list cannot be empty")
			return
		}
		resp, err := svc.Batch(req)
		writeResult(w, resp, err)
	}
}

func muxTargeted(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TargetedRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		resp, err := svc.Targeted(req)
		writeResult(w, resp, err)
	}
}

func muxMetadata(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Metadata())
	}
}

// muxCompare reads the swept axis and fixed values from query
// parameters: axis=passwords|algorithms|hardware_tiers, values=a,b,c
// (comma-separated), plus password/algorithm/hardware_tier for the
// two fixed axes.
func muxCompare(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		axis := CompareAxis(q.Get("axis"))
		values := splitCSV(q.Get("values"))
		if len(values) < 2 {
			writeJSONError(w, http.StatusBadRequest, "need at least 2 comma-separated values to compare")
			return
		}

		req := CompareRequest{
			Password:     q.Get("password"),
			Algorithm:    q.Get("algorithm"),
			HardwareTier: q.Get("hardware_tier"),
		}
		switch axis {
		case AxisPasswords:
			req.Passwords = values
		case AxisAlgorithms:
			req.Algorithms = values
		case AxisHardwareTiers:
			req.HardwareTiers = values
		default:
			writeJSONError(w, http.StatusBadRequest, "axis must be one of: passwords, algorithms, hardware_tiers")
			return
		}

		resp, err := svc.Compare(axis, req)
		writeResult(w, resp, err)
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// decodeJSONBody reads r.Body fully so the raw bytes (which contain
// the plaintext password) can be zeroed once decoding is done, rather
// than leaving them for the garbage collector to reclaim on its own
// schedule.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	defer safemem.Zero(raw)
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeResult(w http.ResponseWriter, body any, err error) {
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
