package server

import (
	"encoding/json"
	"errors"
	"net/http"

	l "nlsql/internal/logger"
	"nlsql/internal/pipeline"

	"github.com/google/uuid"
)

var logger *l.Logger

type translateRequest struct {
	Text string `json:"text"`
}

type translateError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type translateResponse struct {
	Success bool             `json:"success"`
	Result  *pipeline.Result `json:"result,omitempty"`
	Error   *translateError  `json:"error,omitempty"`
}

func StartServer() {
	logger = l.New("server", "logs", l.ERROR)

	server := &http.Server{Addr: ":8080", Handler: newMux()}
	err := server.ListenAndServe()
	if err != nil {
		panic(err)
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Health & readiness
	mux.HandleFunc("/health", health)

	// Translation
	// POST /translate -> run one sentence through the pipeline
	mux.HandleFunc("/translate", translateHandler)

	return mux
}

// health returns 200 OK for liveness checks
func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// translateHandler runs a single sentence through the pipeline. Grammar
// rejections are data, not transport failures: they come back as 200 with
// success=false. 400 is reserved for bodies the server cannot decode.
func translateHandler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	if r.Method != http.MethodPost {
		logger.Error("[%s] Invalid method used: %s", requestID, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("[%s] Failed to decode request body: %v", requestID, err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var response translateResponse
	result, err := pipeline.Run(req.Text)
	if err != nil {
		logger.Error("[%s] Translation failed: %v", requestID, err)
		response = translateResponse{Success: false, Error: errorBody(err)}
	} else {
		logger.Debug("[%s] Translated %q", requestID, req.Text)
		response = translateResponse{Success: true, Result: &result}
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		logger.Error("[%s] Failed to marshal response: %v", requestID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(responseBytes)
}

func errorBody(err error) *translateError {
	var pipelineErr *pipeline.Error
	if errors.As(err, &pipelineErr) {
		return &translateError{Kind: pipelineErr.Kind, Message: pipelineErr.Message}
	}
	return &translateError{Kind: "Internal", Message: err.Error()}
}
