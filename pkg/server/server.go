package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/rackserve/rackserve/internal/utils"
	"github.com/rackserve/rackserve/pkg/config"
	"github.com/rackserve/rackserve/pkg/solve"
)

// configReloadInterval is how many requests pass between config
// re-reads, so limit changes written by other processes are picked up
// without a restart.
const configReloadInterval = 100

// Server handles the IPC for rack solving.
type Server struct {
	solver       *solve.Solver
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a solve server using stdin/stdout for IPC.
func NewServer(solver *solve.Solver, cfg *config.Config, configPath string) *Server {
	return &Server{
		solver:     solver,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
		encoder:    msgpack.NewEncoder(os.Stdout),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	s.requestCount++
	if s.requestCount%configReloadInterval == 0 {
		s.reloadConfig()
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
		log.Debugf("Request without id, assigned %s", request.ID)
	}

	switch request.Op {
	case "solve":
		s.handleSolve(request)
	case "dict":
		s.send(DictResponse{
			ID:        request.ID,
			Status:    "ok",
			WordCount: s.solver.Dictionary().Len(),
		})
	case "config":
		s.handleConfig(request)
	case "ping":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// handleSolve validates a solve request, runs the engine, and sends
// the ordered results.
func (s *Server) handleSolve(request Request) {
	rack := request.Rack
	if rack == "" {
		s.sendError(request.ID, "Missing 'r' (rack) parameter", 400)
		log.Debug("Rack is empty in request")
		return
	}
	if max := s.config.Server.MaxRackLen; max > 0 && len(rack) > max {
		s.sendError(request.ID, fmt.Sprintf("Rack exceeds maximum length of %d characters", max), 400)
		log.Debug("Rack is too long in request")
		return
	}
	if s.config.Server.EnableFilter && !utils.IsValidRack(rack) {
		s.sendError(request.ID, "Rack holds no usable tiles", 400)
		log.Debugf("Rack rejected by input filter: %q", rack)
		return
	}

	filters := solve.Filters{
		StartsWith: request.StartsWith,
		EndsWith:   request.EndsWith,
		Contains:   request.Contains,
	}
	mode := solve.ParseMode(request.Sort)

	start := time.Now()
	candidates := s.solver.Solve(rack, filters, mode)
	elapsed := time.Since(start)

	limit := request.Limit
	if limit <= 0 || (s.config.Server.MaxLimit > 0 && limit > s.config.Server.MaxLimit) {
		limit = s.config.Server.MaxLimit
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]ResultEntry, len(candidates))
	for i, c := range candidates {
		results[i] = ResultEntry{Word: c.Word, Score: c.Score}
	}

	s.send(SolveResponse{
		ID:        request.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleConfig applies a runtime config update and persists it.
func (s *Server) handleConfig(request Request) {
	if request.MaxLimit == nil && request.MaxRackLen == nil && request.EnableFilter == nil {
		s.sendError(request.ID, "Config request carries no settings", 400)
		return
	}
	if err := s.config.Update(s.configPath, request.MaxLimit, request.MaxRackLen, request.EnableFilter); err != nil {
		log.Errorf("Updating config: %v", err)
		s.send(StatusResponse{ID: request.ID, Status: "error", Error: err.Error()})
		return
	}
	s.send(StatusResponse{ID: request.ID, Status: "ok"})
}

// reloadConfig re-reads the config file in place.
func (s *Server) reloadConfig() {
	if s.configPath == "" {
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Config reload failed, keeping current settings: %v", err)
		return
	}
	s.config = cfg
	log.Debug("Config reloaded")
}

// send encodes a response as msgpack onto stdout.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
