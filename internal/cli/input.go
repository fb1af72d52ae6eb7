// Package cli handles cmd line input and solving for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rackserve/rackserve/internal/utils"
	"github.com/rackserve/rackserve/pkg/solve"
)

// InputHandler processes solve requests typed on stdin. Each line is a
// rack plus optional directives controlling the filters and sort order.
type InputHandler struct {
	solver       *solve.Solver
	maxRackLen   int
	resultLimit  int
	defaultMode  solve.Mode
	requestCount int
	noFilter     bool
	raw          bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(solver *solve.Solver, maxRackLen, limit int, mode solve.Mode, noFilter, raw bool) *InputHandler {
	return &InputHandler{
		solver:      solver,
		maxRackLen:  maxRackLen,
		resultLimit: limit,
		defaultMode: mode,
		noFilter:    noFilter,
		raw:         raw,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("RackServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a rack ('?' for blanks) and press Enter to see playable words (Ctrl+C to exit):")
	log.Print("directives: sw=PREFIX ew=SUFFIX has=PART sort=score|length")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single request line. It parses the rack and
// directives, validates the rack, runs the solver, and prints the
// ordered results to the log.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	rack, filters, mode, err := h.parseLine(line)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	if h.maxRackLen > 0 && len(rack) > h.maxRackLen {
		log.Errorf("Rack too long: %s", rack)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidRack(rack) {
			log.Warnf("No usable tiles on rack: '%s'", rack)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	log.Debug("Processing request for", "rack", rack, "sort", mode)
	candidates := h.solver.Solve(rack, filters, mode)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for rack '%s'", elapsed, rack)

	if h.raw {
		fmt.Println(solve.Format(candidates))
		return
	}

	if len(candidates) == 0 {
		log.Warnf("No playable words for rack: '%s'", rack)
		return
	}

	shown := candidates
	if h.resultLimit > 0 && len(shown) > h.resultLimit {
		shown = shown[:h.resultLimit]
	}

	log.Printf("Found %d playable words for rack '%s':", len(candidates), rack)
	for i, c := range shown {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", c.Word)
		log.Printf("%2d. %-40s (%3d pts)", i+1, clWord, c.Score)
	}
	if len(shown) < len(candidates) {
		log.Printf("... and %d more", len(candidates)-len(shown))
	}
}

// parseLine splits a request line into the rack, filters, and sort
// mode. The first field is the rack; the rest are key=value directives.
func (h *InputHandler) parseLine(line string) (string, solve.Filters, solve.Mode, error) {
	fields := strings.Fields(line)
	rack := fields[0]
	filters := solve.Filters{}
	mode := h.defaultMode

	for _, field := range fields[1:] {
		key, value, found := strings.Cut(field, "=")
		if !found {
			return "", filters, mode, fmt.Errorf("bad directive %q (want key=value)", field)
		}
		switch key {
		case "sw":
			filters.StartsWith = value
		case "ew":
			filters.EndsWith = value
		case "has":
			filters.Contains = value
		case "sort":
			mode = solve.ParseMode(value)
		default:
			return "", filters, mode, fmt.Errorf("unknown directive %q", key)
		}
	}
	return rack, filters, mode, nil
}
