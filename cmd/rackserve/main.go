/*
Package main implements the rack solving server and CLI application.

RackServe determines which words of a word list can be physically
assembled from a rack of Scrabble tiles (including '?' blanks), scores
each playable word with blank substitution accounted for, and returns
the results in a deterministic order. It can operate as a MessagePack
IPC server for integration with editors and GUI frontends, or as a CLI
application for testing and debugging.

The word list is loaded once at startup and shared read-only across all
requests. Solves are synchronous and stateless: each request builds its
rack distribution fresh, scans the list (or the prefix index when a
starts-with constraint is given), and discards everything but the
result.

# Usage

Start the server with default settings:

	rackserve

Use a custom word list and enable debug mode:

	rackserve -dict /path/to/words.txt -d

Run in CLI mode for interactive testing:

	rackserve -c -limit 20 -sort length

The word list is a plain text file with one word per line. CR/LF and LF
line endings both work, so stock tournament lists can be used as-is.

# Configuration

Runtime configuration is managed through a TOML file that supports
server limits, word list settings, and CLI defaults:

	[server]
	max_limit = 0
	max_rack_len = 15
	enable_filter = true

	[dict]
	path = "words.txt"
	max_words = 0

	[cli]
	default_sort = "score"
	default_limit = 50

The config file is automatically created with defaults if it doesn't
exist. Server mode reloads configuration periodically without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Solve
requests are processed synchronously with microsecond timing
information included in responses.

Send a solve request:

	{"id": "req1", "op": "solve", "r": "TAC?", "sort": "score"}

Receive playable words with adjusted scores:

	{"id": "req1", "s": [{"w": "ACT", "p": 5}, {"w": "CAT", "p": 5}], "c": 2, "t": 145}

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Path to the word list file (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of results to display in CLI mode
	-sort string
	    Default sort order: "score" or "length"
	-words int
	    Maximum words to load (0 for all)
	-raw
	    CLI mode prints the plain formatted result block
	-no-filter
	    Disable rack input validation for debugging

Results are sorted ascending on every key (score, length,
alphabetical), matching the desktop tool this replaces; frontends that
want "best word first" should reverse the list themselves.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/rackserve/rackserve/internal/cli"
	"github.com/rackserve/rackserve/internal/utils"
	"github.com/rackserve/rackserve/pkg/config"
	"github.com/rackserve/rackserve/pkg/dictionary"
	"github.com/rackserve/rackserve/pkg/server"
	"github.com/rackserve/rackserve/pkg/solve"
)

const (
	Version = "1.2.0"
	AppName = "rackserve"
	gh      = "https://github.com/rackserve/rackserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", defaultConfig.Dict.Path, "Path to the word list file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to display in CLI mode")
	sortMode := flag.String("sort", defaultConfig.CLI.DefaultSort, "Default sort order: score or length")
	wordLimit := flag.Int("words", defaultConfig.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")
	rawOutput := flag.Bool("raw", false, "CLI mode prints the plain formatted result block")
	noFilter := flag.Bool("no-filter", false, "Disable rack input validation (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	configPath, err := utils.GetConfigPath("rackserve.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	path := *dictPath
	if path == "" {
		path = appConfig.Dict.Path
	}
	resolvedPath, err := utils.ResolveWordListPath(path)
	if err != nil {
		log.Fatalf("Failed to resolve word list: (%v)", err)
	}

	maxWords := *wordLimit
	if maxWords == 0 {
		maxWords = appConfig.Dict.MaxWords
	}
	log.Debugf("Loading word list: path=[%s], maxWords=[%d]", resolvedPath, maxWords)

	dict, err := dictionary.Load(resolvedPath, maxWords)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	log.Debugf("Word list loaded: %d entries", dict.Len())

	solver := solve.NewSolver(dict)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"limit", *limit,
			"sort", *sortMode,
			"noFilter", *noFilter)

		mode := solve.ParseMode(*sortMode)
		inputHandler := cli.NewInputHandler(solver, appConfig.Server.MaxRackLen, *limit, mode, *noFilter, *rawOutput)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(solver, appConfig, configPath)

	showStartupInfo(resolvedPath, dict.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ RackServe ] Finds every playable word on your rack!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" RackServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("word list: ( %s )", dictPath)
	log.Infof("entries: [ %d ]", wordCount)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
