// chessrules validates moves, reports game states and counts move paths
// for standard chess positions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/artem-kuzishchin/chessrules/internal/config"
)

const programVersion = "0.1.0"

const (
	exitOK  = 0
	exitErr = 1
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}
	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeFiles, err := setupFiles(cfg)
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	err = realMain(cfg)
	closeFiles()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

// setupFiles opens the log and output files named on the command line.
// The returned function closes whatever was opened.
func setupFiles(cfg *config.Config) (func(), error) {
	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			return closeAll, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		opened = append(opened, f)
		cfg.SetLog(f)
	}
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			closeAll()
			return func() {}, fmt.Errorf("creating output file %s: %w", *outputFile, err)
		}
		opened = append(opened, f)
		cfg.SetOutput(f)
	}
	return closeAll, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves from a position and reports the legal moves and game state,\n")
	fmt.Fprintf(os.Stderr, "or counts move paths with -perft.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves use coordinate notation: e2e4, e1g1 (castling), e7e8n (promotion).\n")
}
