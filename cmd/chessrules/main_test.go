package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/artem-kuzishchin/chessrules/internal/config"
	"github.com/artem-kuzishchin/chessrules/internal/errors"
	"github.com/artem-kuzishchin/chessrules/internal/fen"
	"github.com/artem-kuzishchin/chessrules/internal/testutil"
)

func testConfig(out, log *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLog(log).
		WithVerbosity(1)
}

func TestRealMain_Report(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).
		WithMoves("e2e4", "e7e5", "g1f3").
		WithOutputFormat(config.FEN).
		Build()

	testutil.AssertNoError(t, realMain(cfg))
	testutil.AssertEqual(t, out.String(),
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2\n", "output")
	testutil.AssertContains(t, log.String(), "3 moves played, ongoing")
}

func TestRealMain_JSONCheckmate(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).
		WithMoves("f2f3", "e7e5", "g2g4", "d8h4").
		WithOutputFormat(config.JSON).
		Build()

	testutil.AssertNoError(t, realMain(cfg))

	var report struct {
		State   string   `json:"state"`
		InCheck bool     `json:"inCheck"`
		Played  []string `json:"played"`
	}
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &report))
	testutil.AssertEqual(t, report.State, "checkmate", "state")
	testutil.AssertTrue(t, report.InCheck, "inCheck")
	testutil.AssertEqual(t, report.Played, []string{"f2f3", "e7e5", "g2g4", "d8h4"}, "played")
}

func TestRealMain_IllegalMove(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).
		WithMoves("e2e4", "e8e6").
		WithOutputFormat(config.FEN).
		Build()

	err := realMain(cfg)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	// The position before the rejected move is still reported.
	testutil.AssertEqual(t, out.String(),
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n", "output")
	testutil.AssertContains(t, log.String(), "move 2 (e8e6)")
}

func TestRealMain_BadFEN(t *testing.T) {
	tests := []struct {
		name     string
		fallback bool
		wantErr  error
		wantOut  string
	}{
		{"rejected", false, errors.ErrMalformedInput, ""},
		{"fallback", true, nil, fen.StartFEN + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, log bytes.Buffer
			cfg := testConfig(&out, &log).
				WithStartFEN("rnbqkbnr/pppppppp/8/8 w KQkq - 0 1").
				WithFallbackToStart(tt.fallback).
				WithOutputFormat(config.FEN).
				Build()

			err := realMain(cfg)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
			} else {
				testutil.AssertNoError(t, err)
			}
			testutil.AssertEqual(t, out.String(), tt.wantOut, "output")
		})
	}
}

func TestRealMain_MissingKing(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).
		WithStartFEN("8/8/8/8/8/8/8/4K3 w - - 0 1").
		WithFallbackToStart(true).
		Build()

	testutil.AssertErrorIs(t, realMain(cfg), errors.ErrInvariantViolation)
	testutil.AssertEqual(t, out.Len(), 0, "output bytes")
}

func TestRealMain_InvalidConfig(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithPerft(-1, false).Build()

	testutil.AssertErrorIs(t, realMain(cfg), errors.ErrInvalidConfig)
}

func TestRealMain_Perft(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithPerft(3, false).Build()

	testutil.AssertNoError(t, realMain(cfg))
	testutil.AssertContains(t, out.String(), "perft(3) nodes=8,902")
}

func TestRealMain_PerftDivide(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).
		WithMoves("e2e4").
		WithPerft(2, true).
		WithWorkers(4).
		Build()

	testutil.AssertNoError(t, realMain(cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// 20 Black replies, then the summary line.
	testutil.AssertEqual(t, len(lines), 21, "line count")
	testutil.AssertContains(t, lines[20], "perft(2) nodes=")
}

func TestRealMain_Board(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).Build()

	testutil.AssertNoError(t, realMain(cfg))
	testutil.AssertContains(t, out.String(), "1 R N B Q K B N R")
	testutil.AssertContains(t, out.String(), "white to move: ongoing")
	testutil.AssertContains(t, out.String(), "legal moves (20):")
}
