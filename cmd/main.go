package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saeidalz13/battleship-arcade/api"
	"github.com/saeidalz13/battleship-arcade/internal/config"
	"github.com/saeidalz13/battleship-arcade/internal/logger"
	"github.com/saeidalz13/battleship-arcade/internal/random"
	mb "github.com/saeidalz13/battleship-arcade/models/battleship"
	mc "github.com/saeidalz13/battleship-arcade/models/connection"
)

func main() {
	var (
		jsonMode = flag.Bool("json", false, "read JSON requests line by line and answer with JSON lines")
		envFile  = flag.String("env", ".env", "path of the .env file loaded outside of prod")
	)
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lg, err := logger.New(os.Stderr, cfg.LogLevel, cfg.Stage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rng, seed, err := random.NewRand(cfg.Seed)
	if err != nil {
		lg.Fatal("random seed", "err", err)
	}
	lg.Info("starting", "stage", cfg.Stage, "seed", seed, "grid", cfg.GridSize, "fleet", cfg.Fleet)

	app, err := api.NewApp(mb.NewBattleshipGameManager(), api.WithConfig(cfg, rng), api.WithLogger(lg))
	if err != nil {
		lg.Fatal("app", "err", err)
	}
	rp := api.NewRequestProcessor(app)

	if *jsonMode {
		err = serveJSON(os.Stdin, os.Stdout, rp)
	} else {
		err = serveText(os.Stdin, os.Stdout, rp, cfg.GridSize)
	}
	if err != nil {
		lg.Fatal("session", "err", err)
	}
}

// serveJSON answers every input line with one response line
// until the app is closed or the input ends.
func serveJSON(in io.Reader, out io.Writer, rp api.RequestProcessor) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s\n", rp.Process([]byte(line))); err != nil {
			return err
		}
		if rp.App().View() == api.ViewClosed {
			return nil
		}
	}
	return scanner.Err()
}

func serveText(in io.Reader, out io.Writer, rp api.RequestProcessor, gridSize int) error {
	fmt.Fprintln(out, "battleship. type 'help' for commands")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := parseCommand(line, gridSize)
		if errors.Is(err, errHelp) {
			fmt.Fprintln(out, helpText)
			continue
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		redraw, err := exchange(out, rp, cmd)
		if err != nil {
			return err
		}
		if rp.App().View() == api.ViewClosed {
			return nil
		}
		if redraw {
			if _, err := exchange(out, rp, command{code: mc.CodeQueryState}); err != nil {
				return err
			}
		}
	}
}

func exchange(out io.Writer, rp api.RequestProcessor, cmd command) (bool, error) {
	req, err := cmd.encode()
	if err != nil {
		return false, err
	}

	var resp mc.Message[json.RawMessage]
	if err := json.Unmarshal(rp.Process(req), &resp); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return renderResponse(out, resp)
}
