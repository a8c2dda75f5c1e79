package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/langowen/exchangeit/deploy/config"
	"github.com/langowen/exchangeit/internal/currency/adapter/api_client/ecornell"
	"github.com/langowen/exchangeit/internal/currency/exchange"
	"github.com/pkg/errors"
)

type Exchanger interface {
	Exchange(ctx context.Context, src, dst string, amt float64) (float64, error)
}

func main() {
	cfg := config.NewConfig()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	client, err := exchange.NewClient(ecornell.NewHTTPClient(cfg.Service.Timeout), cfg.Settings())
	if err != nil {
		log.Fatalln("Failed to initialize exchange client", "error", err)
	}

	if err := run(context.Background(), os.Stdin, os.Stdout, client); err != nil {
		slog.Error("exchange failed", "error", err)
		os.Exit(1)
	}
}

// run asks for two currency codes and an amount, then prints the converted amount.
func run(ctx context.Context, in io.Reader, out io.Writer, ex Exchanger) error {
	const op = "main.run"

	scanner := bufio.NewScanner(in)

	src, err := prompt(scanner, out, "3-letter code for original currency: ")
	if err != nil {
		return errors.Wrap(err, op)
	}

	dst, err := prompt(scanner, out, "3-letter code for the new currency: ")
	if err != nil {
		return errors.Wrap(err, op)
	}

	amt, err := prompt(scanner, out, "Amount of the original currency: ")
	if err != nil {
		return errors.Wrap(err, op)
	}

	amount, err := strconv.ParseFloat(amt, 64)
	if err != nil {
		return errors.Wrapf(err, "%s: amount %q", op, amt)
	}

	result, err := ex.Exchange(ctx, src, dst, amount)
	if err != nil {
		return errors.Wrap(err, op)
	}

	_, err = fmt.Fprintf(out, "You can exchange %s %s for %s %s.\n", amt, src, formatResult(result), dst)
	return err
}

// formatResult rounds to three places and keeps at least one decimal: 2.0, 2.216.
func formatResult(result float64) string {
	rounded := strconv.FormatFloat(math.Round(result*1000)/1000, 'f', -1, 64)
	if !strings.Contains(rounded, ".") {
		rounded += ".0"
	}

	return rounded
}

func prompt(scanner *bufio.Scanner, out io.Writer, question string) (string, error) {
	if _, err := fmt.Fprint(out, question); err != nil {
		return "", err
	}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(scanner.Text()), nil
}
