package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/Amr-9/AddrScope/internal/config"
	"github.com/Amr-9/AddrScope/internal/ui"
	"github.com/Amr-9/AddrScope/pkg/classifier"
)

const version = "0.1"

func main() {
	if err := run(os.Args[1:]); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s✗ %v%s\n", ui.ColorRed, err, ui.ColorReset)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.Load(args)
	if err != nil {
		return err
	}

	if err := setupLog(cfg.LogLevel, !cfg.NoColor); err != nil {
		return err
	}

	c, err := classifier.New(cfg.Table())
	if err != nil {
		return err
	}
	logrus.WithField("rules", len(c.Table())).Debug("classifier ready")

	out := ui.NewWriter(!cfg.NoColor && !cfg.JSON)
	p := &printer{w: out, classifier: c, json: cfg.JSON}

	switch {
	case len(rest) > 0:
		for _, addr := range rest {
			if err := p.print(addr); err != nil {
				return err
			}
		}
		return nil

	case cfg.Stdin:
		return p.printLines(os.Stdin)

	default:
		return interactive(p)
	}
}

// printer writes one report per address, as text or JSON.
type printer struct {
	w          io.Writer
	classifier *classifier.Classifier
	json       bool
}

func (p *printer) print(address string) error {
	report := p.classifier.Describe(address)

	logrus.WithFields(logrus.Fields{
		"address":    address,
		"types":      report.TypeNames,
		"categories": report.Categories.String(),
	}).Debug("classified")

	if p.json {
		return json.NewEncoder(p.w).Encode(report)
	}

	ui.PrintReport(p.w, report)
	fmt.Fprintln(p.w)
	return nil
}

// printLines classifies every non-blank line of r.
func (p *printer) printLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		addr := strings.TrimSpace(scanner.Text())
		if addr == "" {
			continue
		}
		if err := p.print(addr); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read addresses: %w", err)
	}

	logrus.WithField("count", count).Info("classified addresses")
	return nil
}

// interactive prompts for addresses until the user quits, input ends or an
// interrupt arrives.
func interactive(p *printer) error {
	ui.ClearScreen(p.w)
	ui.PrintWelcomeBanner(p.w, version)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- p.prompt(bufio.NewReader(os.Stdin))
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(p.w, "\n    %sBye%s\n", ui.ColorDim, ui.ColorReset)
		return err
	case sig := <-sigChan:
		fmt.Fprintf(p.w, "\n\n    %s⚠ Cancelled%s (%s)\n", ui.ColorYellow+ui.ColorBold, ui.ColorReset, sig)
		return nil
	}
}

// prompt runs the read / classify / continue loop.
func (p *printer) prompt(reader *bufio.Reader) error {
	for {
		addr, err := ui.ReadAddress(p.w, reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if addr != "" {
			fmt.Fprintln(p.w)
			if err := p.print(addr); err != nil {
				return err
			}
		}

		if !ui.AskToContinue(p.w, reader) {
			return nil
		}
		fmt.Fprintln(p.w)
	}
}
