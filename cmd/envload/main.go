package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/amaumene/envinit/pkg/config"
	"github.com/amaumene/envinit/pkg/dotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	flags := flag.NewFlagSet("envload", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: envload [flags] [command [args...]]\n")
		flags.PrintDefaults()
	}
	flags.StringVar(&cfg.File, "f", cfg.File, "dotenv file to load")
	flags.StringVar(&cfg.Policy, "policy", cfg.Policy, "assignment policy: override or skip")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flags.BoolVar(&cfg.Optional, "optional", false, "do not fail when the file is missing")
	flags.BoolVar(&cfg.Print, "print", false, "print the file's assignments instead of applying them")
	verbose := flags.Bool("v", false, "shorthand for -log-level debug")
	flags.Parse(os.Args[1:])
	if *verbose {
		cfg.LogLevel = "debug"
	}

	// stdout belongs to -print and the child command
	log.SetOutput(os.Stderr)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	log.SetLevel(cfg.GetLogLevel())

	code, err := run(cfg, flags.Args(), os.Stdout)
	if err != nil {
		log.WithError(err).WithField("file", cfg.File).Fatal("envload failed")
	}
	os.Exit(code)
}

// run loads cfg.File and then prints it, runs args, or does nothing more.
// The returned code is the child's exit status when a command ran.
func run(cfg *config.Config, args []string, stdout io.Writer) (int, error) {
	if cfg.Print {
		return 0, printFile(cfg, stdout)
	}

	loader := dotenv.New(dotenv.OSStore{}, cfg.GetPolicy())
	loader.Logger = log.StandardLogger()
	if err := loadFile(cfg, loader); err != nil {
		return 1, err
	}

	if len(args) == 0 {
		return 0, nil
	}
	return runCommand(args, stdout)
}

func loadFile(cfg *config.Config, loader *dotenv.Loader) error {
	err := loader.LoadFile(cfg.File)
	if err != nil && cfg.Optional && dotenv.IsNotExist(err) {
		log.WithField("file", cfg.File).Debug("Dotenv file not found, continuing")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"file":   cfg.File,
		"policy": loader.Policy.String(),
	}).Debug("Loaded dotenv file")
	return nil
}

// printFile applies the file to an empty store and writes the result as
// sorted KEY=VALUE lines that load back into the same assignments. With an
// empty starting store Skip keeps the first assignment of a key and
// Override the last.
func printFile(cfg *config.Config, stdout io.Writer) error {
	store := dotenv.MapStore{}
	if err := loadFile(cfg, dotenv.New(store, cfg.GetPolicy())); err != nil {
		return err
	}

	var out strings.Builder
	for _, key := range slices.Sorted(maps.Keys(store)) {
		out.WriteString(key + "=" + store[key] + "\n")
	}
	if _, err := io.WriteString(stdout, out.String()); err != nil {
		return fmt.Errorf("writing environment: %w", err)
	}
	return nil
}

// runCommand runs args with the current environment and forwards
// interrupt and terminate signals to it.
func runCommand(args []string, stdout io.Writer) (int, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("starting %s: %w", args[0], err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigChan:
				log.WithField("signal", sig).Debug("Forwarding signal to command")
				if err := cmd.Process.Signal(sig); err != nil {
					log.WithError(err).Warn("Failed to forward signal")
				}
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, fmt.Errorf("running %s: %w", args[0], err)
	}
	return 0, nil
}
