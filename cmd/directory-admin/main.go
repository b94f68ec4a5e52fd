// Package main is the entry point for the Alexander Directory admin CLI.
// It provides commands for registering users, verifying logins, issuing
// access codes, and converting bulk-import record files.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prn-tf/alexander-directory/internal/config"
	"github.com/prn-tf/alexander-directory/internal/domain"
	"github.com/prn-tf/alexander-directory/internal/metrics"
	"github.com/prn-tf/alexander-directory/internal/notify"
	"github.com/prn-tf/alexander-directory/internal/pkg/crypto"
	"github.com/prn-tf/alexander-directory/internal/registry"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "version":
		fmt.Printf("Alexander Directory Admin CLI\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	cfg, err := config.Load(os.Getenv("DIRECTORY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	initLogging(cfg)

	reg, err := newRegistry(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to build registry")
		os.Exit(1)
	}

	if err := run(reg, command, args); err != nil {
		log.Error().Err(err).Str("command", command).Msg("command failed")
		os.Exit(1)
	}
}

// run dispatches a directory command against the registry.
func run(reg *registry.Registry, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 3 {
			return errors.New("usage: register <full-name> <email> <password>")
		}
		user, err := reg.RegisterUser(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(user.Info())
		return nil

	case "register-phone":
		if len(args) != 2 {
			return errors.New("usage: register-phone <full-name> <phone>")
		}
		user, err := reg.RegisterUserByPhone(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(user.Info())
		return nil

	case "import":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: import <records-file> [export-file]")
		}
		records, err := readRecords(args[0])
		if err != nil {
			return err
		}
		users := reg.ImportUsers(records)
		fmt.Printf("imported %d of %d records\n", len(users), len(records))
		if len(args) == 2 {
			out := strings.Join(reg.ExportUsers(), "\n") + "\n"
			if err := os.WriteFile(args[1], []byte(out), 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
		}
		return nil

	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <records-file> <login> <password>")
		}
		records, err := readRecords(args[0])
		if err != nil {
			return err
		}
		reg.ImportUsers(records)
		info, ok := reg.LoginUser(args[1], args[2])
		if !ok {
			fmt.Println("login failed")
			return nil
		}
		fmt.Println(info)
		return nil

	case "request-code":
		if len(args) != 2 {
			return errors.New("usage: request-code <records-file> <login>")
		}
		records, err := readRecords(args[0])
		if err != nil {
			return err
		}
		reg.ImportUsers(records)
		reg.RequestAccessCode(args[1])
		return nil

	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// newRegistry wires the registry from configuration.
func newRegistry(cfg *config.Config) (*registry.Registry, error) {
	hasher, err := crypto.NewHasher(cfg.Auth.Hasher)
	if err != nil {
		return nil, err
	}

	keys := crypto.KeySource{
		SaltBytes:        cfg.Auth.SaltBytes,
		AccessCodeLength: cfg.Auth.AccessCodeLength,
	}

	factory := domain.NewFactory(hasher, keys, notify.NewLogNotifier(log.Logger))

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	return registry.New(factory, log.Logger, m), nil
}

// initLogging configures the global zerolog logger from config.
func initLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if cfg.Logging.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// readRecords reads one import record per line, skipping blank lines.
func readRecords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening records file: %w", err)
	}
	defer f.Close()

	var records []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		records = append(records, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}
	return records, nil
}

func printUsage() {
	fmt.Println(`Alexander Directory Admin CLI

Usage:
  directory-admin <command> [arguments]

Commands:
  register        Register a user by email: register <full-name> <email> <password>
  register-phone  Register a user by phone: register-phone <full-name> <phone>
  import          Import users from a record file: import <records-file> [export-file]
  login           Import a record file and verify a login: login <records-file> <login> <password>
  request-code    Import a record file and reissue an access code: request-code <records-file> <login>
  version         Print version information
  help            Show this help message

Record format (one per line):
  <FullName>;<email-or-empty>;<salt><32-hex-hash>;<phone-or-empty>

Configuration is read from config.yaml (or $DIRECTORY_CONFIG) and
DIRECTORY_* environment variables.`)
}
