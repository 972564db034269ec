package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-accounts-service/internal/adapter"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/caarlos0/env/v11"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: accounts-client [-a address] [-t timeout] <command> [args]

commands:
  health            check service liveness
  info              print service metadata
  list              list all accounts
  get <id>          print one account
  create            create an account from a JSON body read on stdin
  update <id>       replace an account from a JSON body read on stdin
  delete <id>       delete an account
`

type clientConfig struct {
	Address string        `env:"ACCOUNTS_API_ADDRESS" envDefault:"localhost:8080"`
	Timeout time.Duration `env:"ACCOUNTS_API_TIMEOUT" envDefault:"10s"`
}

var errUsage = errors.New("invalid usage")

func main() {
	log := logger.NewLogger("accounts-client")

	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing environment")
	}

	fs := flag.NewFlagSet("accounts-client", flag.ExitOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "accounts API address")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "request timeout")
	version := fs.Bool("version", false, "print build info and exit")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	_ = fs.Parse(os.Args[1:])

	if *version {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
		return
	}

	client, err := adapter.NewHTTPAccountsClient(cfg.Address, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating accounts client")
	}

	result, err := run(context.Background(), client, fs.Args(), os.Stdin)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "%v\n\n%s", err, usage)
		os.Exit(2)
	}
	if err != nil {
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			_ = printJSON(os.Stderr, apiErr.Body)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("request failed")
	}

	if result != nil {
		if err = printJSON(os.Stdout, result); err != nil {
			log.Fatal().Err(err).Msg("error writing output")
		}
	}
}

// run executes one command and returns the value to print, if any.
func run(ctx context.Context, client adapter.AccountsClient, args []string, stdin io.Reader) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing command", errUsage)
	}

	switch cmd := args[0]; cmd {
	case "health":
		return client.Health(ctx)
	case "info":
		return client.ServiceInfo(ctx)
	case "list":
		return client.ListAccounts(ctx)
	case "get":
		id, err := parseID(args)
		if err != nil {
			return nil, err
		}
		return client.GetAccount(ctx, id)
	case "create":
		req, err := readRequest(stdin)
		if err != nil {
			return nil, err
		}
		return client.CreateAccount(ctx, req)
	case "update":
		id, err := parseID(args)
		if err != nil {
			return nil, err
		}
		req, err := readRequest(stdin)
		if err != nil {
			return nil, err
		}
		return client.UpdateAccount(ctx, id, req)
	case "delete":
		id, err := parseID(args)
		if err != nil {
			return nil, err
		}
		return nil, client.DeleteAccount(ctx, id)
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func parseID(args []string) (int64, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("%w: %s expects exactly one account id", errUsage, args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: account id %q is not a number", errUsage, args[1])
	}
	return id, nil
}

func readRequest(r io.Reader) (models.AccountRequest, error) {
	var req models.AccountRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return models.AccountRequest{}, fmt.Errorf("%w: reading account JSON from stdin: %w", errUsage, err)
	}
	return req, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
