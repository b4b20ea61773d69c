package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"marketplace/internal/gateway/rest/marketplace"
	"marketplace/internal/lifecycle"
	"marketplace/internal/orderflow"
	"marketplace/internal/pkg/profile"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
)

const usage = `orderctl - marketplace order lifecycle client

Usage:
  orderctl [flags] order get <id>
  orderctl [flags] order actions <id>
  orderctl [flags] order transition <id> <status> [--tracking TRK]
  orderctl [flags] order cancel <id>
  orderctl [flags] custom get <id>
  orderctl [flags] custom actions <id>
  orderctl [flags] custom transition <id> <status> [--message M] [--final-price P] [--address A] [--notes N]
  orderctl [flags] review <order-id> --reviewee ID --overall N --communication N --timeliness N [--comment C]
  orderctl [flags] notifications [--limit N]

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	profilePath string
	timeout     time.Duration
	verbose     bool

	tracking      string
	message       string
	finalPrice    string
	address       string
	notes         string
	limit         int
	reviewee      string
	overall       int
	communication int
	timeliness    int
	comment       string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options

	flagSet := pflag.NewFlagSet("orderctl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.profilePath, "profile", "", "path to profile yaml (default $ORDERCTL_PROFILE or ~/.config/orderctl/profile.yaml)")
	flagSet.DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	flagSet.StringVar(&opts.tracking, "tracking", "", "tracking number for SHIPPED")
	flagSet.StringVar(&opts.message, "message", "", "clarification question or reply")
	flagSet.StringVar(&opts.finalPrice, "final-price", "", "final price for CONVERTED_TO_ORDER")
	flagSet.StringVar(&opts.address, "address", "", "delivery address for CONVERTED_TO_ORDER")
	flagSet.StringVar(&opts.notes, "notes", "", "notes for the created order")
	flagSet.IntVar(&opts.limit, "limit", 0, "notifications to show")
	flagSet.StringVar(&opts.reviewee, "reviewee", "", "user being reviewed")
	flagSet.IntVar(&opts.overall, "overall", 0, "overall rating 1-5")
	flagSet.IntVar(&opts.communication, "communication", 0, "communication rating 1-5")
	flagSet.IntVar(&opts.timeliness, "timeliness", 0, "timeliness rating 1-5")
	flagSet.StringVar(&opts.comment, "comment", "", "review comment")
	flagSet.Usage = func() {
		fmt.Fprint(stderr, usage)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return 2
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	profilePath := opts.profilePath
	if profilePath == "" {
		profilePath, err = profile.DefaultPath()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	p, err := profile.Load(profilePath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	pair, err := p.TokenPair()
	if err != nil {
		fmt.Fprintln(stderr, "Sign in again to continue.")
		return 1
	}

	session := marketplace.NewSession(pair)
	gateway := marketplace.New(p.BaseURL, &http.Client{Timeout: opts.timeout}, session)
	flow := orderflow.New(
		log,
		gateway,
		lifecycle.NewOrderEngine(),
		lifecycle.NewCustomOrderEngine(),
		p.UserID,
	)

	cmd := &commands{
		gateway: gateway,
		flow:    flow,
		opts:    opts,
		stdout:  stdout,
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	cmdErr := cmd.dispatch(ctx, flagSet.Args())

	// Сессия могла обновиться или сброситься во время запроса.
	p.SetTokenPair(session.Tokens())
	if err := profile.Save(profilePath, p); err != nil {
		log.With(logger.NewField("error", err)).Warn("failed to save profile")
	}

	if cmdErr != nil {
		return report(stderr, cmdErr)
	}
	return 0
}

func newLogger(verbose bool) (logger.Logger, error) {
	if !verbose {
		return zap_adapter.NewNop(), nil
	}
	log, err := zap_adapter.NewZapAdapter(
		zap_adapter.WithLevel("debug"),
		zap_adapter.WithOutput("stderr"),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// report печатает короткое сообщение для пользователя и код ошибки.
func report(stderr io.Writer, err error) int {
	var outputErr *outputError
	if errors.As(err, &outputErr) {
		fmt.Fprintf(stderr, "error: %v\n", outputErr)
		// причина отказа, если она была, печатается ниже
		if _, only := err.(*outputError); only { //nolint:errorlint // нужна именно не обернутая ошибка
			return 1
		}
	}

	var usageErr *usageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "usage: %s\n", usageErr.msg)
		return 2
	case errors.Is(err, marketplace.ErrUnauthenticated):
		fmt.Fprintln(stderr, "Sign in again to continue.")
		return 1
	case errors.Is(err, marketplace.ErrNotFound):
		fmt.Fprintln(stderr, "Not found.")
		return 1
	}

	var rejected *marketplace.RejectedError
	if errors.As(err, &rejected) && lifecycle.FromCode(rejected.Code) == nil && rejected.Message != "" {
		fmt.Fprintf(stderr, "%s (%s)\n", rejected.Message, rejected.Code)
		return 1
	}

	code := lifecycle.Code(err)
	if code == lifecycle.CodeUnknown {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "%s (%s)\n", lifecycle.Message(err, lifecycle.RoleFromError(err)), code)
	return 1
}
