// Package ledgerctl implements the maintenance commands a host scheduler
// runs against the ledger database.
package ledgerctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/flagx"
	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server"
	"github.com/dmitrijs2005/spakiosk/internal/server/auth"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
)

const usage = `usage: ledgerctl <command> [flags]

commands:
  migrate                          apply database migrations
  cleanup-tokens                   delete expired and old used tokens
  expire-redemptions               reject pending redemptions older than 30 days
  reset-counters                   delete elapsed rate-limit counters
  export-events [-from T] [-to T]  upload audit events to object storage
  admin-token -actor NAME          print an admin token for NAME

T is RFC 3339 or YYYY-MM-DD; the export range defaults to the last 24 hours.
Configuration flags (-d, -r, -c ...) are shared with the server.`

var errUsage = errors.New("invalid usage")

// openStorage is swapped in tests.
var openStorage = server.OpenStorage

type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	now    func() time.Time
}

func NewApp(c *config.Config, out io.Writer) *App {
	return &App{
		config: c,
		logger: logging.NewJSONLogger(os.Stderr, c.LogLevel).With("module", "ledgerctl"),
		out:    out,
		now:    time.Now,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "migrate":
		return a.withStorage(ctx, func(st *server.Storage, _ *server.Services) error {
			if err := st.Manager.RunMigrations(ctx, st.DB); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "migrations applied")
			return nil
		})
	case "cleanup-tokens":
		return a.withStorage(ctx, func(_ *server.Storage, svc *server.Services) error {
			n, err := svc.Coupons.CleanupExpiredTokens(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted %d tokens\n", n)
			return nil
		})
	case "expire-redemptions":
		return a.withStorage(ctx, func(_ *server.Storage, svc *server.Services) error {
			n, err := svc.Coupons.ExpirePendingRedemptions(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "expired %d redemptions\n", n)
			return nil
		})
	case "reset-counters":
		return a.withStorage(ctx, func(_ *server.Storage, svc *server.Services) error {
			n, err := svc.Limits.ResetExpiredCounters(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted %d counters\n", n)
			return nil
		})
	case "export-events":
		from, to, err := a.parseRange(rest)
		if err != nil {
			return err
		}
		return a.withStorage(ctx, func(_ *server.Storage, svc *server.Services) error {
			res, err := svc.Archiver.Export(ctx, from, to)
			if err != nil {
				return err
			}
			if res.Count == 0 {
				fmt.Fprintln(a.out, "no events to export")
				return nil
			}
			fmt.Fprintf(a.out, "exported %d events to s3://%s/%s\n", res.Count, res.Bucket, res.Key)
			return nil
		})
	case "admin-token":
		return a.adminToken(rest)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		fmt.Fprintln(a.out, usage)
		return errUsage
	}
}

func (a *App) withStorage(ctx context.Context, fn func(*server.Storage, *server.Services) error) error {
	st, err := openStorage(ctx, a.config)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			a.logger.Warn(ctx, "error closing storage", "error", err)
		}
	}()

	svc, err := server.NewServices(st.DB, st.Manager, a.config, nil, a.logger)
	if err != nil {
		return err
	}
	return fn(st, svc)
}

func (a *App) adminToken(args []string) error {
	fs := flag.NewFlagSet("admin-token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	actor := fs.String("actor", "", "staff member the token acts for")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-actor"})); err != nil {
		return err
	}
	if strings.TrimSpace(*actor) == "" {
		return fmt.Errorf("%w: -actor is required", errUsage)
	}

	tok, err := auth.GenerateAdminToken(*actor, []byte(a.config.SecretKey), a.config.AdminTokenValidityDuration)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tok)
	return nil
}

func (a *App) parseRange(args []string) (time.Time, time.Time, error) {
	fs := flag.NewFlagSet("export-events", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fromArg := fs.String("from", "", "range start")
	toArg := fs.String("to", "", "range end")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-from", "-to"})); err != nil {
		return time.Time{}, time.Time{}, err
	}

	to := a.now()
	if *toArg != "" {
		t, err := parseTime(*toArg)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t
	}
	from := to.Add(-24 * time.Hour)
	if *fromArg != "" {
		t, err := parseTime(*fromArg)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	return from, to, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time %q", errUsage, s)
	}
	return t, nil
}
