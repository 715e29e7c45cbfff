package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"linkup/config"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/lifecycle"
	"linkup/internal/domain/repository"
	"linkup/internal/infra/firebase"
	logs "linkup/internal/infra/log"
	"linkup/internal/infra/notification"
	"linkup/internal/infra/persistence/firestore"
	"linkup/internal/infra/pubsub"
	"linkup/internal/usecase"
	"linkup/internal/usecase/impl"
	"linkup/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - run:   Run the port-in reminder job once
// - scan:  List the users a run would remind, without sending
// - check: Verify credentials by reading the user collection

func main() {
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	runBypass := runCmd.Bool("bypass-cooldown", false, "Ignore the 24h per-user cooldown")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "run":
		_ = runCmd.Parse(os.Args[2:])
		err = withApp(ctx, func(ctx context.Context, deps *ctlDeps) error {
			return runReminders(ctx, deps.ReminderUC, *runBypass, os.Stdout)
		})
	case "scan":
		_ = scanCmd.Parse(os.Args[2:])
		err = withApp(ctx, func(ctx context.Context, deps *ctlDeps) error {
			return scanEligible(ctx, deps.ReminderUC, os.Stdout)
		})
	case "check":
		_ = checkCmd.Parse(os.Args[2:])
		err = withApp(ctx, func(ctx context.Context, deps *ctlDeps) error {
			return checkStore(ctx, deps.UserRepo, os.Stdout)
		})
	case "help", "-h", "--help":
		printUsage()

		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`reminderctl - port-in reminder operations

Usage:
  reminderctl <command> [options]

Commands:
  run      Run the reminder job once
  scan     List eligible users without sending
  check    Verify Firestore access

Run options:
  -bypass-cooldown   Ignore the per-user cooldown (same as the manual HTTP trigger)

Configuration is read from config/config.yaml and environment variables.`)
}

type ctlDeps struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	UserRepo   repository.UserRepository
}

// withApp starts the dependency graph without any server, runs fn and stops it.
func withApp(ctx context.Context, fn func(context.Context, *ctlDeps) error) error {
	var deps ctlDeps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			util.NewClock,
			firestore.NewUserRepository,
			notification.NewFirebaseService,
			impl.NewReminderService,
		),
		firebase.Module,
		pubsub.Module,
		fx.Populate(&deps),
	)

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := fn(ctx, &deps)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}

func runReminders(ctx context.Context, reminderUC usecase.ReminderUsecase, bypassCooldown bool, w io.Writer) error {
	summary, err := reminderUC.RunPortInReminders(ctx, usecase.RunOptions{
		Trigger:        entity.TriggerCLI,
		BypassCooldown: bypassCooldown,
		RequestID:      uuid.New().String(),
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(summary))
}

func scanEligible(ctx context.Context, reminderUC usecase.ReminderUsecase, w io.Writer) error {
	decisions, err := reminderUC.ScanEligibleUsers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USER\tORDER\tTOKENS\tLAST REMINDER")
	for _, decision := range decisions {
		last := "never"
		if sent := decision.User.LastPortInReminderSent; sent != nil {
			last = sent.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", decision.User.ID, decision.OrderID, len(decision.User.FCMTokens), last)
	}
	fmt.Fprintf(tw, "\n%d eligible user(s)\n", len(decisions))

	return errors.WithStack(tw.Flush())
}

func checkStore(ctx context.Context, userRepo repository.UserRepository, w io.Writer) error {
	users, err := userRepo.ListUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "cannot read users")
	}

	withTokens := 0
	for _, user := range users {
		if user.HasTokens() {
			withTokens++
		}
	}
	fmt.Fprintf(w, "ok: %d users, %d with device tokens\n", len(users), withTokens)

	return nil
}
