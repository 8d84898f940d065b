package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/insighteer/relaybot/internal/bus"
	"github.com/insighteer/relaybot/internal/channel"
	"github.com/insighteer/relaybot/internal/cli"
	"github.com/insighteer/relaybot/internal/config"
	"github.com/insighteer/relaybot/internal/cron"
	"github.com/insighteer/relaybot/internal/logging"
	"github.com/insighteer/relaybot/internal/relay"
	"github.com/insighteer/relaybot/internal/store"
	"github.com/insighteer/relaybot/internal/telemetry"
)

const dailyJobID = "daily_motivation"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		cmdRun()
	case "status":
		cmdStatus()
	case "onboard":
		cli.RunOnboard()
	case "version", "--version", "-v":
		fmt.Println(cli.TitleStyle.Render(
			fmt.Sprintf("  %s relaybot v%s", cli.Logo, cli.Version),
		))
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	dim := cli.DimStyle.Render
	fmt.Println()
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("  %s relaybot", cli.Logo)) + dim(" — Telegram user↔operator relay"))
	fmt.Println()
	fmt.Println("  " + cli.BoldStyle.Render("Usage"))
	fmt.Println()
	fmt.Printf("    relaybot %-10s %s\n", "run", dim("Start the relay"))
	fmt.Printf("    relaybot %-10s %s\n", "status", dim("Show configuration"))
	fmt.Printf("    relaybot %-10s %s\n", "onboard", dim("Write .env credentials"))
	fmt.Printf("    relaybot %-10s %s\n", "version", dim("Show version"))
	fmt.Println()
}

// --- run command ---

func cmdRun() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	telemetry.Init()

	queue := bus.NewQueue()
	correlations := store.New()

	telegram, err := channel.NewTelegram(cfg.BotToken, queue, cfg.PollTimeoutS)
	if err != nil {
		slog.Error("telegram startup failed", "err", err)
		os.Exit(1)
	}

	router := relay.NewRouter(correlations, telegram, cfg.AdminChatID)

	scheduler := cron.NewService(0)
	err = scheduler.Register(&cron.Job{
		ID:   dailyJobID,
		Expr: cfg.DailyCron,
		TZ:   cfg.DailyTZ,
		Run:  relay.DailyMotivation(telegram, cfg.AdminChatID, relay.MotivationalPhrases),
	})
	if err != nil {
		slog.Error("scheduler setup failed", "err", err)
		os.Exit(1)
	}

	stopMetrics := telemetry.StartServer(cfg.MetricsAddr)

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("  %s relaybot", cli.Logo)))
	fmt.Println()
	fmt.Println("  " + cli.OkStyle.Render("✓") + " Telegram @" + telegram.Username())
	fmt.Println("  " + cli.DimStyle.Render("Press Ctrl+C to stop"))
	fmt.Println()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go router.Run(ctx, queue)
	go scheduler.Run(ctx)
	go func() {
		if err := telegram.Start(ctx); err != nil && ctx.Err() == nil {
			slog.Error("telegram channel error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	fmt.Println("\n  Shutting down...")

	if err := telegram.Stop(); err != nil {
		slog.Warn("telegram stop failed", "err", err)
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := stopMetrics(shutdownCtx); err != nil {
		slog.Warn("metrics shutdown failed", "err", err)
	}
}

// --- status command ---

func cmdStatus() {
	cfg, err := config.Load()
	cli.RunStatus(cfg, err)
}
