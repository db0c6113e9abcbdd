package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"webhookd/internal/config"
	"webhookd/internal/daemon"
	"webhookd/internal/dispatcher"
	"webhookd/internal/lib/setup"
	"webhookd/internal/lib/sl"
	"webhookd/internal/mailer"
	"webhookd/internal/notifier"
	"webhookd/internal/notifier/discord"
	"webhookd/internal/notifier/telegram"
	"webhookd/internal/server"
	"webhookd/internal/service"
)

var (
	foreground = flag.Bool("fg", false, "run attached to the terminal instead of daemonizing")
	configPath = flag.String("config", "configs/config.json", "path to config file")
)

func main() {
	flag.Parse()

	setup.LoadDotEnv()

	cfg, err := config.ParseConfig(*configPath)
	if err != nil {
		slog.Error("failed to parse config file", sl.Error(err))
		os.Exit(1)
	}

	setup.Logger(cfg.DebugPrint)

	if !*foreground && !daemon.InBackground() {
		pid, err := daemon.Spawn(cfg.LogDir)
		if err != nil {
			slog.Error("failed to daemonize", sl.Error(err))
			os.Exit(1)
		}
		fmt.Printf("webhookd running in background with pid %d\n", pid)
		return
	}

	database := setup.ConnectToDatabase(cfg.Database)
	defer database.Close()

	msgBroker := setup.ConnectToBroker(cfg.Broker)
	defer msgBroker.Close()

	messages := service.NewMessagesService(
		database.MessagesRepo(),
		time.Duration(cfg.Database.QueryTimeout),
	)

	var notifiers []notifier.Notifier
	if cfg.Telegram.Enable {
		tg, err := telegram.New(cfg.Telegram)
		if err != nil {
			slog.Error("failed to create telegram notifier", sl.Error(err))
			os.Exit(1)
		}
		notifiers = append(notifiers, tg)
	}
	if cfg.Discord.Enable {
		notifiers = append(notifiers, discord.New(cfg.Discord))
	}

	disp, err := dispatcher.New(msgBroker, messages, notifiers, mailer.New(cfg.Email), cfg.Retry)
	if err != nil {
		slog.Error("failed to create dispatcher", sl.Error(err))
		os.Exit(1)
	}

	srv := server.New(messages, msgBroker, cfg, cfg.Network.Address(*foreground))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return disp.Run(ctx)
	})

	g.Go(func() error {
		slog.Info("starting http server", slog.String("address", srv.Addr()))
		if err := srv.Start(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("error from webhookd", sl.Error(err))
		os.Exit(1)
	}
}
