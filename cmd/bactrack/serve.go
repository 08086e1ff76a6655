package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/bactrack/internal/common/log"
	"github.com/KirkDiggler/bactrack/internal/handlers/api"
	"github.com/KirkDiggler/bactrack/internal/handlers/discord"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when a token is configured, the Discord bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}
}

func serve(parent context.Context, opts *rootOptions) error {
	cfg := opts.cfg
	logger := log.WithComponent("serve")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	svc, err := newService(client, cfg)
	if err != nil {
		return err
	}

	if cfg.CatalogFile != "" {
		imported, err := importCatalogFile(ctx, svc, cfg.CatalogFile)
		if err != nil {
			return err
		}
		logger.Info().Str("file", cfg.CatalogFile).Int("drinks", imported).Msg("catalog loaded")
	}

	handler, err := api.New(&api.Config{
		Service:   svc,
		RateLimit: cfg.HTTPRateLimit,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			Service:       svc,
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
	} else {
		logger.Info().Msg("DISCORD_TOKEN not set, Discord bot disabled")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case runErr = <-serverErr:
		if runErr != nil {
			logger.Error().Err(runErr).Msg("HTTP server failed")
		}
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			logger.Warn().Err(err).Msg("error stopping bot")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return runErr
}
