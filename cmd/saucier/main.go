package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"

	"saucier/common/logger"
	"saucier/core/config"
	"saucier/internal/command"
	"saucier/internal/discord"
	internalhttp "saucier/internal/http"
	"saucier/internal/registry"
	"saucier/internal/router"
	"saucier/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg)
	slog.Info("saucier starting", "env", cfg.Env)

	reg := registry.Default()
	if cfg.BotsFile != "" {
		reg, err = registry.LoadFile(cfg.BotsFile)
		if err != nil {
			slog.Error("failed to load bots file", "error", err)
			os.Exit(1)
		}
		slog.Info("bot registry loaded", "path", cfg.BotsFile)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		slog.Error("failed to create discord session", "error", err)
		os.Exit(1)
	}

	// Verify the token up front; running without a usable identity is fatal.
	self, err := session.User("@me")
	if err != nil {
		slog.Error("failed to fetch own identity", "error", err)
		os.Exit(1)
	}
	slog.Info("authenticated", "user", self.Username)

	transport := discord.NewTransport(session)
	sessionState := state.NewStore()
	msgRouter := router.New(reg, sessionState, transport, cfg.SettleDelay(), nil)
	dispatcher := command.NewDispatcher(sessionState, transport, cfg.CommandPrefix, nil)

	gateway := discord.NewGateway(session, msgRouter, dispatcher, nil)
	if err := gateway.Open(); err != nil {
		slog.Error("failed to open gateway", "error", err)
		os.Exit(1)
	}
	slog.Info("gateway open")

	if cfg.HealthPort != "" {
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		go func() {
			healthRouter := internalhttp.NewHealthRouter()
			slog.Info("health server starting", "port", cfg.HealthPort)
			if err := healthRouter.Run(":" + cfg.HealthPort); err != nil {
				slog.Error("health server error", "error", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")
	if err := gateway.Close(); err != nil {
		slog.Error("gateway close error", "error", err)
	}
	slog.Info("shutdown complete")
}
