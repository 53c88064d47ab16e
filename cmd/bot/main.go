package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/awakening"
	"github.com/exile7/ExileBot_Go/internal/config"
	"github.com/exile7/ExileBot_Go/internal/discord"
	"github.com/exile7/ExileBot_Go/internal/giveaway"
	"github.com/exile7/ExileBot_Go/internal/leveling"
	"github.com/exile7/ExileBot_Go/internal/logger"
	"github.com/exile7/ExileBot_Go/internal/scheduler"
	"github.com/exile7/ExileBot_Go/internal/server"
	"github.com/exile7/ExileBot_Go/internal/storage/jsonfile"
	"github.com/exile7/ExileBot_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "exilebot",
		Environment: os.Getenv("ENVIRONMENT"),
	})

	ctx := context.Background()

	store, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to open data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	levelingSvc, err := leveling.NewService(ctx, store, cfg.XPTables, cfg.BaseXP)
	if err != nil {
		slog.Error("Failed to create leveling service", "error", err)
		os.Exit(1)
	}
	giveawaySvc := giveaway.NewService(store, cfg.GiveawayRetention)
	awakeningSvc := awakening.NewService(store)

	bot, err := discord.New(discord.Config{
		Token:               cfg.DiscordToken,
		AppID:               cfg.DiscordAppID,
		GuildID:             cfg.GuildID,
		SpamChannelName:     cfg.SpamChannelName,
		LevelChannelName:    cfg.LevelChannelName,
		GiveawayManagerRole: cfg.GiveawayManagerRole,
	}, discord.Services{
		Leveling:  levelingSvc,
		Giveaway:  giveawaySvc,
		Awakening: awakeningSvc,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	giveawayWorker := worker.NewGiveawayWorker(giveawaySvc, bot.ConcludeGiveaway)
	bot.AttachWorker(giveawayWorker)

	// Background sweep catches giveaways whose timers were lost to a restart
	// and prunes concluded records past retention.
	pool := worker.NewPool(2, 16)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.GiveawaySweepEvery, &giveawaySweepJob{service: giveawaySvc})

	httpServer := server.New(cfg.Port, store)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("Internal HTTP server failed", "error", err)
		}
	}()

	registerCommands(bot, commandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	giveawayWorker.Start()

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
	}

	slog.Info("Shutting down...")
	sched.Stop()
	pool.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := giveawayWorker.Shutdown(shutdownCtx); err != nil {
		slog.Error("Giveaway worker shutdown failed", "error", err)
	}
	if err := httpServer.Stop(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
}

// commandFactories lists every slash command the bot serves.
func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.RankCommand,
		discord.LeaderboardCommand,
		discord.LevelCostsCommand,
		discord.TempleCalcCommand,
		discord.GrimoireCalcCommand,
		discord.ExpeditionHPCommand,
		discord.AwakenCommand,
		discord.SwitchPoolCommand,
		discord.DiceCommand,
		discord.GiveawayCommand,
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info("Commands registered", "count", len(factories))
}

// giveawaySweepJob periodically concludes overdue giveaways and prunes
// concluded records past the retention window.
type giveawaySweepJob struct {
	service giveaway.Service
}

func (j *giveawaySweepJob) Process(ctx context.Context) error {
	return j.service.CheckJobs(ctx)
}
