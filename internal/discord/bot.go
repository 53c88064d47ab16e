// Package discord wires the bot's services to the Discord gateway: slash
// commands, the message XP handler and giveaway announcements.
package discord

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/exile7/ExileBot_Go/internal/awakening"
	"github.com/exile7/ExileBot_Go/internal/giveaway"
	"github.com/exile7/ExileBot_Go/internal/leveling"
	"github.com/exile7/ExileBot_Go/internal/worker"
)

// Services bundles the domain services the command handlers need.
type Services struct {
	Leveling  leveling.Service
	Giveaway  giveaway.Service
	Awakening awakening.Service
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string

	SpamChannelName     string
	LevelChannelName    string
	GiveawayManagerRole string
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	Services Services
	Worker   *worker.GiveawayWorker

	cfg Config
	rnd *rand.Rand
}

// New creates a new Discord bot
func New(cfg Config, services Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
		Services: services,
		cfg:      cfg,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// AttachWorker hands the bot the giveaway worker so command handlers can
// schedule and cancel conclusion timers.
func (b *Bot) AttachWorker(w *worker.GiveawayWorker) {
	b.Worker = w
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.reactionAdd)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.Registry != nil {
		b.Registry.Handle(s, i, b)
	}
}
