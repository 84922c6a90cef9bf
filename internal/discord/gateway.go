// Package discord binds the core to the Discord gateway via discordgo.
package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/bwmarrin/snowflake"

	"saucier/internal/command"
	"saucier/internal/model"
	"saucier/internal/router"
)

// Transport implements the outbound send/react capabilities over a discordgo
// session.
type Transport struct {
	session *discordgo.Session
}

func NewTransport(session *discordgo.Session) *Transport {
	return &Transport{session: session}
}

func (t *Transport) Send(channelID, content string) error {
	_, err := t.session.ChannelMessageSend(channelID, content)
	return err
}

func (t *Transport) React(channelID, messageID, emoji string) error {
	return t.session.MessageReactionAdd(channelID, messageID, emoji)
}

func (t *Transport) RemoveReactions(channelID, messageID, emoji string) error {
	return t.session.MessageReactionsRemoveEmoji(channelID, messageID, emoji)
}

// Gateway owns the discordgo session and feeds its events to the router and
// the command dispatcher.
type Gateway struct {
	session    *discordgo.Session
	router     *router.Router
	dispatcher *command.Dispatcher
	logger     *slog.Logger
}

func NewGateway(session *discordgo.Session, r *router.Router, d *command.Dispatcher, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		session:    session,
		router:     r,
		dispatcher: d,
		logger:     logger,
	}
}

// Open registers the handlers, sets the gateway intents, and connects.
func (g *Gateway) Open() error {
	g.session.AddHandler(g.onReady)
	g.session.AddHandler(g.onMessageCreate)

	g.session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMessageReactions

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}
	return nil
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	g.logger.Info("connected", "user", r.User.Username)
}

func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	msg := toModel(m)
	g.router.HandleMessage(msg)

	// Commands are user-issued; bot-authored messages only feed the router.
	if !m.Author.Bot {
		g.dispatcher.Dispatch(msg)
	}
}

func toModel(m *discordgo.MessageCreate) model.Message {
	// An unparsable author ID classifies as unrelated, which is the right
	// outcome for anything that is not a real account snowflake.
	authorID, err := snowflake.ParseString(m.Author.ID)
	if err != nil {
		authorID = 0
	}

	return model.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		AuthorID:  authorID,
		Content:   m.Content,
		HasEmbed:  len(m.Embeds) > 0,
	}
}
