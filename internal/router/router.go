// Package router handles inbound channel messages: it updates session state
// from status-bot output and translates confirmation sentences into sauce
// commands.
package router

import (
	"log/slog"
	"strings"
	"time"

	"saucier/internal/model"
	"saucier/internal/parser"
	"saucier/internal/registry"
	"saucier/internal/state"
)

const (
	statusTrigger    = ".lc"
	confirmationLead = "Looking up"
	notFoundNotice   = "Could not find author"
)

// Sender posts plain text to a channel. Sends are best-effort; the router
// logs and discards errors.
type Sender interface {
	Send(channelID, content string) error
}

type Router struct {
	registry *registry.Registry
	state    *state.Store
	sender   Sender
	settle   time.Duration
	logger   *slog.Logger
}

func New(reg *registry.Registry, st *state.Store, sender Sender, settle time.Duration, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		registry: reg,
		state:    st,
		sender:   sender,
		settle:   settle,
		logger:   logger,
	}
}

// HandleMessage processes one inbound message. Messages from unregistered
// authors are inert; nothing here returns an error.
func (r *Router) HandleMessage(msg model.Message) {
	switch {
	case r.registry.IsStatusSource(msg.AuthorID):
		r.handleStatus(msg)
	case r.registry.IsConfirmationSource(msg.AuthorID) && strings.HasPrefix(msg.Content, confirmationLead):
		r.handleConfirmation(msg)
	}
}

func (r *Router) handleStatus(msg model.Message) {
	// A trigger line is never also tracked, even if it carries an embed.
	if strings.HasPrefix(msg.Content, statusTrigger) {
		r.state.SetLastStatus(msg.Content)
		return
	}
	if msg.HasEmbed {
		r.state.SetTracked(model.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID})
		r.logger.Info("tracking status embed message", "message_id", msg.ID)
	}
}

func (r *Router) handleConfirmation(msg model.Message) {
	author, err := parser.Author(msg.Content)
	if err != nil {
		r.send(msg.ChannelID, notFoundNotice)
		return
	}

	// Give the upstream queue time to settle before issuing the command.
	// The pause runs off the handling path so other messages keep flowing.
	go func() {
		time.Sleep(r.settle)
		r.send(msg.ChannelID, "sauce -qa "+author)
	}()
}

func (r *Router) send(channelID, content string) {
	if err := r.sender.Send(channelID, content); err != nil {
		r.logger.Debug("send failed", "channel_id", channelID, "error", err)
	}
}
