// Package command implements the user-facing shorthand commands: the three
// stage groups, the lc retry, and the locale reaction toggles.
package command

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"saucier/internal/model"
	"saucier/internal/state"
)

const (
	localeEN = "\U0001F1FA\U0001F1F8" // 🇺🇸
	localeJP = "\U0001F1EF\U0001F1F5" // 🇯🇵
)

// Transport is the outbound capability the dispatcher needs. All calls are
// best-effort; only argument-format errors are surfaced back to the user.
type Transport interface {
	Send(channelID, content string) error
	React(channelID, messageID, emoji string) error
	RemoveReactions(channelID, messageID, emoji string) error
}

type Dispatcher struct {
	state     *state.Store
	transport Transport
	prefix    string
	logger    *slog.Logger
}

func NewDispatcher(st *state.Store, transport Transport, prefix string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		state:     st,
		transport: transport,
		prefix:    prefix,
		logger:    logger,
	}
}

// Dispatch runs the command carried by msg, if any. Content without the
// command prefix is ignored. Matching is case sensitive.
func (d *Dispatcher) Dispatch(msg model.Message) {
	rest, ok := strings.CutPrefix(msg.Content, d.prefix)
	if !ok {
		return
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case QC.Name:
		d.stageGroup(msg, QC, fields[1:])
	case ST.Name:
		d.stageGroup(msg, ST, fields[1:])
	case LC.Name:
		d.stageGroup(msg, LC, fields[1:])
	case "en":
		d.toggleLocale(localeEN)
	case "jp":
		d.toggleLocale(localeJP)
	}
}

// stageGroup resolves the sub-command of a stage group. An unrecognized
// second token falls through to list with the token as its argument, the
// same default-command behavior the original framework had.
func (d *Dispatcher) stageGroup(msg model.Message, stage Stage, args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "move":
			d.stageCommand(msg, stage.Move, args[1:])
			return
		case "delete", "del", "delet":
			d.stageCommand(msg, stage.Delete, args[1:])
			return
		case "retry":
			if stage.Name == LC.Name {
				d.retry(msg)
				return
			}
		}
	}
	d.stageCommand(msg, stage.List, args)
}

func (d *Dispatcher) stageCommand(msg model.Message, format func(uint64) string, args []string) {
	n, err := entryID(args)
	if err != nil {
		// The one user-visible error class: a malformed numeric argument.
		d.send(msg.ChannelID, err.Error())
		return
	}
	d.send(msg.ChannelID, format(n))
}

// retry re-sends the last stored status line verbatim. An empty line is sent
// as-is; that matches the long-standing behavior.
func (d *Dispatcher) retry(msg model.Message) {
	d.send(msg.ChannelID, d.state.LastStatus())
}

// toggleLocale clears every reaction of the flag emoji on the tracked
// message, then adds one. Without a tracked message it is a silent no-op.
func (d *Dispatcher) toggleLocale(emoji string) {
	ref, ok := d.state.Tracked()
	if !ok {
		return
	}

	if err := d.transport.RemoveReactions(ref.ChannelID, ref.MessageID, emoji); err != nil {
		d.logger.Debug("clearing reactions failed", "message_id", ref.MessageID, "error", err)
	}
	if err := d.transport.React(ref.ChannelID, ref.MessageID, emoji); err != nil {
		d.logger.Debug("adding reaction failed", "message_id", ref.MessageID, "error", err)
	}
}

func (d *Dispatcher) send(channelID, content string) {
	if err := d.transport.Send(channelID, content); err != nil {
		d.logger.Debug("send failed", "channel_id", channelID, "error", err)
	}
}

// entryID parses the optional queue-entry argument, defaulting to 1.
func entryID(args []string) (uint64, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected a numeric id, got %q", args[0])
	}
	return n, nil
}
