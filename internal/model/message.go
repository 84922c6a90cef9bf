// Package model contains the plain event and reference types passed between
// the gateway, the router, and the command dispatcher.
package model

import "github.com/bwmarrin/snowflake"

// Message is the inbound chat event shape the core consumes. Discord account
// and message identifiers are snowflakes; AuthorID is kept parsed because the
// registry compares it as a 64-bit value.
type Message struct {
	ID        string
	ChannelID string
	AuthorID  snowflake.ID
	Content   string
	HasEmbed  bool
}

// MessageRef is enough of a message to react to it later.
type MessageRef struct {
	ChannelID string
	MessageID string
}
