package command_test

type sentMessage struct {
	channelID string
	content   string
}

type reactionCall struct {
	channelID string
	messageID string
	emoji     string
}

type mockTransport struct {
	sent      []sentMessage
	reacted   []reactionCall
	removed   []reactionCall
	sendErr   error
	reactErr  error
	removeErr error
}

func (m *mockTransport) Send(channelID, content string) error {
	m.sent = append(m.sent, sentMessage{channelID: channelID, content: content})
	return m.sendErr
}

func (m *mockTransport) React(channelID, messageID, emoji string) error {
	m.reacted = append(m.reacted, reactionCall{channelID: channelID, messageID: messageID, emoji: emoji})
	return m.reactErr
}

func (m *mockTransport) RemoveReactions(channelID, messageID, emoji string) error {
	m.removed = append(m.removed, reactionCall{channelID: channelID, messageID: messageID, emoji: emoji})
	return m.removeErr
}
