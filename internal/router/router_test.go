package router_test

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"saucier/internal/model"
	"saucier/internal/registry"
	"saucier/internal/router"
	"saucier/internal/state"
)

const (
	statusPrimaryID   snowflake.ID = 607661949194469376
	statusSecondaryID snowflake.ID = 640402425395675178
	confirmationID    snowflake.ID = 661826254215053324
	unrelatedID       snowflake.ID = 42
)

var _ = Describe("Router", func() {
	var (
		store  *state.Store
		sender *mockSender
		r      *router.Router
	)

	BeforeEach(func() {
		store = state.NewStore()
		sender = &mockSender{}
		r = router.New(registry.Default(), store, sender, 50*time.Millisecond, nil)
	})

	message := func(author snowflake.ID, content string) model.Message {
		return model.Message{
			ID:        "msg-1",
			ChannelID: "chan-1",
			AuthorID:  author,
			Content:   content,
		}
	}

	Describe("status messages", func() {
		It("stores a trigger line as the last status", func() {
			r.HandleMessage(message(statusPrimaryID, ".lc 5"))
			Expect(store.LastStatus()).To(Equal(".lc 5"))
			Expect(sender.sends()).To(BeEmpty())
		})

		It("tracks an embed-bearing message", func() {
			msg := message(statusPrimaryID, "queue snapshot")
			msg.HasEmbed = true
			r.HandleMessage(msg)

			ref, ok := store.Tracked()
			Expect(ok).To(BeTrue())
			Expect(ref).To(Equal(model.MessageRef{ChannelID: "chan-1", MessageID: "msg-1"}))
		})

		It("never tracks a trigger line, even with an embed", func() {
			msg := message(statusPrimaryID, ".lc 5")
			msg.HasEmbed = true
			r.HandleMessage(msg)

			Expect(store.LastStatus()).To(Equal(".lc 5"))
			_, ok := store.Tracked()
			Expect(ok).To(BeFalse())
		})

		It("ignores plain status chatter", func() {
			r.HandleMessage(message(statusPrimaryID, "hello"))
			Expect(store.LastStatus()).To(BeEmpty())
			_, ok := store.Tracked()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("confirmation messages", func() {
		It("translates a lookup sentence after the settle delay", func() {
			r.HandleMessage(message(confirmationID, "Looking up Foo by Bar."))

			Expect(sender.sends()).To(BeEmpty())
			Eventually(sender.sends).Should(ConsistOf(
				sentMessage{channelID: "chan-1", content: "sauce -qa Bar"},
			))
		})

		It("answers a malformed lookup immediately", func() {
			r.HandleMessage(message(confirmationID, "Looking up Foo by Bar"))

			Expect(sender.sends()).To(ConsistOf(
				sentMessage{channelID: "chan-1", content: "Could not find author"},
			))
		})

		It("ignores confirmation chatter without the lookup lead", func() {
			r.HandleMessage(message(confirmationID, "done."))
			Consistently(sender.sends).Should(BeEmpty())
		})

		It("lets the status branch shadow the overlapping identity", func() {
			// The secondary status account is also a confirmation source,
			// but its messages hit the status branch first.
			r.HandleMessage(message(statusSecondaryID, "Looking up Foo by Bar."))

			Consistently(sender.sends).Should(BeEmpty())
			Expect(store.LastStatus()).To(BeEmpty())
		})

		It("swallows send failures", func() {
			sender.sendErr = errors.New("boom")
			r.HandleMessage(message(confirmationID, "Looking up Foo by Bar"))
			Expect(sender.sends()).To(HaveLen(1))
		})
	})

	It("ignores messages from unrelated authors", func() {
		r.HandleMessage(message(unrelatedID, ".lc 5"))
		r.HandleMessage(message(unrelatedID, "Looking up Foo by Bar."))

		Expect(store.LastStatus()).To(BeEmpty())
		Consistently(sender.sends).Should(BeEmpty())
	})
})
