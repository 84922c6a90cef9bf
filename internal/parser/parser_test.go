package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"saucier/internal/parser"
)

var _ = Describe("Author", func() {
	It("extracts the author from a well-formed lookup sentence", func() {
		author, err := parser.Author("Looking up Foo by Bar.")
		Expect(err).NotTo(HaveOccurred())
		Expect(author).To(Equal("Bar"))
	})

	It("keeps spaces inside the author field", func() {
		author, err := parser.Author("Looking up Some Title by Jane Doe.")
		Expect(err).NotTo(HaveOccurred())
		Expect(author).To(Equal("Jane Doe"))
	})

	It("allows the separator phrase inside the target", func() {
		// First-occurrence matching: the first " by " ends the target.
		author, err := parser.Author("Looking up Death by Chocolate by Baker.")
		Expect(err).NotTo(HaveOccurred())
		Expect(author).To(Equal("Chocolate by Baker"))
	})

	It("truncates the author at the first dot", func() {
		author, err := parser.Author("Looking up Widget by J. Smith.")
		Expect(err).NotTo(HaveOccurred())
		Expect(author).To(Equal("J"))
	})

	DescribeTable("rejects text that does not match the template",
		func(input string) {
			_, err := parser.Author(input)
			Expect(err).To(MatchError(parser.ErrNoAuthor))
		},
		Entry("empty string", ""),
		Entry("unrelated text", "the quick brown fox"),
		Entry("leading phrase not at the start", "re: Looking up Foo by Bar."),
		Entry("missing separator", "Looking up Foo and Bar."),
		Entry("missing terminator", "Looking up Foo by Bar"),
		Entry("empty target", "Looking up  by Bar."),
		Entry("empty author", "Looking up Foo by ."),
		Entry("leading phrase alone", "Looking up "),
	)
})
