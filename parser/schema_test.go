/**
 * Copyright (c) 2026, The QueryBridge Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package parser_test

import (
	"testing"

	"github.com/abishekaditya/QueryBridge/parser"
	"github.com/abishekaditya/QueryBridge/schema"
	"github.com/abishekaditya/QueryBridge/selection"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}

var _ = Describe("ParseSchema", func() {
	It("produces one Object per type definition, preserving field order", func() {
		doc, err := parser.ParseSchema(`
			type Project {
				name: String!
				tagline: String
				tags: [String!]!
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(doc.Definitions).To(HaveLen(1))

		def := doc.Definitions[0]
		Expect(def.Name.Value).To(Equal("Project"))
		Expect(def.Fields).To(HaveLen(3))
		Expect(def.Fields[0].Name.Value).To(Equal("name"))
		Expect(def.Fields[1].Name.Value).To(Equal("tagline"))
		Expect(def.Fields[2].Name.Value).To(Equal("tags"))
	})

	It("excludes Query, Mutation, and introspection types", func() {
		doc, err := parser.ParseSchema(`
			type Query { project: Project }
			type Mutation { createProject: Project }
			type __Schema { types: [String] }
			type Project { name: String }
		`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(doc.Definitions).To(HaveLen(1))
		Expect(doc.Definitions[0].Name.Value).To(Equal("Project"))
	})

	It("skips interface, input, enum, union, schema, and directive definitions", func() {
		doc, err := parser.ParseSchema(`
			schema { query: Query }
			interface Node { id: ID! }
			input ProjectInput { name: String }
			enum Status { ACTIVE INACTIVE }
			union Result = Project | Status
			directive @auth on FIELD_DEFINITION
			scalar DateTime
			type Project { name: String }
		`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(doc.Definitions).To(HaveLen(1))
		Expect(doc.Definitions[0].Name.Value).To(Equal("Project"))
	})

	It("translates wrapper types recursively", func() {
		doc, err := parser.ParseSchema(`type Project { tags: [String!]! }`)
		Expect(err).ShouldNot(HaveOccurred())

		types := schema.Build(doc)
		Expect(types).To(HaveLen(1))

		field := types[0].Fields[0]
		Expect(field.Type.Kind).To(Equal(schema.KindNonNull))
		Expect(field.Type.Inner.Kind).To(Equal(schema.KindList))
		Expect(field.Type.Inner.Inner.Kind).To(Equal(schema.KindNonNull))
		Expect(field.Type.Inner.Inner.Inner.Kind).To(Equal(schema.KindScalar))
		Expect(field.Type.Inner.Inner.Inner.Name).To(Equal("String"))

		Expect(field.Type.Unwrap().Kind).To(Equal(schema.KindScalar))
		Expect(field.Type.Unwrap().Name).To(Equal("String"))
	})

	It("fails to parse malformed SDL", func() {
		_, err := parser.ParseSchema(`type Project { name`)
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("ParseQuery", func() {
	It("builds a selection tree with path-derived, stable variables", func() {
		fields, err := parser.ParseQuery(`{ project { tagline } }`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields).To(HaveLen(1))

		project := fields[0]
		Expect(project.Name).To(Equal("project"))
		Expect(project.ParentVar).To(Equal(selection.RootVar))
		Expect(project.Children).To(HaveLen(1))

		tagline := project.Children[0]
		Expect(tagline.ParentVar).To(Equal(project.ChildVar))
		Expect(tagline.IsScalar()).To(BeTrue())
	})

	It("renames a field to its alias", func() {
		fields, err := parser.ParseQuery(`{ t: tagline }`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields[0].Name).To(Equal("t"))
	})

	It("extracts literal arguments as stringified (name, value) pairs", func() {
		fields, err := parser.ParseQuery(`{ project(name: "GraphQL", active: true) { tagline } }`)
		Expect(err).ShouldNot(HaveOccurred())

		args := fields[0].Arguments
		Expect(args).To(HaveLen(2))
		Expect(args[0]).To(Equal(selection.Argument{Name: "name", Literal: "GraphQL"}))
		Expect(args[1]).To(Equal(selection.Argument{Name: "active", Literal: "true"}))
	})

	It("inlines a named fragment's selections at their source position", func() {
		fields, err := parser.ParseQuery(`
			{ project { name ...Rest } }
			fragment Rest on Project { tagline }
		`)
		Expect(err).ShouldNot(HaveOccurred())

		children := fields[0].Children
		Expect(children).To(HaveLen(2))
		Expect(children[0].Name).To(Equal("name"))
		Expect(children[1].Name).To(Equal("tagline"))
	})

	It("inlines an inline fragment's selections in place", func() {
		fields, err := parser.ParseQuery(`{ project { ... on Project { name } tagline } }`)
		Expect(err).ShouldNot(HaveOccurred())

		children := fields[0].Children
		Expect(children).To(HaveLen(2))
		Expect(children[0].Name).To(Equal("name"))
		Expect(children[1].Name).To(Equal("tagline"))
	})

	It("rejects a fragment cycle", func() {
		_, err := parser.ParseQuery(`
			{ project { ...A } }
			fragment A on Project { ...B }
			fragment B on Project { ...A }
		`)
		Expect(err).Should(HaveOccurred())
	})

	It("rejects a spread naming an undefined fragment", func() {
		_, err := parser.ParseQuery(`{ project { ...Missing } }`)
		Expect(err).Should(HaveOccurred())
	})

	It("rejects a variable argument value", func() {
		_, err := parser.ParseQuery(`{ project(name: $n) { tagline } }`)
		Expect(err).Should(HaveOccurred())
	})

	It("fails when the document has no operation", func() {
		_, err := parser.ParseQuery(`fragment A on Project { tagline }`)
		Expect(err).Should(HaveOccurred())
	})
})
