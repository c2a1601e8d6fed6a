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
	"github.com/abishekaditya/QueryBridge/errs"
	"github.com/abishekaditya/QueryBridge/parser"
	"github.com/abishekaditya/QueryBridge/selection"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseQuery", func() {
	It("builds the selection tree in source order with path-derived variables", func() {
		roots, err := parser.ParseQuery(`{
			project {
				tagline
			}
			version
		}`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(roots).To(HaveLen(2))

		project := roots[0]
		Expect(project.Name).To(Equal("project"))
		Expect(project.ParentVar).To(Equal(selection.RootVar))
		Expect(project.ChildVar).To(Equal("PROJECT_1"))
		Expect(project.Children).To(HaveLen(1))

		tagline := project.Children[0]
		Expect(tagline.Name).To(Equal("tagline"))
		Expect(tagline.ParentVar).To(Equal(project.ChildVar))
		Expect(tagline.ChildVar).To(Equal("TAGLINE_2"))
		Expect(tagline.IsScalar()).To(BeTrue())

		version := roots[1]
		Expect(version.ParentVar).To(Equal(selection.RootVar))
		Expect(version.ChildVar).To(Equal("VERSION_3"))
	})

	It("accepts the explicit query keyword and an operation name", func() {
		roots, err := parser.ParseQuery(`query ProjectTagline { project { tagline } }`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(roots).To(HaveLen(1))
		Expect(roots[0].Name).To(Equal("project"))
	})

	It("uses the alias as the field name when one is given", func() {
		roots, err := parser.ParseQuery(`{ proj: project { tagline } }`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(roots[0].Name).To(Equal("proj"))
		Expect(roots[0].ChildVar).To(Equal("PROJ_1"))
	})

	It("stringifies literal arguments, preserving source order", func() {
		roots, err := parser.ParseQuery(
			`{ users(minAge: 18, maxScore: 9.5, active: true, role: admin, name: "Ada") { name } }`)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(roots[0].Arguments).To(Equal([]selection.Argument{
			{Name: "minAge", Literal: "18"},
			{Name: "maxScore", Literal: "9.5"},
			{Name: "active", Literal: "true"},
			{Name: "role", Literal: "admin"},
			{Name: "name", Literal: "Ada"},
		}))
		Expect(roots[0].BoundMask()).To(Equal("BBBBB"))
	})

	It("inlines a fragment spread's members at its source position", func() {
		roots, err := parser.ParseQuery(`
			{ project { name ...Rest } }
			fragment Rest on Project { tagline url }
		`)
		Expect(err).ShouldNot(HaveOccurred())

		project := roots[0]
		Expect(project.Children).To(HaveLen(3))
		Expect(project.Children[0].Name).To(Equal("name"))
		Expect(project.Children[1].Name).To(Equal("tagline"))
		Expect(project.Children[2].Name).To(Equal("url"))

		// Inlined members take path-derived variables under the spread's parent.
		Expect(project.Children[1].ParentVar).To(Equal(project.ChildVar))
	})

	It("resolves nested fragments recursively", func() {
		roots, err := parser.ParseQuery(`
			{ project { ...Outer } }
			fragment Outer on Project { name ...Inner }
			fragment Inner on Project { tagline }
		`)
		Expect(err).ShouldNot(HaveOccurred())

		project := roots[0]
		Expect(project.Children).To(HaveLen(2))
		Expect(project.Children[0].Name).To(Equal("name"))
		Expect(project.Children[1].Name).To(Equal("tagline"))
	})

	It("inlines inline fragments into the surrounding selection set", func() {
		roots, err := parser.ParseQuery(`{ project { ... on Project { tagline } } }`)
		Expect(err).ShouldNot(HaveOccurred())

		project := roots[0]
		Expect(project.Children).To(HaveLen(1))
		Expect(project.Children[0].Name).To(Equal("tagline"))
	})

	It("shares one variable across repeated selections of the same path", func() {
		roots, err := parser.ParseQuery(`
			{ project { ...A ...A } }
			fragment A on Project { tagline }
		`)
		Expect(err).ShouldNot(HaveOccurred())

		project := roots[0]
		Expect(project.Children).To(HaveLen(2))
		Expect(project.Children[0].ChildVar).To(Equal(project.Children[1].ChildVar))
	})

	It("tolerates directives by discarding them", func() {
		roots, err := parser.ParseQuery(`{ project @include(if: true) { tagline @skip(if: false) } }`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(roots[0].Children).To(HaveLen(1))
		Expect(roots[0].Arguments).To(BeEmpty())
	})

	Context("failure modes", func() {
		It("reports FragmentUndefined for a spread naming no fragment", func() {
			_, err := parser.ParseQuery(`{ project { ...Missing } }`)
			Expect(err).Should(HaveOccurred())

			cerr, ok := err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindFragmentUndefined))
			Expect(cerr.Node).To(Equal("Missing"))
		})

		It("reports FragmentCycle for mutually recursive fragments", func() {
			_, err := parser.ParseQuery(`
				{ project { ...A } }
				fragment A on Project { ...B }
				fragment B on Project { ...A }
			`)
			Expect(err).Should(HaveOccurred())

			cerr, ok := err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindFragmentCycle))
		})

		It("reports FragmentCycle for a self-spreading fragment", func() {
			_, err := parser.ParseQuery(`
				{ project { ...A } }
				fragment A on Project { ...A }
			`)
			Expect(err).Should(HaveOccurred())

			cerr, ok := err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindFragmentCycle))
		})

		It("reports UnsupportedArgument for a variable value", func() {
			_, err := parser.ParseQuery(`{ project(name: $n) { tagline } }`)
			Expect(err).Should(HaveOccurred())

			cerr, ok := err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindUnsupportedArgument))
			Expect(cerr.Node).To(Equal("name"))
		})

		It("reports UnsupportedArgument for list and object values", func() {
			_, err := parser.ParseQuery(`{ project(tags: ["a", "b"]) { tagline } }`)
			Expect(err).Should(HaveOccurred())
			cerr, ok := err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindUnsupportedArgument))

			_, err = parser.ParseQuery(`{ project(where: {name: "x"}) { tagline } }`)
			Expect(err).Should(HaveOccurred())
			cerr, ok = err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindUnsupportedArgument))
		})

		It("reports NoOperation for a document holding only fragments", func() {
			_, err := parser.ParseQuery(`fragment F on Project { tagline }`)
			Expect(err).Should(HaveOccurred())

			cerr, ok := err.(*errs.CompileError)
			Expect(ok).To(BeTrue())
			Expect(cerr.Kind).To(Equal(errs.KindNoOperation))
		})

		It("rejects an unbalanced selection set", func() {
			_, err := parser.ParseQuery(`{ project { tagline `)
			Expect(err).Should(HaveOccurred())
		})
	})

	It("uses the first operation when a document holds several", func() {
		roots, err := parser.ParseQuery(`
			query A { project { tagline } }
			query B { other { thing } }
		`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(roots).To(HaveLen(1))
		Expect(roots[0].Name).To(Equal("project"))
	})
})
