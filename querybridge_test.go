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

package querybridge_test

import (
	"strings"
	"testing"

	"github.com/abishekaditya/QueryBridge"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestQueryBridge(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "QueryBridge Compiler Suite")
}

var _ = Describe("Compile", func() {

	It("compiles a simple root scalar selection", func() {
		schema := `type Project { tagline: String! } type Query { project: Project }`
		query := `{ project { tagline } }`

		out, err := querybridge.Compile(schema, query, false)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).To(ContainSubstring("project_tagline_result(PROJECT_1, TAGLINE_2) :- tagline_ext(PROJECT_1, TAGLINE_2)."))
		Expect(out).To(ContainSubstring("ans(PROJECT_TAGLINE) :- project_ext(PROJECT_1), project_result(ROOT), project_tagline_result(PROJECT_1, PROJECT_TAGLINE)."))
	})

	It("emits an exact-match filter goal for a root lookup argument", func() {
		schema := `type Project { tagline: String! } type Query { project(name: String): Project }`
		query := `{ project(name: "GraphQL") { tagline } }`

		out, err := querybridge.Compile(schema, query, false)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).To(ContainSubstring(`name_ext(ROOT, "GraphQL")`))
		Expect(out).To(ContainSubstring("project_result(ROOT) :- project_ext(ROOT)"))
	})

	It("prepends a magic predicate and seeds demand when enabled", func() {
		schema := `type Project { tagline: String! } type Query { project(name: String): Project }`
		query := `{ project(name: "GraphQL") { tagline } }`

		out, err := querybridge.Compile(schema, query, true)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).To(ContainSubstring(`demand_project_B("GraphQL").`))
		Expect(out).To(ContainSubstring(`m_project_B(ROOT) :- demand_project_B("GraphQL").`))
		Expect(out).To(ContainSubstring("project_result(ROOT) :- m_project_B(ROOT), project_ext(ROOT)"))
	})

	It("treats a range/boolean-filtered collection as a filtered collection", func() {
		schema := `type User { name: String! age: Int! } type Query { users(minAge: Int, maxAge: Int): [User] }`
		query := `{ users(minAge: 18, maxAge: 65) { name } }`

		out, err := querybridge.Compile(schema, query, false)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).To(ContainSubstring("user_ext(ROOT, USER_ID)"))
		Expect(out).To(ContainSubstring("age_ext(USER_ID, AGE_USER_ID)"))
		Expect(out).To(ContainSubstring("AGE_USER_ID @>= 18"))
		Expect(out).To(ContainSubstring("AGE_USER_ID @=< 65"))
		Expect(out).To(ContainSubstring("user_ext(ROOT, USER_ID)"))
		Expect(out).To(ContainSubstring("USER_1 = USER_ID"))
	})

	It("propagates demand from a bound root to its nested fields", func() {
		schema := `type User { friends: [User] name: String! } type Query { user(id: String): User }`
		query := `{ user(id: "u1") { friends { name } } }`

		out, err := querybridge.Compile(schema, query, true)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).To(ContainSubstring("m_user_B(ROOT), user_ext(ROOT,"))
		// Every distinct rule body text appears at most once (dedup soundness).
		lines := strings.Split(out, "\n")
		seen := map[string]int{}
		for _, l := range lines {
			if strings.HasSuffix(strings.TrimSpace(l), ".") {
				seen[l]++
			}
		}
		for text, n := range seen {
			Expect(n).To(Equal(1), "rule %q should appear exactly once", text)
		}
	})

	It("inlines a named fragment's members as sibling scalar selections", func() {
		schema := `type Project { name: String! tagline: String! } type Query { project: Project }`
		query := `
			query { project { ...ProjectFields } }
			fragment ProjectFields on Project { name tagline }
		`

		out, err := querybridge.Compile(schema, query, false)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).To(ContainSubstring("project_name_result"))
		Expect(out).To(ContainSubstring("project_tagline_result"))
		Expect(out).To(ContainSubstring("ans(PROJECT_NAME, PROJECT_TAGLINE)"))
	})

	It("is deterministic across repeated compilations of the same input", func() {
		schema := `type Project { tagline: String! } type Query { project: Project }`
		query := `{ project { tagline } }`

		out1, err1 := querybridge.Compile(schema, query, false)
		Expect(err1).ShouldNot(HaveOccurred())
		out2, err2 := querybridge.Compile(schema, query, false)
		Expect(err2).ShouldNot(HaveOccurred())

		Expect(out1).To(Equal(out2))
	})

	It("fails with a QueryParseError.NoOperation when the document has no operation", func() {
		schema := `type Project { tagline: String! } type Query { project: Project }`
		query := `fragment F on Project { tagline }`

		_, err := querybridge.Compile(schema, query, false)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("NoOperation"))
	})

	It("fails with a QueryParseError.FragmentCycle when fragments spread each other", func() {
		schema := `type Project { tagline: String! } type Query { project: Project }`
		query := `
			{ project { ...A } }
			fragment A on Project { ...B }
			fragment B on Project { ...A }
		`

		_, err := querybridge.Compile(schema, query, false)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("FragmentCycle"))
	})

	It("fails with a QueryParseError.UnsupportedArgument for a variable argument", func() {
		schema := `type Project { tagline: String! } type Query { project(name: String): Project }`
		query := `{ project(name: $n) { tagline } }`

		_, err := querybridge.Compile(schema, query, false)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("UnsupportedArgument"))
	})
})
