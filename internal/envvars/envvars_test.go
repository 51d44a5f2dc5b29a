package envvars_test

import (
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/envvars"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeEntries", func() {
	It("passes nil through unchanged", func() {
		entries, err := envvars.DecodeEntries(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeNil())
	})

	It("parses JSON text", func() {
		entries, err := envvars.DecodeEntries(`[{"name":"X","value":"1"}]`)

		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(Equal([]envvars.Entry{{Name: "X", Value: "1"}}))
	})

	It("accepts already decoded generic structures", func() {
		entries, err := envvars.DecodeEntries([]any{
			map[string]any{"name": "X", "value": "1"},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(Equal([]envvars.Entry{{Name: "X", Value: "1"}}))
	})

	It("accepts already typed slices", func() {
		entries, err := envvars.DecodeEntries([]envvars.Entry{{Name: "X", Value: "1"}})

		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(Equal([]envvars.Entry{{Name: "X", Value: "1"}}))
	})

	It("reports malformed JSON text as an input error", func() {
		_, err := envvars.DecodeEntries(`[{`)

		Expect(err).To(HaveOccurred())

		_, ok := errors.AsInputError(err)
		Expect(ok).To(Equal(true))
	})
})

var _ = Describe("Flatten", func() {
	It("maps names to values", func() {
		flattened := envvars.Flatten([]envvars.Entry{
			{Name: "X", Value: "1"},
			{Name: "Y", Value: "2"},
		})

		Expect(flattened).To(Equal(map[string]string{"X": "1", "Y": "2"}))
	})

	It("lets the last occurrence of a duplicate name win", func() {
		entries, err := envvars.DecodeEntries(`[{"name":"X","value":"1"},{"name":"X","value":"2"}]`)
		Expect(err).NotTo(HaveOccurred())

		Expect(envvars.Flatten(entries)).To(Equal(map[string]string{"X": "2"}))
	})

	It("passes nil through unchanged", func() {
		Expect(envvars.Flatten(nil)).To(BeNil())
	})

	It("is a pure function of its input", func() {
		entries := []envvars.Entry{{Name: "X", Value: "1"}, {Name: "Y", Value: "2"}}

		first := envvars.Flatten(entries)
		second := envvars.Flatten(entries)

		Expect(first).To(Equal(second))
		Expect(entries).To(Equal([]envvars.Entry{{Name: "X", Value: "1"}, {Name: "Y", Value: "2"}}))
	})
})

var _ = Describe("FlattenChildren", func() {
	It("maps child IDs to their flattened variables", func() {
		flattened := envvars.FlattenChildren([]envvars.ChildEntry{
			{ID: "A", EnvironmentVariables: []envvars.Entry{{Name: "X", Value: "1"}}},
		})

		Expect(flattened).To(Equal(map[string]map[string]string{"A": {"X": "1"}}))
	})

	It("passes nil through unchanged", func() {
		Expect(envvars.FlattenChildren(nil)).To(BeNil())
	})
})

var _ = Describe("FlattenProperties", func() {
	It("maps API names to values, last write wins", func() {
		flattened := envvars.FlattenProperties([]envvars.Property{
			{APIName: "mcdev_exec", Value: "retrieve"},
			{APIName: "to_branch", Value: "develop"},
			{APIName: "mcdev_exec", Value: "deploy"},
		})

		Expect(flattened).To(Equal(map[string]string{
			"mcdev_exec": "deploy",
			"to_branch":  "develop",
		}))
	})

	It("passes nil through unchanged", func() {
		Expect(envvars.FlattenProperties(nil)).To(BeNil())
	})
})

var _ = Describe("Normalize", func() {
	It("dispatches on the child suffix and mutates in place", func() {
		vars := map[string]any{
			"source":         `[{"name":"X","value":"1"}]`,
			"sourceChildren": `[{"id":"A","environmentVariables":[{"name":"Y","value":"2"}]}]`,
			"empty":          nil,
		}

		Expect(envvars.Normalize(vars)).To(Succeed())

		Expect(vars["source"]).To(Equal(map[string]string{"X": "1"}))
		Expect(vars["sourceChildren"]).To(Equal(map[string]map[string]string{"A": {"Y": "2"}}))
		Expect(vars["empty"]).To(BeNil())
	})

	It("reports the offending key on malformed payloads", func() {
		vars := map[string]any{"broken": `{{`}

		err := envvars.Normalize(vars)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`"broken"`))
	})
})
