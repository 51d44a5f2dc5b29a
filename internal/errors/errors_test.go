package errors_test

import (
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("ConfigurationError", func() {
		It("behaves like an error", func() {
			err := errors.NewConfigurationError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			configErr, ok := errors.AsConfigurationError(err)

			Expect(ok).To(Equal(true))
			Expect(configErr).To(Equal(err))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})

	Describe("ExecutionError", func() {
		It("behaves like an error", func() {
			err := errors.NewExecutionError(2, "some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			executionErr, ok := errors.AsExecutionError(err)

			Expect(ok).To(Equal(true))
			Expect(executionErr).To(Equal(err))
			Expect(executionErr.Code).To(Equal(2))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})

	Describe("InputError", func() {
		It("behaves like an error", func() {
			err := errors.NewInputError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			inputErr, ok := errors.AsInputError(err)

			Expect(ok).To(Equal(true))
			Expect(inputErr).To(Equal(err))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})

	Describe("ResolutionError", func() {
		It("behaves like an error", func() {
			err := errors.NewResolutionError("Production", "12345", 2)
			Expect(err.Error()).To(Equal(`found 2 business units matching MID "12345" for credential "Production"`))

			resolutionErr, ok := errors.AsResolutionError(err)

			Expect(ok).To(Equal(true))
			Expect(resolutionErr).To(Equal(err))
			Expect(resolutionErr.Matches).To(Equal(2))

			inputErr, ok := errors.AsInputError(err)

			Expect(ok).To(Equal(false))
			Expect(inputErr.E).To(BeNil())
		})

		It("describes zero matches differently from multiple matches", func() {
			none := errors.NewResolutionError("Production", "12345", 0)
			Expect(none.Description()).To(ContainSubstring("None of the business units"))

			many := errors.NewResolutionError("Production", "12345", 3)
			Expect(many.Description()).To(ContainSubstring("ambiguous"))
		})
	})

	Describe("SystemError", func() {
		It("behaves like an error", func() {
			err := errors.NewSystemError("some error %v", "some value")
			Expect(err.Error()).To(Equal("some error some value"))

			systemErr, ok := errors.AsSystemError(err)

			Expect(ok).To(Equal(true))
			Expect(systemErr).To(Equal(err))

			internalErr, ok := errors.AsInternalError(err)

			Expect(ok).To(Equal(false))
			Expect(internalErr.E).To(BeNil())
		})
	})
})
