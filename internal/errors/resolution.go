package errors

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ResolutionError is returned when a (credential, MID) pair cannot be resolved to exactly one business unit. This is
// never auto-resolved; picking a business unit silently would deploy to the wrong target.
type ResolutionError struct {
	E              error
	CredentialName string
	MID            string
	Matches        int
}

// NewResolutionError returns a new ResolutionError
func NewResolutionError(credentialName string, mid string, matches int) ResolutionError {
	return ResolutionError{
		E:              xerrors.Errorf("found %d business units matching MID %q for credential %q", matches, mid, credentialName),
		CredentialName: credentialName,
		MID:            mid,
		Matches:        matches,
	}
}

// AsResolutionError checks whether the error is a resolution error.
func AsResolutionError(err error) (ResolutionError, bool) {
	var e ResolutionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ResolutionError) Error() string {
	return e.E.Error()
}

// Description is part of the 'detailedError' interface
func (e ResolutionError) Description() string {
	if e.Matches == 0 {
		return fmt.Sprintf(
			"None of the business units stored for credential %q are mapped to MID %q.",
			e.CredentialName, e.MID,
		)
	}

	return fmt.Sprintf(
		"%d business units stored for credential %q are mapped to MID %q, so the deployment target is ambiguous.",
		e.Matches, e.CredentialName, e.MID,
	)
}

// Resolution is part of the 'detailedError' interface
func (e ResolutionError) Resolution() string {
	return "Check the 'businessUnits' section of your mcdev configuration file and make sure every MID maps to " +
		"exactly one business unit name."
}

// Type is part of the 'detailedError' interface
func (e ResolutionError) Type() string {
	return "Resolution Error"
}
