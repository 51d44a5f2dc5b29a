package cli

import (
	"context"

	git "github.com/go-git/go-git/v5"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// CheckoutSrc fetches and checks out the given branch of the job workspace repository. The checkout itself is a
// shelled git command like every other external tool invocation in this helper; go-git is only used afterwards to
// report the resulting HEAD.
func (s Service) CheckoutSrc(ctx context.Context, branch string) error {
	if branch == "" {
		return errors.NewInputError("branch is required for checkout")
	}

	cmd := Command{
		"git fetch origin",
		"git checkout --force " + branch,
	}

	if err := s.ExecCommand(ctx, "Checking out "+branch, cmd, "Completed checking out "+branch); err != nil {
		return errors.WithStack(err)
	}

	s.logHead()

	return nil
}

// logHead reports the HEAD of the workspace repository after a checkout. Failing to inspect the repository is not
// fatal; the checkout already succeeded.
func (s Service) logHead() {
	repository, err := git.PlainOpen(".")
	if err != nil {
		s.Log.Debugf("unable to inspect repository state: %s", err)
		return
	}

	head, err := repository.Head()
	if err != nil {
		s.Log.Debugf("unable to inspect repository state: %s", err)
		return
	}

	s.Log.Debugf("HEAD is now at %s (%s)", head.Hash().String()[:7], head.Name().Short())
}
