package cli

import (
	"context"
	"strings"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// branchMarker prefixes an mcdev version that refers to a branch of the mcdev repository instead of a published npm
// version.
const branchMarker = "#"

// mcdevRepository is the npm-installable source repository of the mcdev CLI.
const mcdevRepository = "accenture/sfmc-devtools"

// InstallMcdev installs the configured mcdev version into the job workspace. With InstallMcdevLocally disabled the
// container image is expected to provide mcdev and the installation is skipped.
func (s Service) InstallMcdev(ctx context.Context) error {
	version := s.Config.McdevVersion
	if version == "" {
		return errors.NewInputError("mcdev version is required for installation")
	}

	packageRef := "mcdev@" + version
	if strings.HasPrefix(version, branchMarker) {
		packageRef = mcdevRepository + version
	}

	if !s.Config.InstallMcdevLocally {
		s.Log.Progressf("Using mcdev from the container image; local installation is disabled")
		return nil
	}

	return s.ExecCommand(ctx,
		"Initializing mcdev: "+packageRef,
		Command{"npm install " + packageRef},
		"Completed installing mcdev",
	)
}
