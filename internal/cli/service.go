// Package cli holds the main business logic of this helper. It shells out to external tools (mcdev, npm, git),
// normalizes the variable payloads that Copado hands us, and resolves deployment targets from the persisted mcdev
// configuration. The terminal UI itself is handled by `cmd/mcdev-copado`.
package cli

import (
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/config"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/logging"
)

// Service is the main service of this helper. All collaborators are injected; there is no ambient state beyond the
// read-only central configuration.
type Service struct {
	Config     config.Central
	FileSystem FileSystem
	Log        logging.Logger
	TaskRunner TaskRunner
}
