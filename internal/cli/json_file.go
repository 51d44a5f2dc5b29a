package cli

import (
	"encoding/json"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// AuthFileName is the fixed relative filename that the mcdev CLI reads its authentication credentials from.
const AuthFileName = ".mcdev-auth.json"

// SaveJSONFile serializes doc to JSON and writes it to filePath, overwriting any existing file. When beautify is set,
// the document is pretty-printed with 4-space indentation; otherwise it is written as a single compact line.
func (s Service) SaveJSONFile(filePath string, doc any, beautify bool) error {
	var data []byte
	var err error

	if beautify {
		data, err = json.MarshalIndent(doc, "", "    ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return errors.NewSystemError("unable to serialize document for %q: %s", filePath, err)
	}

	if err := s.FileSystem.WriteFile(filePath, data, 0o644); err != nil {
		return errors.NewSystemError("unable to write %q: %s", filePath, err)
	}

	return nil
}

// ProvideCredentials writes the credentials document that the mcdev CLI uses for authentication.
func (s Service) ProvideCredentials(doc any) error {
	s.Log.Progressf("Provide authentication")

	return s.SaveJSONFile(AuthFileName, doc, true)
}
