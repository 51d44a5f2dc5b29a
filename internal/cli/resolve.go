package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// mcdevConfigFile is the relevant subset of the persisted mcdev configuration file.
type mcdevConfigFile struct {
	Credentials map[string]mcdevCredential `json:"credentials"`
}

type mcdevCredential struct {
	BusinessUnits map[string]any `json:"businessUnits"`
}

// ResolveBusinessUnit looks up the business unit matching the given credential name and MID in the persisted mcdev
// configuration and returns it as "credentialName/businessUnit". The file is re-read on every call.
//
// A credential that is unknown or declares no business units resolves to an empty string without an error; that is
// "no resolution available", not an ambiguity. Zero or multiple MID matches on a populated credential return a
// ResolutionError instead of silently picking a target.
func (s Service) ResolveBusinessUnit(credentialName string, mid string) (string, error) {
	if credentialName == "" {
		return "", errors.NewInputError("credential name is required to resolve a business unit")
	}

	if mid == "" {
		return "", errors.NewInputError("MID is required to resolve a business unit")
	}

	configFilePath := s.Config.ConfigFilePath
	if _, err := s.FileSystem.Stat(configFilePath); err != nil {
		return "", errors.NewConfigurationError("could not find the mcdev configuration file at %q: %s", configFilePath, err)
	}

	data, err := s.FileSystem.ReadFile(configFilePath)
	if err != nil {
		return "", errors.NewSystemError("unable to read %q: %s", configFilePath, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var configFile mcdevConfigFile
	if err := decoder.Decode(&configFile); err != nil {
		return "", errors.NewConfigurationError("unable to parse %q: %s", configFilePath, err)
	}

	credential, ok := configFile.Credentials[credentialName]
	if !ok || len(credential.BusinessUnits) == 0 {
		return "", nil
	}

	matches := make([]string, 0, 1)
	for name, storedMID := range credential.BusinessUnits {
		if midEquals(storedMID, mid) {
			matches = append(matches, name)
		}
	}

	if len(matches) != 1 {
		return "", errors.NewResolutionError(credentialName, mid, len(matches))
	}

	target := credentialName + "/" + matches[0]
	s.Log.Debugf("BU resolved to %q", target)

	return target, nil
}

// midEquals compares a stored MID against the requested one. Configuration files store MIDs both as JSON numbers and
// as strings; both compare by their literal representation.
func midEquals(stored any, mid string) bool {
	switch value := stored.(type) {
	case string:
		return value == mid
	case json.Number:
		return value.String() == mid
	default:
		return fmt.Sprint(value) == mid
	}
}
