// Package envvars normalizes the heterogeneous "named variable" payloads that the host platform hands to this helper.
// Payloads arrive either as decoded structures or as JSON text; both forms are converted into one canonical slice at
// the entry points below, so that the ambiguity never propagates past this package. All transforms are pure.
package envvars

import (
	"encoding/json"
	"strings"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// ChildSuffix marks keys whose value holds environment variables grouped under child records (i.e. per child
// business unit) rather than a flat list.
const ChildSuffix = "Children"

// Entry is a single named environment variable.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ChildEntry groups environment variables under a child record.
type ChildEntry struct {
	ID                   string  `json:"id"`
	EnvironmentVariables []Entry `json:"environmentVariables"`
}

// Property is a Copado property record carrying a vendor-specific API name and a value.
type Property struct {
	APIName string `json:"copado__API_Name__c"`
	Value   string `json:"copado__Value__c"`
}

// DecodeEntries converts the wire form of a flat variable list (JSON text, a decoded generic value, or an already
// typed slice) into its canonical form. Nil passes through unchanged; that is not an error.
func DecodeEntries(v any) ([]Entry, error) {
	var entries []Entry
	if err := decode(v, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// DecodeChildEntries is the grouped-record counterpart of DecodeEntries.
func DecodeChildEntries(v any) ([]ChildEntry, error) {
	var entries []ChildEntry
	if err := decode(v, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func decode(v any, target any) error {
	switch value := v.(type) {
	case nil:
		return nil
	case string:
		if err := json.Unmarshal([]byte(value), target); err != nil {
			return errors.NewInputError("unable to parse environment variables from %q: %s", value, err)
		}
	case []byte:
		if err := json.Unmarshal(value, target); err != nil {
			return errors.NewInputError("unable to parse environment variables from %q: %s", value, err)
		}
	default:
		// The payload was already decoded into generic JSON structures (or typed slices). A round-trip through
		// the encoder re-shapes it into the canonical form.
		data, err := json.Marshal(value)
		if err != nil {
			return errors.NewInputError("unexpected environment variable payload of type %T: %s", value, err)
		}

		if err := json.Unmarshal(data, target); err != nil {
			return errors.NewInputError("unexpected environment variable payload of type %T: %s", value, err)
		}
	}

	return nil
}

// Flatten maps entry names to their values. Later entries win over earlier ones with the same name. Nil input yields
// a nil map.
func Flatten(entries []Entry) map[string]string {
	if entries == nil {
		return nil
	}

	flattened := make(map[string]string, len(entries))
	for _, entry := range entries {
		flattened[entry.Name] = entry.Value
	}

	return flattened
}

// FlattenChildren maps child record IDs to the flattened form of their environment variables. The same last-write-wins
// and nil-passthrough rules as Flatten apply.
func FlattenChildren(entries []ChildEntry) map[string]map[string]string {
	if entries == nil {
		return nil
	}

	flattened := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		flattened[entry.ID] = Flatten(entry.EnvironmentVariables)
	}

	return flattened
}

// FlattenProperties maps Copado property API names to their values, last write wins.
func FlattenProperties(properties []Property) map[string]string {
	if properties == nil {
		return nil
	}

	flattened := make(map[string]string, len(properties))
	for _, property := range properties {
		flattened[property.APIName] = property.Value
	}

	return flattened
}

// Normalize replaces every variable payload in vars with its flattened form, in place. Keys ending in ChildSuffix get
// the grouped transform, all other keys the flat one. Nil values stay untouched.
func Normalize(vars map[string]any) error {
	for key, value := range vars {
		if value == nil {
			continue
		}

		if strings.HasSuffix(key, ChildSuffix) {
			entries, err := DecodeChildEntries(value)
			if err != nil {
				return errors.Wrapf(err, "unable to normalize %q", key)
			}

			vars[key] = FlattenChildren(entries)
			continue
		}

		entries, err := DecodeEntries(value)
		if err != nil {
			return errors.Wrapf(err, "unable to normalize %q", key)
		}

		vars[key] = Flatten(entries)
	}

	return nil
}
