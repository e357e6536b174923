// Package descriptor decodes error descriptors from YAML or JSON documents.
//
// A descriptor is a mapping with any of the keys message, code, level,
// exitCode, errno, orphanStack, stack, parent and cause. parent and cause may
// hold a nested descriptor or a plain string. The decoded form is the
// map[string]any shape the chain constructors accept as input.
package descriptor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

const logDomain = "descriptor"

var (
	// ErrEmpty is returned for a document with no content.
	ErrEmpty = errors.New("descriptor: empty document")

	// ErrNotMapping is returned when the document (or a nested parent/cause)
	// is neither a mapping nor a string.
	ErrNotMapping = errors.New("descriptor: not a mapping")
)

// aliases maps accepted spellings onto the canonical keys.
var aliases = map[string]string{
	"msg":          "message",
	"exit_code":    "exitCode",
	"exitcode":     "exitCode",
	"orphan_stack": "orphanStack",
	"orphanstack":  "orphanStack",
}

// Load reads and decodes the descriptor at path.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.In(logDomain).With("path", path).Wrapf(err, "failed to read descriptor")
	}
	d, err := Decode(data)
	if err != nil {
		return nil, oops.In(logDomain).With("path", path).Wrap(err)
	}
	return d, nil
}

// Decode decodes a YAML or JSON descriptor. JSON documents are valid YAML.
func Decode(data []byte) (map[string]any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmpty
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, oops.In(logDomain).Wrapf(err, "failed to decode descriptor")
	}
	if raw == nil {
		return nil, ErrEmpty
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level is %T", ErrNotMapping, raw)
	}
	return canonical(m, "")
}

func canonical(m map[string]any, path string) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		key := k
		if a, ok := aliases[strings.ToLower(k)]; ok {
			key = a
		}
		switch key {
		case "parent", "cause":
			nested, err := nestedValue(v, path+key)
			if err != nil {
				return nil, err
			}
			out[key] = nested
		default:
			out[key] = v
		}
	}
	return out, nil
}

func nestedValue(v any, path string) (any, error) {
	switch t := v.(type) {
	case nil, string:
		return t, nil
	case map[string]any:
		return canonical(t, path+".")
	default:
		return nil, fmt.Errorf("%w: %s is %T", ErrNotMapping, path, v)
	}
}
