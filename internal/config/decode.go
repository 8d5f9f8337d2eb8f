package config

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// maxConfigSize bounds the config files read from disk.
const maxConfigSize = 256 << 10

// decodeStrict parses a YAML document into cfg and rejects unknown keys, so
// a misspelled option fails loudly. A blank document leaves cfg unchanged.
func decodeStrict(data []byte, cfg *Config) error {
	if len(data) > maxConfigSize {
		return fmt.Errorf("%d bytes exceeds the %d byte limit", len(data), maxConfigSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yaml.UnmarshalWithOptions(data, cfg, yaml.Strict())
}
