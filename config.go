package textfit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMarker is appended to truncated text when Config.Marker is empty.
const DefaultMarker = "…"

// Config describes a Fitter at construction time.
//
// A config file looks like:
//
//	text: "Generating Floor..."
//	marker: "…"
//	size: 14
//	font: basic
//	alignment: center
type Config struct {
	// Text is the full, untruncated text. Defaults to "".
	Text string `yaml:"text"`

	// Marker is appended to truncated text. Defaults to DefaultMarker.
	Marker string `yaml:"marker"`

	// Size is passed to the Measurer. Must not be negative; zero lets the
	// Measurer pick its default size.
	Size float64 `yaml:"size"`

	// Font identifies the font passed to the Measurer. Required.
	Font string `yaml:"font"`

	// Alignment is the label's horizontal anchor. Defaults to AlignLeft.
	Alignment Alignment `yaml:"alignment"`
}

// Params returns the measurement parameters described by c.
func (c Config) Params() Params {
	return Params{Size: c.Size, Font: c.Font}
}

// Validate checks c without applying defaults.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if !c.Alignment.Valid() {
		return invalidf("unknown alignment code %d", int(c.Alignment))
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
	return c
}

// LoadConfig decodes a YAML config from r and validates it.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, invalidf("empty config")
		}
		return Config{}, fmt.Errorf("textfit: decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

// LoadConfigFile reads and decodes the YAML config at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	return LoadConfig(f)
}
