package params

import (
	"os"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/runtime/argcheck"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadRandConfigFile reads a YAML config file and overlays its values on the
// defaults. Unknown keys are rejected.
func LoadRandConfigFile(configFileName string) (*RandConfig, error) {
	yamlFile, err := os.ReadFile(configFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read config file")
	}
	conf, err := UnmarshalRandConfig(yamlFile)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load config file %s", configFileName)
	}
	log.Debugf("Config file values: %+v", conf)
	return conf, nil
}

// UnmarshalRandConfig overlays the YAML document b on the defaults and
// validates the result.
func UnmarshalRandConfig(b []byte) (*RandConfig, error) {
	conf := DefaultRandConfig()
	if err := yaml.UnmarshalStrict(b, conf); err != nil {
		return nil, errors.Wrap(err, "could not parse yaml")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks that lengths and counts are usable.
func (c *RandConfig) Validate() error {
	switch {
	case c.MinStringLength < 0:
		return errors.Wrapf(ErrInvalidConfig, "MIN_STRING_LENGTH %d is negative", c.MinStringLength)
	case c.MaxStringLength < c.MinStringLength:
		return errors.Wrapf(ErrInvalidConfig, "MAX_STRING_LENGTH %d is lower than MIN_STRING_LENGTH %d", c.MaxStringLength, c.MinStringLength)
	case c.BytesLength < 0:
		return errors.Wrapf(ErrInvalidConfig, "BYTES_LENGTH %d is negative", c.BytesLength)
	case c.Count < 0:
		return errors.Wrapf(ErrInvalidConfig, "COUNT %d is negative", c.Count)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "WORKERS %d must be at least 1", c.Workers)
	case c.ProgressInterval < 0:
		return errors.Wrapf(ErrInvalidConfig, "PROGRESS_INTERVAL %s is negative", c.ProgressInterval)
	}
	if err := argcheck.NotBlank(c.StringComposition, "STRING_COMPOSITION"); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}
