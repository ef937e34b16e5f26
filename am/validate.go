package am

import (
	"strings"

	"github.com/teranos/gircheck/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Indent < 0 {
		return errors.Newf("output.indent must be >= 0, got %d", c.Output.Indent)
	}

	// 0 = one worker per CPU
	if c.Generate.Workers < 0 {
		return errors.Newf("generate.workers must be >= 0, got %d", c.Generate.Workers)
	}

	switch strings.ToLower(c.Generate.Format) {
	case "", "typeinfo", "propertyinfo", "signalinfo":
	default:
		return errors.Newf("generate.format must be typeinfo, propertyinfo or signalinfo, got %q", c.Generate.Format)
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
