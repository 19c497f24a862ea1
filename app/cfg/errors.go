package cfg

import "fmt"

// ConfigurationError reports options that prevent an import from starting.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		return e.Reason
	}
	return fmt.Sprintf("--%s: %s", e.Option, e.Reason)
}
