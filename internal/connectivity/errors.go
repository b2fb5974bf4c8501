package connectivity

import "errors"

var (
	// ErrNoChecker is returned by CheckNow when the monitor was built
	// without a probe, i.e. the remote is disabled by configuration.
	ErrNoChecker = errors.New("no connectivity checker configured")

	// ErrInvalidProbeURL is returned by the HTTP checker constructor when
	// the probe address cannot be parsed.
	ErrInvalidProbeURL = errors.New("invalid connectivity probe url")
)
