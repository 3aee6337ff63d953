package btcswap

import "github.com/btcsuite/btclog"

// log is the package-level logger used throughout btcswap, following the
// same UseLogger convention lnd uses in every subsystem package.
var log = btclog.Disabled

// UseLogger sets the package-level logger used by btcswap. Should be
// called before any other btcswap function.
func UseLogger(logger btclog.Logger) {
	log = logger
}
