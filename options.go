package lox

import "github.com/juju/loggo"

// logger is the package-level sink used by the scanner, parser, resolver and
// evaluator to trace their progress. It is silent (loggo.WARNING and above)
// until SetDebug(true) lowers the level — see §10.1. Nothing in this package
// ever branches on log output; it is pure observability.
var logger = loggo.GetLogger("lox")

func init() {
	logger.SetLogLevel(loggo.WARNING)
}

// SetDebug toggles TRACE-level pipeline logging. Intended for the driver's
// -debug flag (§10.1, §12); library callers embedding this package can call
// it directly too.
func SetDebug(on bool) {
	if on {
		logger.SetLogLevel(loggo.TRACE)
	} else {
		logger.SetLogLevel(loggo.WARNING)
	}
}
