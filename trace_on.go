//go:build ber_debug

package ber

import (
	"fmt"
	"os"
)

// EnvDebugVar is the environment variable checked at startup to enable
// decode tracing, following the build-tag-gated debug convention seen in
// github.com/JesseCoretta/go-asn1plus's trc_on.go/trc_off.go.
// Tracing is compiled out entirely unless the binary is built with the
// ber_debug tag, so it costs nothing in ordinary builds.
const EnvDebugVar = "BER_DEBUG"

var traceEnabled = os.Getenv(EnvDebugVar) != ""

// trace writes one line to stderr describing an engine dispatch decision,
// when BER_DEBUG is set in the environment.
func trace(tag Tag, event string) {
	if !traceEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "ber: %-28s %s\n", event, tag)
}
