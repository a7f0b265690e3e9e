package matvec

import (
	"os"
	"strconv"
)

// parMinRows is the default row count below which TransformPartitioned runs
// on the calling goroutine.
var parMinRows = envInt("MATVEC_PAR_MIN_ROWS", 256)

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
