package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Naturalize bool
	Convert    bool
	Diff       bool
}

var (
	d      *debug
	logger *slog.Logger
)

func init() {
	d = &debug{}
	d.Naturalize = boolEnv("UXF_DEBUG_NATURALIZE")
	d.Convert = boolEnv("UXF_DEBUG_CONVERT")
	d.Diff = boolEnv("UXF_DEBUG_DIFF")
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Naturalize() bool {
	return d.Naturalize
}
func Convert() bool {
	return d.Convert
}
func Diff() bool {
	return d.Diff
}

// Logger is the debug logger: text on stderr at debug level, without
// timestamps.
func Logger() *slog.Logger {
	return logger
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
