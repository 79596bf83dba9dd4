// Command xxhsum prints or checks XXH32/XXH64 checksums, in the output format
// of the reference xxhsum tool:
//
//	0b242d361fda71bc  fox.txt
//
// With --check, the named files are read as lists of such lines and every
// listed file is verified. The width of each listed checksum selects the
// algorithm, so 32-bit and 64-bit lines may be mixed.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const stdinName = "-"

type cli struct {
	Files    []string `arg:"" optional:"" help:"Files to hash, or checksum lists with --check. '-' reads standard input." default:"-"`
	Algo     string   `short:"H" help:"Hash width in bits (32 or 64)." enum:"32,64" default:"64"`
	Seed     uint64   `help:"Seed for the hash. Must fit in 32 bits with --algo=32." default:"0"`
	Check    bool     `short:"c" help:"Read checksum lists from the files and verify them."`
	Quiet    bool     `short:"q" help:"With --check, do not print OK for each verified file."`
	LogLevel string   `name:"log.level" help:"Log level for diagnostics on stderr." enum:"debug,info,warn,error" default:"warn"`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("xxhsum"),
		kong.Description("Print or check xxHash (XXH32/XXH64) checksums."),
	)

	cmd := &command{
		cli:    params,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		logger: newLogger(os.Stderr, params.LogLevel),
	}
	os.Exit(cmd.run())
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "caller", log.DefaultCaller)

	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowWarn()
	}

	return level.NewFilter(logger, opt)
}
