package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.dw1.io/safemath"

	"go.dw1.io/xxhash"
	"go.dw1.io/xxhash/file"
)

type command struct {
	cli

	stdin  io.Reader
	stdout io.Writer
	logger log.Logger
}

// algorithm describes one hash width.
type algorithm struct {
	bits     int
	hexWidth int
	sumFile  func(name string) (uint64, error)
	sumRead  func(r io.Reader) (uint64, error)
}

func (c *command) algorithm(bits int) (algorithm, error) {
	switch bits {
	case 32:
		seed, err := safemath.ConvertAny[uint32](c.Seed)
		if err != nil {
			return algorithm{}, errors.Wrapf(err, "seed %d does not fit XXH32", c.Seed)
		}

		return algorithm{
			bits:     32,
			hexWidth: 2 * xxhash.Size32,
			sumFile: func(name string) (uint64, error) {
				sum, err := file.Sum32(name, seed)
				return uint64(sum), err
			},
			sumRead: func(r io.Reader) (uint64, error) {
				sum, err := xxhash.SumReader32(r, seed)
				return uint64(sum), err
			},
		}, nil
	case 64:
		return algorithm{
			bits:     64,
			hexWidth: 2 * xxhash.Size64,
			sumFile: func(name string) (uint64, error) {
				return file.Sum64(name, c.Seed)
			},
			sumRead: func(r io.Reader) (uint64, error) {
				return xxhash.SumReader64(r, c.Seed)
			},
		}, nil
	default:
		return algorithm{}, errors.Errorf("unsupported hash width %d", bits)
	}
}

func (a algorithm) sum(c *command, name string) (uint64, error) {
	if name == stdinName {
		return a.sumRead(c.stdin)
	}

	return a.sumFile(name)
}

func (a algorithm) format(sum uint64) string {
	return fmt.Sprintf("%0*x", a.hexWidth, sum)
}

// run executes the command and returns the process exit code.
func (c *command) run() int {
	bits, err := strconv.Atoi(c.Algo)
	if err != nil {
		level.Error(c.logger).Log("msg", "invalid hash width", "algo", c.Algo, "err", err)
		return 1
	}

	if c.Check {
		return c.check()
	}

	algo, err := c.algorithm(bits)
	if err != nil {
		level.Error(c.logger).Log("msg", "invalid configuration", "err", err)
		return 1
	}

	code := 0
	for _, name := range c.Files {
		sum, err := algo.sum(c, name)
		if err != nil {
			level.Error(c.logger).Log("msg", "failed to hash", "file", name, "err", err)
			code = 1
			continue
		}

		level.Debug(c.logger).Log("msg", "hashed", "file", name, "bits", algo.bits)
		fmt.Fprintf(c.stdout, "%s  %s\n", algo.format(sum), name)
	}

	return code
}

// checkStats counts the outcome of verifying checksum lists.
type checkStats struct {
	ok, failed, unreadable, malformed int
}

func (c *command) check() int {
	var stats checkStats

	for _, name := range c.Files {
		if err := c.checkList(name, &stats); err != nil {
			level.Error(c.logger).Log("msg", "failed to read checksum list", "file", name, "err", err)
			stats.unreadable++
		}
	}

	if stats.malformed > 0 {
		level.Warn(c.logger).Log("msg", "improperly formatted checksum lines", "count", stats.malformed)
	}
	if stats.failed > 0 {
		level.Warn(c.logger).Log("msg", "computed checksums did not match", "count", stats.failed)
	}
	level.Info(c.logger).Log("msg", "check finished", "ok", stats.ok, "failed", stats.failed,
		"unreadable", stats.unreadable, "malformed", stats.malformed)

	if stats.failed > 0 || stats.unreadable > 0 || stats.ok == 0 {
		return 1
	}

	return 0
}

func (c *command) checkList(name string, stats *checkStats) error {
	var r io.Reader = c.stdin
	if name != stdinName {
		f, err := file.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}

		want, target, bits, err := parseLine(text)
		if err != nil {
			level.Debug(c.logger).Log("msg", "skipping line", "list", name, "line", line, "err", err)
			stats.malformed++
			continue
		}

		algo, err := c.algorithm(bits)
		if err != nil {
			return err
		}

		got, err := algo.sum(c, target)
		switch {
		case err != nil:
			level.Error(c.logger).Log("msg", "failed to hash", "file", target, "err", err)
			fmt.Fprintf(c.stdout, "%s: FAILED open or read\n", target)
			stats.unreadable++
		case got != want:
			fmt.Fprintf(c.stdout, "%s: FAILED\n", target)
			stats.failed++
		default:
			if !c.Quiet {
				fmt.Fprintf(c.stdout, "%s: OK\n", target)
			}
			stats.ok++
		}
	}

	return errors.Wrap(sc.Err(), "scan")
}

// parseLine splits "<hex>  <name>" and infers the width from the hex length.
func parseLine(line string) (sum uint64, name string, bits int, err error) {
	hexSum, name, ok := strings.Cut(line, "  ")
	if !ok || name == "" {
		return 0, "", 0, errors.New("missing separator")
	}

	switch len(hexSum) {
	case 2 * xxhash.Size32:
		bits = 32
	case 2 * xxhash.Size64:
		bits = 64
	default:
		return 0, "", 0, errors.Errorf("unexpected checksum length %d", len(hexSum))
	}

	sum, err = strconv.ParseUint(hexSum, 16, 64)
	if err != nil {
		return 0, "", 0, errors.Wrap(err, "checksum")
	}

	return sum, name, bits, nil
}
