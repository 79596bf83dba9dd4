package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"go.dw1.io/xxhash"
)

func newTestCommand(params cli, stdin string) (*command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	if params.Algo == "" {
		params.Algo = "64"
	}

	return &command{
		cli:    params,
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		logger: log.NewLogfmtLogger(&stderr),
	}, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestHashFiles(t *testing.T) {
	dir := t.TempDir()
	fox := writeFile(t, dir, "fox.txt", "The quick brown fox jumps over the lazy dog")
	empty := writeFile(t, dir, "empty.txt", "")

	cmd, stdout, _ := newTestCommand(cli{Files: []string{fox, empty}}, "")
	require.Equal(t, 0, cmd.run())
	require.Equal(t, fmt.Sprintf("0b242d361fda71bc  %s\nef46db3751d8e999  %s\n", fox, empty), stdout.String())
}

func TestHash32WithSeed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.txt", "this is a test")

	cmd, stdout, _ := newTestCommand(cli{Files: []string{path}, Algo: "32", Seed: 0xcafe}, "")
	require.Equal(t, 0, cmd.run())
	require.Equal(t, "bb4f02bc  "+path+"\n", stdout.String())
}

func TestHashStdin(t *testing.T) {
	cmd, stdout, _ := newTestCommand(cli{Files: []string{stdinName}, Algo: "32"}, "Hello World!")
	require.Equal(t, 0, cmd.run())
	require.Equal(t, "0bd69788  -\n", stdout.String())
}

func TestSeedTooWideFor32(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(cli{Files: []string{stdinName}, Algo: "32", Seed: 1 << 40}, "x")
	require.Equal(t, 1, cmd.run())
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "does not fit XXH32")
}

func TestMissingFileSetsExitCode(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.txt", "abc")
	missing := filepath.Join(dir, "missing.txt")

	cmd, stdout, stderr := newTestCommand(cli{Files: []string{missing, ok}}, "")
	require.Equal(t, 1, cmd.run())
	require.Equal(t, "44bc2cf5ad770999  "+ok+"\n", stdout.String())
	require.Contains(t, stderr.String(), "failed to hash")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "Nobody inspects the spammish repetition")
	small := writeFile(t, dir, "small.txt", "Hello World!")
	bad := writeFile(t, dir, "bad.txt", "tampered")

	list := strings.Join([]string{
		"fbcea83c8a378bf1  " + good,
		"0bd69788  " + small,
		fmt.Sprintf("%016x  %s", xxhash.Sum64String("original"), bad),
		"not a checksum line",
		"",
	}, "\n")
	listPath := writeFile(t, dir, "sums.txt", list)

	cmd, stdout, stderr := newTestCommand(cli{Files: []string{listPath}, Check: true}, "")
	require.Equal(t, 1, cmd.run())
	require.Equal(t, good+": OK\n"+small+": OK\n"+bad+": FAILED\n", stdout.String())
	require.Contains(t, stderr.String(), "did not match")
	require.Contains(t, stderr.String(), "improperly formatted")
}

func TestCheckQuietFromStdin(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "a")

	list := "d24ec4f1a98c6e5b  " + path + "\r\n550d7456  " + path + "\n"
	cmd, stdout, _ := newTestCommand(cli{Files: []string{stdinName}, Check: true, Quiet: true}, list)
	require.Equal(t, 0, cmd.run())
	require.Empty(t, stdout.String())
}

func TestCheckUnreadableTarget(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.txt")
	listPath := writeFile(t, dir, "sums.txt", "d24ec4f1a98c6e5b  "+missing+"\n")

	cmd, stdout, _ := newTestCommand(cli{Files: []string{listPath}, Check: true}, "")
	require.Equal(t, 1, cmd.run())
	require.Equal(t, missing+": FAILED open or read\n", stdout.String())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		sum     uint64
		name    string
		bits    int
		wantErr bool
	}{
		{line: "0bd69788  hello.txt", sum: 0x0bd69788, name: "hello.txt", bits: 32},
		{line: "0b242d361fda71bc  a b.txt", sum: 0x0b242d361fda71bc, name: "a b.txt", bits: 64},
		{line: "0bd69788 hello.txt", wantErr: true},
		{line: "0bd6978  hello.txt", wantErr: true},
		{line: "zzzzzzzz  hello.txt", wantErr: true},
		{line: "0bd69788  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			sum, name, bits, err := parseLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.sum, sum)
			require.Equal(t, tt.name, name)
			require.Equal(t, tt.bits, bits)
		})
	}
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, "error")
	cmd := &command{cli: cli{Algo: "64", Files: []string{stdinName}}, stdin: strings.NewReader(""), stdout: &bytes.Buffer{}, logger: logger}
	require.Equal(t, 0, cmd.run())
	require.Empty(t, buf.String())

	logger = newLogger(&buf, "debug")
	cmd.logger = logger
	cmd.stdin = strings.NewReader("")
	require.Equal(t, 0, cmd.run())
	require.Contains(t, buf.String(), "level=debug")
	require.Contains(t, buf.String(), "msg=hashed")
}
