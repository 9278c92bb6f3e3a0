package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// stdinMarker as the first argument asks for paths on standard input.
const stdinMarker = "-"

// maxLineBytes bounds a single path line read from standard input.
const maxLineBytes = 1 << 20

// pathInput is the list of paths to work on and where it came from.
type pathInput struct {
	paths     []string
	fromStdin bool
	// truncated is set when stdin held more paths than the limit allowed.
	truncated bool
}

// wantsStdin reports whether paths should come from standard input.
func wantsStdin(args []string) bool {
	return len(args) == 0 || args[0] == stdinMarker
}

// readPaths returns args as the path list, or reads newline separated paths
// from in when there are no args or the first one is "-". A limit of 0 reads
// everything.
func readPaths(in io.Reader, args []string, limit int) (pathInput, error) {
	if !wantsStdin(args) {
		return pathInput{paths: args}, nil
	}

	result := pathInput{fromStdin: true}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if limit > 0 && len(result.paths) == limit {
			result.truncated = true
			break
		}
		result.paths = append(result.paths, line)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read paths from stdin: %w", err)
	}
	return result, nil
}

// isInteractive reports whether in is a terminal, where waiting for a path
// list would just hang.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
