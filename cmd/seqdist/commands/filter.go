package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqdist/internal/render"
	"github.com/Sumatoshi-tech/seqdist/pkg/levenshtein"
)

// ErrBadCandidate is returned when a candidate line is not valid UTF-8
// text. The whole iteration fails; no partial result is reported.
var ErrBadCandidate = errors.New("candidate is not valid UTF-8 text")

// FilterCommand holds flag state for the filter subcommand.
type FilterCommand struct {
	format string
}

// NewFilterCommand creates the filter subcommand.
func NewFilterCommand() *cobra.Command {
	fc := &FilterCommand{}

	cmd := &cobra.Command{
		Use:   "filter <reference> [file]",
		Short: "Keep candidates within edit distance 2 of a reference string",
		Long: `Read candidate strings one per line from a file or stdin and print
the (distance, candidate) pairs whose distance from the reference is at
most 2, in input order.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: fc.run,
	}

	cmd.Flags().StringVar(&fc.format, "format", "", "output format: text, table, json, yaml (default from config)")

	return cmd
}

func (fc *FilterCommand) run(cmd *cobra.Command, args []string) error {
	renderer, _, err := newRenderer(cmd.OutOrStdout(), fc.format)
	if err != nil {
		return err
	}

	input := cmd.InOrStdin()

	if len(args) > 1 {
		file, openErr := os.Open(args[1])
		if openErr != nil {
			return fmt.Errorf("open candidates: %w", openErr)
		}

		defer file.Close()

		input = file
	}

	reference := args[0]
	source := newScanSource(input)
	cursor := levenshtein.NewCursor(reference, source)

	var matches []levenshtein.Match

	for cursor.Scan() {
		matches = append(matches, cursor.Match())
	}

	if cursorErr := cursor.Err(); cursorErr != nil {
		return cursorErr
	}

	slog.Debug("filter finished", "reference", reference, "scanned", source.scanned, "matches", len(matches))

	return renderer.Filter(render.NewFilterReport(reference, matches, source.scanned))
}

// scanSource pulls candidate lines from a reader. Lines that are not
// valid UTF-8 abort the iteration with ErrBadCandidate.
type scanSource struct {
	scanner *bufio.Scanner
	scanned int
}

func newScanSource(r io.Reader) *scanSource {
	return &scanSource{scanner: bufio.NewScanner(r)}
}

// Next implements levenshtein.Source.
func (s *scanSource) Next() (string, bool, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", false, fmt.Errorf("read candidates: %w", err)
		}

		return "", false, nil
	}

	line := s.scanner.Text()
	if !utf8.ValidString(line) {
		return "", false, fmt.Errorf("%w: line %d", ErrBadCandidate, s.scanned+1)
	}

	s.scanned++

	return line, true, nil
}
