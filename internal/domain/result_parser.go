package domain

import (
	"strconv"
	"strings"

	regexp "github.com/wasilibs/go-re2"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

var (
	errorsAndWarningsRe = regexp.MustCompile(`(?i)FOUND (\d+) ERRORS? AND (\d+) WARNINGS?`)
	errorsOnlyRe        = regexp.MustCompile(`(?i)FOUND (\d+) ERRORS?`)
	warningsOnlyRe      = regexp.MustCompile(`(?i)FOUND (\d+) WARNINGS?`)
)

// ResultParser extracts error and warning totals from linter output.
type ResultParser interface {
	// Parse sums the summary lines in output. Unrecognized text counts as
	// zero; Parse never fails.
	Parse(output string) m.Counts
}

type resultParser struct{}

// NewResultParser constructs a ResultParser.
func NewResultParser() ResultParser {
	return resultParser{}
}

func (resultParser) Parse(output string) m.Counts {
	var total m.Counts

	for _, line := range strings.Split(output, "\n") {
		total = total.Add(parseSummaryLine(line))
	}

	return total
}

// parseSummaryLine applies the patterns in order; the first match wins.
func parseSummaryLine(line string) m.Counts {
	if match := errorsAndWarningsRe.FindStringSubmatch(line); match != nil {
		return m.Counts{Errors: atoi(match[1]), Warnings: atoi(match[2])}
	}

	if match := errorsOnlyRe.FindStringSubmatch(line); match != nil {
		return m.Counts{Errors: atoi(match[1])}
	}

	if match := warningsOnlyRe.FindStringSubmatch(line); match != nil {
		return m.Counts{Warnings: atoi(match[1])}
	}

	return m.Counts{}
}

func atoi(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}

	return n
}
