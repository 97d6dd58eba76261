package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
)

// Format is a display format. It implements pflag.Value.
type Format string

// Display formats.
const (
	FormatTable   Format = "table"
	FormatRecords Format = "records"
	FormatCSV     Format = "csv"
	FormatTSV     Format = "tsv"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatValue   Format = "value"
)

var formats = []Format{
	FormatTable, FormatRecords, FormatCSV, FormatTSV, FormatJSON, FormatYAML, FormatValue,
}

// Formats returns the names of the known display formats.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// ParseFormat returns the display format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", errors.WithHintf(fmt.Errorf("%w: %q", ErrUnknownFormat, name),
		"valid formats are %s", strings.Join(Formats(), ", "))
}

// DefaultFormat returns table when stdout is a terminal, tsv otherwise.
func DefaultFormat() Format {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatTSV
}

// String implements pflag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}
