package jiractl

import (
	"strings"

	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*VisibilityFlag)(nil)
	_ pflag.Value      = (*CustomFieldsFlag)(nil)
	_ pflag.SliceValue = (*CustomFieldsFlag)(nil)
)

// VisibilityFlag is a type:value comment visibility flag, validated when parsed.
type VisibilityFlag struct {
	raw        string
	Visibility *tracker.Visibility
}

// String implements pflag.Value.
func (f *VisibilityFlag) String() string {
	return f.raw
}

// Set implements pflag.Value.
func (f *VisibilityFlag) Set(s string) error {
	v, err := ParseVisibility(s)
	if err != nil {
		return err
	}
	f.raw = s
	f.Visibility = v
	return nil
}

// Type implements pflag.Value.
func (f *VisibilityFlag) Type() string {
	return "type:value"
}

// CustomFieldsFlag collects key:value custom field assignments, given
// repeatedly or comma separated. A comma starts a new assignment only when
// followed by a key, so values may contain commas.
type CustomFieldsFlag struct {
	raw    []string
	Fields tracker.Fields
}

// String implements pflag.Value.
func (f *CustomFieldsFlag) String() string {
	return strings.Join(f.raw, ",")
}

// Set implements pflag.Value.
func (f *CustomFieldsFlag) Set(s string) error {
	return f.add(splitAssignments(s))
}

// Type implements pflag.Value.
func (f *CustomFieldsFlag) Type() string {
	return "key:value"
}

// Append implements pflag.SliceValue.
func (f *CustomFieldsFlag) Append(s string) error {
	return f.add([]string{s})
}

// Replace implements pflag.SliceValue.
func (f *CustomFieldsFlag) Replace(entries []string) error {
	parsed, err := ParseCustomFields(entries)
	if err != nil {
		return err
	}
	f.raw = append([]string(nil), entries...)
	f.Fields = parsed
	return nil
}

// GetSlice implements pflag.SliceValue.
func (f *CustomFieldsFlag) GetSlice() []string {
	return append([]string(nil), f.raw...)
}

func (f *CustomFieldsFlag) add(entries []string) error {
	parsed, err := ParseCustomFields(entries)
	if err != nil {
		return err
	}

	if f.Fields == nil {
		f.Fields = tracker.Fields{}
	}
	for k, v := range parsed {
		f.Fields[k] = v
	}
	f.raw = append(f.raw, entries...)
	return nil
}

// splitAssignments splits s at the commas followed by a key.
func splitAssignments(s string) []string {
	var entries []string
	for _, part := range strings.Split(s, ",") {
		if len(entries) > 0 && !startsAssignment(part) {
			entries[len(entries)-1] += "," + part
			continue
		}
		entries = append(entries, part)
	}
	return entries
}

func startsAssignment(s string) bool {
	key, _, found := strings.Cut(s, ":")
	return found && key != "" && !strings.ContainsAny(key, " \t")
}
