package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// foldListArgs rewrites the bare tokens following a multi-valued flag into
// repetitions of that flag, so that "--status NEW WORK" reads as
// "--status NEW --status WORK". Commands take no positional arguments.
func foldListArgs(rootCmd *cobra.Command, args []string) []string {
	cmd, _, err := rootCmd.Find(args)
	if err != nil {
		cmd = rootCmd
	}

	folded := make([]string, 0, len(args))
	list := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(folded, args[i:]...)
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			folded = append(folded, arg)
			list = ""

			f, inline := lookupFlag(cmd, arg)
			if f == nil {
				continue
			}
			if _, ok := f.Value.(pflag.SliceValue); ok {
				list = "--" + f.Name
			}
			if !inline && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				folded = append(folded, args[i])
			}
		case list != "":
			folded = append(folded, list, arg)
		default:
			folded = append(folded, arg)
		}
	}
	return folded
}

// lookupFlag returns the flag named by arg and whether arg carries its value.
func lookupFlag(cmd *cobra.Command, arg string) (*pflag.Flag, bool) {
	flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags(), cmd.PersistentFlags()}

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, inline := strings.Cut(name, "=")
		for _, fs := range flagSets {
			if f := fs.Lookup(name); f != nil {
				return f, inline
			}
		}
		return nil, inline
	}

	short := arg[1:2]
	for _, fs := range flagSets {
		if f := fs.ShorthandLookup(short); f != nil {
			return f, len(arg) > 2
		}
	}
	return nil, len(arg) > 2
}
