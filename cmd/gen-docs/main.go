package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/movement/internal/cli"
)

// This small tool generates shell completions and a man page from the
// movement command tree, so they never drift from the real flags.

const appName = "movement"

func main() {
	root := cli.NewRootCommand()

	if err := writeCompletions(root, filepath.Join("docs", "completions")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan(root, "man"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeCompletions(root *cobra.Command, base string) error {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}
	if err := root.GenBashCompletionFileV2(filepath.Join(base, appName+".bash"), true); err != nil {
		return fmt.Errorf("bash completion: %w", err)
	}
	if err := root.GenZshCompletionFile(filepath.Join(base, "_"+appName)); err != nil {
		return fmt.Errorf("zsh completion: %w", err)
	}
	if err := root.GenFishCompletionFile(filepath.Join(base, appName+".fish"), true); err != nil {
		return fmt.Errorf("fish completion: %w", err)
	}
	return nil
}

type flagDef struct {
	Short string
	Long  string
	Arg   string
	Desc  string
}

// collectFlags lists the persistent flags, then the root's local ones.
func collectFlags(root *cobra.Command) []flagDef {
	seen := map[string]bool{}
	var flags []flagDef
	add := func(f *pflag.Flag) {
		if seen[f.Name] || f.Hidden {
			return
		}
		seen[f.Name] = true
		def := flagDef{Long: "--" + f.Name, Desc: f.Usage}
		if f.Shorthand != "" {
			def.Short = "-" + f.Shorthand
		}
		if f.Value.Type() != "bool" {
			def.Arg = "<" + f.Value.Type() + ">"
		}
		flags = append(flags, def)
	}
	root.PersistentFlags().VisitAll(add)
	root.Flags().VisitAll(add)
	return flags
}

func escapeRoff(s string) string {
	return strings.ReplaceAll(s, "-", "\\-")
}

func writeMan(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"movement\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " \\- " + root.Short + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n")
	b.WriteString("[flags] START [OP...]\n")
	b.WriteString(".SH DESCRIPTION\n" + escapeRoff(root.Long) + "\n")

	b.WriteString(".SH OPTIONS\n")
	for _, f := range collectFlags(root) {
		names := f.Short
		if f.Long != "" {
			if names != "" {
				names += ", "
			}
			names += f.Long
		}
		if f.Arg != "" {
			names += " " + f.Arg
		}
		b.WriteString(".TP\n\\fB" + escapeRoff(names) + "\\fR\n" + escapeRoff(f.Desc) + "\n")
	}

	b.WriteString(".SH COMMANDS\n")
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		b.WriteString(".TP\n\\fB" + c.Name() + "\\fR\n" + c.Short + "\n")
	}

	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + " 13:34 +4343\\fR\nPrints 14:46:23.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-m 13:34 \\-100000000\\fR\nPrints 03:47:20 AM \\-1157 days.\n")
	b.WriteString(".TP\n\\fB" + appName + " interactive\\fR\nStart the interactive calculator.\n")
	b.WriteString(".SH ENVIRONMENT\n")
	b.WriteString(".TP\n\\fBMOVEMENT_MERIDIEM\\fR, \\fBMOVEMENT_LOG_LEVEL\\fR, \\fBMOVEMENT_LOG_FORMAT\\fR, \\fBMOVEMENT_LOG_FILE\\fR\n")
	b.WriteString("Defaults for the matching flags. A .env file in the working directory is read first.\n")

	return os.WriteFile(filepath.Join(dir, appName+".1"), []byte(b.String()), 0o644)
}
