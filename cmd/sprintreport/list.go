package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-sprintreport/internal/assets"
)

// runList prints the built-in style sets and content records.
func runList(args []string, env *Environment) error {
	fs := flag.NewFlagSet(cmdList, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printListUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError(err)
	}

	loader := assets.NewEmbeddedLoader()

	fmt.Fprintln(env.Stdout, "Styles:")
	for _, name := range loader.StyleNames() {
		marker := ""
		if name == assets.DefaultStyleName {
			marker = " (default)"
		}
		fmt.Fprintf(env.Stdout, "  %s%s\n", name, marker)
	}

	fmt.Fprintln(env.Stdout, "Content records:")
	for _, name := range loader.ContentNames() {
		marker := ""
		if name == assets.SampleContentName {
			marker = " (sample)"
		}
		fmt.Fprintf(env.Stdout, "  %s%s\n", name, marker)
	}
	return nil
}
