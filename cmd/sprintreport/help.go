package main

import (
	"fmt"
	"io"
	"runtime"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sprintreport [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate reports from content files (default)")
	fmt.Fprintln(w, "  inspect    Print the outline of a generated .docx report")
	fmt.Fprintln(w, "  list       List built-in styles and content records")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no arguments, the built-in sample report is generated.")
	fmt.Fprintln(w, "Run 'sprintreport help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sprintreport [generate] [content.yaml|dir ...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one Vianeo Sprint Executive Report per content record.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content    YAML files or directories (default: content.default from config,")
	fmt.Fprintln(w, "             else the built-in sample record)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: current directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --dry-run             Validate and assemble without writing files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --date <s>            Report date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Style set name or YAML file")
	fmt.Fprintln(w, "      --set <token=value>   Override a style token (repeatable)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (styles/, content/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+envConfig+", "+envStyle+", "+envOutputDir+",")
	fmt.Fprintln(w, "  "+envAssetPath+", "+envDate+", "+envWorkers)
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sprintreport inspect <report.docx> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print metadata, headings, tables and page breaks of a report.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -a, --all                 List every body element in order")
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sprintreport list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List built-in style sets and content records.")
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "sprintreport %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdInspect:
		printInspectUsage(env.Stdout)
	case cmdList:
		printListUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: sprintreport version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: sprintreport help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return errUnknownCommand(args[0])
	}
	return nil
}
