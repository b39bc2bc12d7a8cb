// Command sprintreport generates Vianeo Sprint Executive Reports as DOCX files.
package main

import (
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Commands recognized as the first argument.
const (
	cmdGenerate = "generate"
	cmdInspect  = "inspect"
	cmdList     = "list"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
// With no command, or with only flags and content files, it generates.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd, rest := cmdGenerate, args
	if len(args) > 0 && isCommand(args[0]) {
		cmd, rest = args[0], args[1:]
	} else if len(args) > 0 && !strings.HasPrefix(args[0], "-") && !looksLikeContent(args[0]) {
		env.printError(errUnknownCommand(args[0]))
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd {
	case cmdGenerate:
		err = runGenerateCommand(rest, env)
	case cmdInspect:
		err = runInspect(rest, env)
	case cmdList:
		err = runList(rest, env)
	case cmdVersion:
		printVersion(env.Stdout)
	case cmdHelp:
		err = runHelp(rest, env)
	}

	if err != nil {
		env.printError(err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdInspect, cmdList, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// looksLikeContent reports whether arg is a content file or directory
// rather than a mistyped command.
func looksLikeContent(arg string) bool {
	if strings.ContainsAny(arg, "/\\") {
		return true
	}
	lower := strings.ToLower(arg)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}
