package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/bmfont"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'bmfont.tools'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.tools")
}

func main() {
	commando.
		SetExecutableName("bmf-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting and validating binary BMFont descriptors.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("info").
		SetDescription("Print header, info and common block of a BMFont descriptor.").
		SetShortDescription("font summary").
		AddArgument("font", "BMFont descriptor file path", "").
		AddFlag("warnings,w", "print decoding warnings", commando.Bool, nil).
		SetAction(runInfoCommand)

	commando.
		Register("dump").
		SetDescription("Print a decoded BMFont descriptor as JSON.").
		SetShortDescription("JSON dump").
		AddArgument("font", "BMFont descriptor file path", "").
		AddFlag("indent,i", "indent JSON output", commando.Bool, nil).
		SetAction(runDumpCommand)

	commando.
		Register("check").
		SetDescription("Decode a set of BMFont descriptors and report failures.").
		SetShortDescription("validate fonts").
		AddArgument("fonts...", "BMFont descriptor file paths", "").
		AddFlag("jobs,j", "number of files to decode concurrently", commando.Int, 4).
		SetAction(runCheckCommand)

	commando.Parse(nil)
}

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath)
	printInfo(os.Stdout, fontPath, f)
	if mustFlagBool(flags["warnings"], "warnings") {
		for _, w := range f.Warnings() {
			fmt.Println(w.String())
		}
	}
}

func mustLoadFont(path string) *bmf.Font {
	f, err := bmfont.LoadFont(path)
	if err != nil {
		fatalf("cannot decode font %s: %v", path, err)
	}
	return f
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "bmf-tools: "+format+"\n", args...)
	os.Exit(1)
}
