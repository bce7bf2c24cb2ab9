package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bmfont"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'bmfont.tools'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.tools")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.bmfont.tools":  "Info",
		"trace.bmfont.decode": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "BMFont descriptor (*.fnt) to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to BMFont CLI")
	//
	// set up REPL
	repl, err := readline.New("fnt > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font     *bmf.Font
	fontfile string
	repl     *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s )", intp.font.Info.FontName)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single step of a command line, e.g. "kern:A:V".
type Op struct {
	code int
	args []string
}

const (
	QUIT int = iota
	HELP
	INFO
	COMMON
	PAGES
	CHARS
	CHAR
	KERN
	WARNINGS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"info":     INFO,
	"common":   COMMON,
	"pages":    PAGES,
	"chars":    CHARS,
	"char":     CHAR,
	"kern":     KERN,
	"warnings": WARNINGS,
}

var opNames = []string{
	"quit",
	"help",
	"info",
	"common",
	"pages",
	"chars",
	"char",
	"kern",
	"warnings",
}

// parseCommand splits a command line into ops. Ops are separated by blanks,
// arguments of an op by colons. Unknown ops are turned into a help request.
func parseCommand(line string) ([]Op, error) {
	steps := strings.Fields(line)
	if len(steps) == 0 {
		return nil, errors.New("empty command")
	}
	cmd := make([]Op, 0, len(steps))
	for _, step := range steps {
		c := strings.Split(step, ":") // e.g.  "chars:10" or "kern:A:V" or "help:pages"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		op := Op{code: code, args: c[1:]}
		tracer().Debugf("parsed command: %s %v", opNames[op.code], op.args)
		cmd = append(cmd, op)
		if code == QUIT {
			break
		}
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	INFO:     infoOp,
	COMMON:   commonOp,
	PAGES:    pagesOp,
	CHARS:    charsOp,
	CHAR:     charOp,
	KERN:     kernOp,
	WARNINGS: warningsOp,
}

func (intp *Intp) execute(cmd []Op) (err error, stop bool) {
	for _, c := range cmd {
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontfile string) (err error) {
	if fontfile == "" {
		return errors.New("no font given; use -font <file.fnt>")
	}
	intp.font, err = bmfont.LoadFont(fontfile)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontfile, err)
		return
	}
	intp.fontfile = fontfile
	pterm.Printf("font %s: %d pages, %d chars, %d kerning pairs\n", intp.font.Info.FontName,
		len(intp.font.Pages), intp.font.Chars.Len(), len(intp.font.KerningPairs))
	return nil
}

// ----------------------------------------------------------------------

// parseCharID accepts a character as a literal rune ("A"), as a decimal
// id ("65") or in Unicode notation ("U+0041").
func parseCharID(s string) (uint32, error) {
	if s == "" {
		return 0, errors.New("missing character")
	}
	if strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q", s)
		}
		return uint32(n), nil
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r != utf8.RuneError {
		if r < '0' || r > '9' {
			return uint32(r), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid character %q", s)
	}
	return uint32(n), nil
}

func (op *Op) arg(inx int) (string, bool) {
	if len(op.args) > inx && op.args[inx] != "" {
		return op.args[inx], true
	}
	return "", false
}
