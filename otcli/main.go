package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/npillmayer/otfinfo"
	"github.com/npillmayer/otfinfo/internal/fontload"
	"github.com/npillmayer/otfinfo/ot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otfinfo.cli'
func tracer() tracing.Trace {
	return tracing.Select("otfinfo.cli")
}

// all trace keys of this module
var traceKeys = []string{"otfinfo.cli", "otfinfo", "otfinfo.query", "font.opentype"}

var cli struct {
	Trace      string `short:"t" enum:"Debug,Info,Error" default:"Error" help:"Trace level [Debug|Info|Error]"`
	MacNames   bool   `name:"macnames" help:"Decode Macintosh name strings with their legacy encoding"`
	Concurrent bool   `help:"Decode tables concurrently"`
	Checksums  bool   `help:"Verify table checksums"`

	Dump struct {
		Font string `arg:"" name:"font" type:"path" help:"Font file (TTF or OTF)"`
	} `cmd:"" help:"Print the table directory and all decoded tables"`

	Repl struct {
		Font string `arg:"" name:"font" type:"path" help:"Font file (TTF or OTF)"`
	} `cmd:"" help:"Explore a font interactively"`
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	ctx := kong.Parse(&cli,
		kong.Name("otfinfo"),
		kong.Description("Inspect the directory and the head, name and cmap tables of OpenType fonts."))
	setTraceLevel(cli.Trace)
	//
	switch ctx.Command() {
	case "dump <font>":
		intp := &Intp{}
		if err := intp.loadFont(cli.Dump.Font); err != nil {
			pterm.Error.Println(err)
			os.Exit(4)
		}
		intp.dump()
	case "repl <font>":
		pterm.Info.Println("Welcome to otfinfo") // colored welcome message
		repl, err := readline.New("otf > ")
		if err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		defer repl.Close()
		intp := &Intp{repl: repl}
		if err := intp.loadFont(cli.Repl.Font); err != nil {
			pterm.Error.Println(err)
			os.Exit(4)
		}
		pterm.Info.Println("Quit with <ctrl>D or 'quit'") // inform user how to stop the CLI
		intp.REPL()                                        // go into interactive mode
	default:
		ctx.Fatalf("unknown command %q", ctx.Command())
	}
}

func setTraceLevel(level string) {
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		default:
			t.SetTraceLevel(tracing.LevelError)
		}
	}
	tracer().Infof("Trace level is %s", level)
}

func parseOptions() []ot.ParseOption {
	var opts []ot.ParseOption
	if cli.MacNames {
		opts = append(opts, ot.MacintoshNames)
	}
	if cli.Concurrent {
		opts = append(opts, ot.DecodeConcurrently)
	}
	if cli.Checksums {
		opts = append(opts, ot.VerifyChecksums)
	}
	return opts
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
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font *ot.Font
	src  *fontload.ScalableFont
	repl *readline.Instance
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
			pterm.Error.Println(err)
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

// --- Commands --------------------------------------------------------------

type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	DIR
	HEAD
	NAME
	CMAP
	WARNINGS
	SFNT
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"dir":      DIR,
	"head":     HEAD,
	"name":     NAME,
	"cmap":     CMAP,
	"warnings": WARNINGS,
	"sfnt":     SFNT,
}

var opNames = []string{
	"quit",
	"help",
	"dir",
	"head",
	"name",
	"cmap",
	"warnings",
	"sfnt",
}

// parseCommand splits a line of input into operations, separated by blanks.
// An operation may carry an argument after a colon, e.g. "name:4" or "help:cmap".
// Unknown operations are turned into requests for help.
func parseCommand(line string) ([]Op, error) {
	steps := strings.Fields(line)
	cmd := make([]Op, 0, len(steps))
	for _, step := range steps {
		c := strings.SplitN(step, ":", 2)
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			tracer().Infof("unknown command %q", c[0])
			code = HELP
		}
		op := Op{code: code}
		if len(c) > 1 {
			op.arg = c[1]
		}
		tracer().Debugf("parsed command: %s(%s)", opNames[op.code], op.arg)
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
	DIR:      dirOp,
	HEAD:     headOp,
	NAME:     nameOp,
	CMAP:     cmapOp,
	WARNINGS: warningsOp,
	SFNT:     sfntOp,
}

func (intp *Intp) execute(cmd []Op) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd)
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
	return nil, true
}

// --- Font Loading ----------------------------------------------------------

func (intp *Intp) loadFont(fontfile string) (err error) {
	if intp.src, err = fontload.LoadOpenTypeFont(fontfile); err != nil {
		tracer().Errorf("cannot load font %s: %s", fontfile, err)
		return err
	}
	if intp.font, err = otfinfo.FromBinary(intp.src.Binary, parseOptions()...); err != nil {
		tracer().Errorf("cannot decode font %s: %s", fontfile, err)
		return err
	}
	family, subfamily := otfinfo.FamilyName(intp.font)
	pterm.Info.Printf("%s: %s %s, tables %v\n", fontfile, family, subfamily, intp.font.TableTags())
	return nil
}
