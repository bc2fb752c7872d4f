package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lipi/convert"
	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/core/font"
	"github.com/npillmayer/lipi/core/locate"
	lhtml "github.com/npillmayer/lipi/input/html"
	"github.com/npillmayer/lipi/scheme"
	_ "github.com/npillmayer/lipi/scheme/krutidev" // registers the built-in scheme
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'lipi.cli'
func tracer() tracing.Trace {
	return tracing.Select("lipi.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.lipi.cli":     "Info",
		"trace.lipi.scheme":  "Error",
		"trace.lipi.convert": "Error",
		"trace.lipi.html":    "Error",
		"trace.lipi.fonts":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	schemename := flag.String("scheme", "krutidev", "Mapping scheme, a registered name or a scheme file")
	infile := flag.String("in", "", "Input file (default: interactive)")
	outfile := flag.String("out", "", "Output file (default: stdout)")
	htmlmode := flag.Bool("html", false, "Treat input as an HTML document")
	debug := flag.Bool("debug", false, "Report unmapped glyphs")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
	//
	table := lookupScheme(*schemename)
	if *infile == "" && !*htmlmode {
		repl(table, debug)
		return
	}
	//
	// batch mode
	var in io.Reader = os.Stdin
	if *infile != "" {
		f, err := os.Open(*infile)
		if err != nil {
			core.UserError(core.WrapError(err, core.EMISSING, "cannot open input %s", *infile))
			os.Exit(4)
		}
		defer f.Close()
		in = f
	}
	var out io.Writer = os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			core.UserError(core.WrapError(err, core.EINVALID, "cannot create output %s", *outfile))
			os.Exit(4)
		}
		defer f.Close()
		out = f
	}
	if *htmlmode {
		stats, err := lhtml.Convert(in, out, lhtml.Options{Debug: *debug})
		if err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		pterm.Info.Printfln("%d elements matched, %d text nodes converted", stats.Elements, stats.TextNodes)
		reportMissing(stats.Missing)
		return
	}
	r := convert.NewReader(in, convert.Params{Scheme: table, Debug: *debug})
	if _, err := io.Copy(out, r); err != nil {
		core.UserError(core.WrapError(err, core.EINTERNAL, "conversion aborted"))
		os.Exit(4)
	}
	reportMissing(r.Missing())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " lipi ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// lookupScheme resolves the -scheme flag, a registered scheme name
// first, a scheme file as fallback.
func lookupScheme(name string) *scheme.Table {
	table, err := scheme.GlobalRegistry().Scheme(name)
	if err == nil {
		return table
	}
	fpath, ferr := locate.TableFile(name, "")
	if ferr != nil {
		core.UserError(err)
		os.Exit(2)
	}
	if table, err = scheme.LoadTable(fpath); err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	scheme.GlobalRegistry().Store(table)
	pterm.Info.Printfln("loaded scheme %s from %s", table.Name(), fpath)
	return table
}

// repl runs the interactive loop: every entered line is converted and
// echoed. Lines starting with a colon are commands.
func repl(table *scheme.Table, debug *bool) {
	rl, err := readline.New("lipi > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Welcome to lipi, the legacy encoding converter")
	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := command(line, table, debug); quit {
				break
			}
			continue
		}
		out, missing := convert.String(line, convert.Params{Scheme: table, Debug: *debug})
		pterm.Println(out)
		reportMissing(missing)
	}
	pterm.Info.Println("Good bye!")
}

// command interprets a REPL colon-command. Returns true to quit.
func command(line string, table *scheme.Table, debug *bool) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":q", ":quit":
		return true
	case ":missing":
		*debug = !*debug
		pterm.Info.Printfln("missing-glyph report %s", onoff(*debug))
	case ":probe":
		if len(fields) < 2 {
			pterm.Error.Println("usage: :probe <fontname>")
			break
		}
		name := strings.Join(fields[1:], " ")
		f, err := locate.ResolveFont(name).Font()
		if err != nil {
			core.UserError(err)
			break
		}
		cov, err := font.Probe(f, table)
		if err != nil {
			core.UserError(err)
			break
		}
		pterm.Info.Println(cov.String())
		if len(cov.Stale) > 0 {
			pterm.Printfln("stale slots: %s", runeList(cov.Stale))
		}
		if len(cov.Gaps) > 0 {
			pterm.Printfln("gap slots:   %s", runeList(cov.Gaps))
		}
	case ":schemes":
		scheme.GlobalRegistry().LogSchemeList()
	default:
		pterm.Info.Println("commands: :missing  :probe <font>  :schemes  :quit")
	}
	return false
}

func reportMissing(missing []convert.Missing) {
	suspicious := convert.Suspicious(missing)
	if len(suspicious) == 0 {
		return
	}
	for _, m := range convert.Unique(suspicious) {
		pterm.Error.Printfln("unmapped glyph %s", m)
	}
}

func onoff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runeList(rs []rune) string {
	var sb strings.Builder
	for i, r := range rs {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%q", r))
	}
	return sb.String()
}
