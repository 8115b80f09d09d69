package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/term"

	"kbicons/doctor"
	"kbicons/icon"
	"kbicons/log"
	"kbicons/palette"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kbicons", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outFlag := fs.String("out", "icons", "Output directory (created if missing)")
	themesFlag := fs.String("themes", strings.Join(themeNames(palette.Default()), ","), "Comma-separated variants to generate: "+strings.Join(palette.Names(), ", "))
	jobsFlag := fs.Int("jobs", 1, "Number of icons rendered in parallel")
	logPathFlag := fs.String("logpath", "", "log directory path (default: $"+log.EnvPath+", empty disables logging)")
	previewFlag := fs.Bool("preview", false, "Print a terminal preview of each theme after generating")
	doctorFlag := fs.Bool("doctor", false, "Run drawing capability checks and exit")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "kbicons %s\n", version)
		return 0
	}

	if *doctorFlag {
		return doctor.Run(stdout)
	}

	// Nothing is drawn unless the whole image stack works.
	if err := doctor.Check(); err != nil {
		fmt.Fprintf(stderr, "Error: image drawing unavailable: %v\n", err)
		return 1
	}

	themes, err := parseThemes(*themesFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if *jobsFlag < 1 {
		fmt.Fprintf(stderr, "Error: -jobs must be at least 1, got %d\n", *jobsFlag)
		return 2
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to resolve log directory: %v\n", err)
		return 1
	}
	if logPath != "" {
		log.SetDir(logPath)
		if err := log.Init(); err != nil {
			fmt.Fprintf(stderr, "Warning: could not init logging: %v\n", err)
		} else {
			defer log.Close()
			setCrashOutput(logPath)
		}
	}

	cfg := Config{
		OutDir: *outFlag,
		Themes: themes,
		Jobs:   *jobsFlag,
	}
	rep := newReporter(stdout, isTerminal(stdout))

	start := time.Now()
	log.RunStart(cfg.OutDir, themeNames(themes), cfg.Jobs)
	rep.Banner()
	files, err := Generate(cfg, rep)
	if err != nil {
		log.Errorf("generate failed: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	rep.Summary(themes, Sizes)
	if *previewFlag {
		if err := printPreviews(stdout, themes); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	log.RunEnd(len(files), float64(time.Since(start).Microseconds())/1000)
	return 0
}

func printPreviews(w io.Writer, themes []palette.Theme) error {
	for _, th := range themes {
		img, err := icon.Compose(previewSize, th)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s (%dx%d):\n", th.Name, previewSize, previewSize)
		fmt.Fprint(w, renderPreview(img))
	}
	return nil
}

func parseThemes(s string) ([]palette.Theme, error) {
	var themes []palette.Theme
	seen := make(map[string]bool)
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		th, ok := palette.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q (use %s)", name, strings.Join(palette.Names(), " or "))
		}
		seen[name] = true
		themes = append(themes, th)
	}
	if len(themes) == 0 {
		return nil, fmt.Errorf("no themes selected")
	}
	return themes, nil
}

func themeNames(themes []palette.Theme) []string {
	names := make([]string, len(themes))
	for i, th := range themes {
		names[i] = th.Name
	}
	return names
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func setCrashOutput(dir string) {
	crashPath := filepath.Join(dir, "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Warnf("could not open crash log: %v", err)
		return
	}
	fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
	debug.SetCrashOutput(crashFile, debug.CrashOptions{})
}
