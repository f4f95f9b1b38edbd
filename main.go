package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/integrii/flaggy"

	"github.com/olivier-w/damplab/internal/smoothing"
	"github.com/olivier-w/damplab/internal/ui"
)

// AppName is the app name
const AppName = "damplab"

// AppDesc is the app description
const AppDesc = "interactive playground for frame-rate independent value smoothing"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newDefaultConfig()

	if doFlags(&cfg) {
		return
	}

	chk(cfg.sanitize(), "invalid config")

	if cfg.debug {
		f, err := tea.LogToFile("damplab.log", "debug")
		chk(err, "failed to open debug log")
		defer f.Close()
	}

	model := ui.New(cfg.fnIdx, cfg.fps, cfg.compare)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func doFlags(cfg *config) bool {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	listFunctionsCmd := flaggy.Subcommand{
		Name:        "list-functions",
		ShortName:   "lf",
		Description: "list the available smoothing functions",
	}
	parser.AttachSubcommand(&listFunctionsCmd, 1)

	parser.String(&cfg.function, "f", "function", "smoothing function name")
	parser.Float64(&cfg.fps, "r", "fps", "requested frame rate for live mode")
	parser.Bool(&cfg.compare, "c", "compare", "start in compare mode")
	parser.Bool(&cfg.debug, "d", "debug", "write debug logs to damplab.log")

	chk(parser.Parse(), "failed to parse arguments")

	if listFunctionsCmd.Used {
		for _, name := range smoothing.Names() {
			fmt.Printf("- %s\n", name)
		}
		return true
	}

	return false
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
