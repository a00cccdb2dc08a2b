package main

import (
	"errors"
	"flag"
	"os"

	"github.com/qnkhuat/xchess/pkg"
	"github.com/qnkhuat/xchess/pkg/board"
	"github.com/qnkhuat/xchess/pkg/gui"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("non-interactive terminals are not supported")

func main() {
	logPath := flag.String("log", "", "path to log file")
	configPath := flag.String("config", "", "path to display config (JSON)")
	inspect := flag.Bool("inspect", false, "browse the board codes in a table")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()
	pkg.InitLog(*logPath, "CLIENT: ")
	pkg.SetVerbose(*verbose)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pkg.ReportError(os.Stderr, errNotTerminal)
		os.Exit(1)
	}

	cfg, theme := gui.DefaultConfig(), gui.ThemeBasic
	if *configPath != "" {
		var err error
		cfg, theme, err = gui.LoadConfig(*configPath)
		if err != nil {
			pkg.ReportError(os.Stderr, err)
			os.Exit(1)
		}
	}

	b := board.InitialLayout()
	if cb, err := board.Classical(b); err == nil {
		logrus.Debugf("initial layout:\n%s", cb.Draw())
	}

	var err error
	if *inspect {
		err = gui.NewInspector(b, theme).Run()
	} else {
		err = gui.NewSession(gui.NewTerminalDisplay(cfg), cfg, theme).Run(b)
	}
	if err != nil {
		logrus.Errorf("exiting: %s", err)
		pkg.ReportError(os.Stderr, err)
		os.Exit(1)
	}
	logrus.Info("bye")
}
