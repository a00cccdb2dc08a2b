package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/xchess/pkg"
	"github.com/sirupsen/logrus"
)

func main() {
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	envFile := flag.String("env", ".env", "optional env file")
	flag.Parse()
	if *logPath != "" {
		pkg.InitLog(*logPath, "SERVER: ")
	}

	cfg, err := pkg.LoadServerConfig(*envFile)
	if err != nil {
		logrus.Fatal(err)
	}
	s, err := pkg.NewServer(cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		logrus.Infof("shutting down, %d viewers connected", len(s.Viewers()))
		s.Close()
	}()

	if err := s.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}
