package pkg

import (
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
)

// prefixFormatter tags every line with the process prefix
type prefixFormatter struct {
	prefix string
	logrus.Formatter
}

func (f prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b, err := f.Formatter.Format(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(f.prefix), b...), nil
}

// InitLog sends logs to dest with prefix on every line. An empty dest
// discards them, the screen belongs to the board.
func InitLog(dest, prefix string) {
	logrus.SetFormatter(prefixFormatter{
		prefix:    prefix,
		Formatter: &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if dest == "" {
		logrus.SetOutput(ioutil.Discard)
		return
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		logrus.Fatalf("error opening file: %v", err)
	}
	logrus.SetOutput(f)
}

// SetVerbose enables debug logging
func SetVerbose(v bool) {
	if v {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
