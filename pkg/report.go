package pkg

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/qnkhuat/xchess/pkg/gui"
)

var errorBanner = color.New(color.FgRed, color.Bold)

// ReportError prints a fatal error for the operator
func ReportError(w io.Writer, err error) {
	var initErr *gui.InitError
	if errors.As(err, &initErr) {
		errorBanner.Fprintf(w, "Error: couldn't %s\n", initErr.Stage)
		fmt.Fprintf(w, "display exited with error:\n%s\n", initErr.Err)
		return
	}
	errorBanner.Fprintf(w, "Error: ")
	fmt.Fprintf(w, "%s\n", err)
}
