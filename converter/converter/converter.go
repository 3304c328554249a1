package converter

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	programName = "convert_rmt"
	description = "Convert Saleae Logic capture of RMT timings to a list of pulses"
)

var errUsage = errors.New("exactly one input_file argument is required")

type flagSet struct {
	inputFile string
}

func (fs *flagSet) parseRequiredFlags(args []string, output io.Writer) error {
	flags := flag.NewFlagSet(programName, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, "usage: %s [-h] input_file\n\n%s\n\n", programName, description)
		fmt.Fprintln(output, "positional arguments:")
		fmt.Fprintln(output, "  input_file  Saleae Logic capture of RMT timings")
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}
	fs.inputFile = flags.Arg(0)
	return nil
}

// Convert reads the capture at inputFile and writes its pulse list to w.
func Convert(inputFile string, w io.Writer) error {
	samples, err := loadCapture(inputFile)
	if err != nil {
		return err
	}
	return writePulses(w, toPulses(samples))
}

// Start launches the converter with the process arguments
func Start() {
	var converterFlag flagSet
	if err := converterFlag.parseRequiredFlags(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Println(err)
		os.Exit(2)
	}
	if err := Convert(converterFlag.inputFile, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
