// transcode validates and converts text between UTF-8, UTF-16, and Latin-1.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var flags = flag.NewFlagSet("root", flag.ContinueOnError)

var jsonLogs = flags.Bool("json", false, "emit logs as plain key=value text instead of the console format")

func usage() {
	fmt.Fprintf(os.Stderr, `
Usage:
  transcode [validate|convert|inspect] [--] [options]

Validate options:
%s
Convert options:
%s
Inspect options:
%s`, options(validateFlags), options(convertFlags), options(inspectFlags))
}

func options(flags *flag.FlagSet) string {
	var nameSize int
	flags.VisitAll(func(f *flag.Flag) {
		if len(f.Name) > nameSize {
			nameSize = len(f.Name)
		}
	})
	if nameSize < 4 {
		nameSize = 4
	}
	nameSize++

	var out string
	flags.VisitAll(func(f *flag.Flag) {
		out += fmt.Sprintf("  -%s%s%s\n", f.Name, strings.Repeat(" ", nameSize-len(f.Name)), f.Usage)
	})
	return out
}

func main() {
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}
	setupLogging(*jsonLogs)

	sub := flags.Arg(0)
	var args []string
	if flags.NArg() > 1 {
		args = flags.Args()[1:]
		if flags.Arg(1) == "--" {
			args = flags.Args()[2:]
		}
	}

	switch sub {
	case "validate", "v":
		if err := validateFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := runValidate(); err != nil {
			fmt.Fprintf(os.Stderr, "validate error: %v\n", err)
			os.Exit(2)
		}
	case "convert", "c":
		if err := convertFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := runConvert(); err != nil {
			fmt.Fprintf(os.Stderr, "convert error: %v\n", err)
			os.Exit(2)
		}
	case "inspect", "i":
		if err := inspectFlags.Parse(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(1)
		}
		if err := runInspect(); err != nil {
			fmt.Fprintf(os.Stderr, "inspect error: %v\n", err)
			os.Exit(2)
		}
	default:
		if sub != "" {
			fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", sub)
		}
		usage()
		os.Exit(1)
	}
}
