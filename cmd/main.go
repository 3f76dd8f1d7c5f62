package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rycus86/textpatch/pkg/debug"
	"github.com/rycus86/textpatch/pkg/files"
	"github.com/rycus86/textpatch/pkg/patches"
	flag "github.com/spf13/pflag"
)

var (
	workDir   = flag.StringP("dir", "C", "", "Run as if started in this directory")
	debugMode = flag.Bool("debug", false, "Run in debug mode")
)

func main() {
	flag.Parse()

	debug.SetEnabled(*debugMode)

	os.Exit(runMain(flag.Args(), *workDir, os.Stdout, os.Stderr))
}

func runMain(args []string, dir string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(stderr, "No arguments expected, got:", args)
		fmt.Fprintf(stderr, "Usage of %s:\n%s", os.Args[0], flag.CommandLine.FlagUsages())
		return 1
	}

	if err := run(dir); err != nil {
		fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Fixed!")
	return 0
}

func run(dir string) error {
	if dir != "" {
		if err := os.Chdir(dir); err != nil {
			return errors.Wrap(err, "failed to change directory")
		}
	}

	patch, err := patches.Default()
	if err != nil {
		return err
	}

	debug.Log().Debugf("Replacing %q with %q in %s", patch.Pattern, patch.Replacement, patch.Path)

	_, err = files.Apply(patch)
	return err
}
