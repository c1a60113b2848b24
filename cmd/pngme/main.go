// Command pngme hides messages in PNG files by adding, reading and removing
// ancillary chunks.
//
// Usage:
//
//	pngme encode [-compress ALG] FILE TYPE MESSAGE [OUTPUT]
//	pngme decode FILE TYPE
//	pngme remove FILE TYPE
//	pngme print FILE
//
// Defaults for compression, limits and colour output may be set in a YAML
// file; see loadConfig.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `usage:
  pngme encode [-compress ALG] FILE TYPE MESSAGE [OUTPUT]
  pngme decode FILE TYPE
  pngme remove FILE TYPE
  pngme print [-color auto|always|never] FILE`

func main() {
	log.SetFlags(0)
	log.SetPrefix("pngme: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}
	switch args[0] {
	case "encode":
		return runEncode(args[1:], stdout, stderr)
	case "decode":
		return runDecode(args[1:], stdout, stderr)
	case "remove":
		return runRemove(args[1:], stdout, stderr)
	case "print":
		return runPrint(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(stdout, usage)
		return nil
	}
	return fmt.Errorf("unknown command %q\n%s", args[0], usage)
}

// newFlagSet returns a flag set for one subcommand with the shared -config flag.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", defaultConfigPath(), "YAML config file")
	return fs, configPath
}
