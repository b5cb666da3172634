package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	calc "github.com/BLM16/Tokenized-Calculator"
)

func main() {
	log.SetFlags(0)
	var (
		config, verb string
		quiet        bool
	)
	flag.StringVar(&config, "config", "", "YAML file defining operators, constants, and functions")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&quiet, "q", false, "don't prompt for input")
	flag.Parse()

	var opts []calc.Option
	if config != "" {
		cfg, err := calc.LoadConfigFile(config)
		if err != nil {
			log.Fatal(err)
		}
		opts, err = cfg.Options()
		if err != nil {
			log.Fatal(err)
		}
	}
	c, err := calc.New(opts...)
	if err != nil {
		log.Fatalf("creating calculator: %v", err)
	}

	verb += "\n"
	if flag.NArg() > 0 {
		// Evaluate arguments and exit with failure if any was invalid.
		ok := true
		for _, arg := range flag.Args() {
			r, err := c.Evaluate(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
				ok = false
				continue
			}
			fmt.Printf(verb, r)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}
	if err := repl(c, os.Stdin, os.Stdout, verb, quiet); err != nil {
		log.Fatal(err)
	}
}

// repl evaluates lines of input until EOF.
func repl(c *calc.Calculator, in io.Reader, out io.Writer, verb string, quiet bool) error {
	scan := bufio.NewScanner(in)
	for {
		if !quiet {
			fmt.Fprint(out, "Enter your equation: ")
		}
		if !scan.Scan() {
			if !quiet {
				fmt.Fprintln(out)
			}
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		r, err := c.Evaluate(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if quiet {
			fmt.Fprintf(out, verb, r)
		} else {
			fmt.Fprintf(out, "Result: "+verb, r)
		}
	}
}
