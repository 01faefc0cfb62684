package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"jstok/internal/filter"
	"jstok/internal/format"
	"jstok/internal/scanner"
)

func main() {
	names := flag.Bool("names", false, "print only name-like tokens (keywords, variable and function names)")
	comments := flag.Bool("comments", false, "print only comment tokens")
	ignore := flag.String("ignore", "", "token texts to skip in the output (comma separated)")
	search := flag.String("search", "", "only print tokens containing the given string")
	expr := flag.String("filter", "", `filter expression, e.g. 'kind is comment and text has "TODO"'`)
	nice := flag.Bool("nice", false, "reformat the output to be easier to read")
	flag.Parse()

	rules := &filter.Rules{Search: *search}
	if *ignore != "" {
		rules.Ignore = strings.Split(*ignore, ",")
	}
	if *names {
		rules.Kinds = append(rules.Kinds, scanner.Identifier)
	}
	if *comments {
		rules.Kinds = append(rules.Kinds, scanner.Comment)
	}
	if *expr != "" {
		e, err := filter.Parse(*expr)
		if err != nil {
			log.Fatalf("bad -filter expression: %v", err)
		}
		rules.Expr = e
	}

	srcs := flag.Args()
	if len(srcs) == 0 {
		srcs = []string{"-"}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var kept []scanner.Token
	for _, src := range srcs {
		in, err := open(src)
		if err != nil {
			log.Fatal(err)
		}
		s := scanner.New(in)
		for {
			tok, ok := s.Next()
			if !ok {
				break
			}
			if !rules.Match(tok) {
				continue
			}
			if *nice {
				kept = append(kept, tok)
			} else {
				fmt.Fprintln(out, tok.Text)
			}
		}
		in.Close()
	}

	if *nice {
		fmt.Fprintln(out, format.Nice(kept))
	}
}

// open returns the source stream for one argument; "-" means stdin.
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
