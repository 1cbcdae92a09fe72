package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"

	calc "github.com/cesarcorrales17/calculadora-cientifica"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		digits int
		post   bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.IntVar(&digits, "digits", 12, "significant digits in results")
	flag.BoolVar(&post, "post", false, "print the postfix order before each result")
	flag.Parse()

	var exprs []string
	if inname != "" {
		lines, err := readLines(inname)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, lines...)
	}
	exprs = append(exprs, flag.Args()...)
	if len(exprs) == 0 {
		scan := bufio.NewScanner(os.Stdin)
		for scan.Scan() {
			exprs = append(exprs, scan.Text())
		}
		if err := scan.Err(); err != nil {
			log.Fatal(err)
		}
	}

	for _, expr := range exprs {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		if post {
			p, err := calc.Postfix(expr)
			if err == nil {
				fmt.Printf("%s : ", p)
			}
		}
		n, err := calc.Evaluate(expr)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(calc.FormatResult(n, digits))
	}
}

// readLines reads the expressions in a file, one per line. UTF-16 files are
// converted to UTF-8 first.
func readLines(name string) ([]string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	s := convertIfUtf16(string(b))
	s = strings.TrimPrefix(s, "\uFEFF")
	var lines []string
	scan := bufio.NewScanner(strings.NewReader(s))
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	return lines, scan.Err()
}

// convertIfUtf16 checks if the input is utf16 encoded and if so converts it
// to utf8.
func convertIfUtf16(in string) string {
	b := []byte(in)
	if len(b) > 7 {
		if b[1] == 0 && b[3] == 0 && b[5] == 0 && b[7] == 0 { // very likely utf16 encoded
			decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
			if out, err := decoder.String(in); err == nil {
				return out
			}
		}
	}
	return in
}
