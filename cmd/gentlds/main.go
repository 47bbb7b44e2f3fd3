// Command gentlds regenerates the tldset data file from the IANA TLD list.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/template"
)

const tldListURL = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"

const tldsgotmpl = `// Code generated by gentlds; DO NOT EDIT.

package tldset

var tlds = map[string]struct{}{
{{- range .}}
	"{{.}}": {},
{{- end}}
}
`

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentlds: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	res, err := http.Get(tldListURL)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status fetching TLD list: %s", res.Status)
	}

	var tlds []string
	scanner := bufio.NewScanner(res.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tlds = append(tlds, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	sort.Strings(tlds)

	of := os.Stdout
	if len(os.Args) >= 2 {
		of, err = os.Create(os.Args[1])
		if err != nil {
			return err
		}
		defer of.Close()
	}

	t, err := template.New("").Parse(tldsgotmpl)
	if err != nil {
		return err
	}

	return t.Execute(of, tlds)
}
