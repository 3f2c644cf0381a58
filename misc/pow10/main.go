package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"math/big"
	"os"
	"text/template"

	"github.com/davecgh/go-spew/spew"
)

// Generates the power-of-ten tables used for decimal scale alignment and
// rounding. Powers that fit in a uint64 go in one table, the rest are split
// into low and high words.

const usage = `Power-of-ten table generator

Usage: pow10 [-out <file>] [-debug]`

const maxPow = 28

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var out string
	var debug bool

	fs := flag.NewFlagSet("pow10", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	fs.StringVar(&out, "out", "", "write to this file instead of stdout")
	fs.BoolVar(&debug, "debug", false, "dump the computed table to stderr")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	tbl := buildTable(maxPow)
	if debug {
		spew.Fdump(os.Stderr, tbl)
	}

	src, err := render(tbl)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	return ioutil.WriteFile(out, src, 0644)
}

type narrowPow struct {
	Exp   int
	Value uint64
}

type widePow struct {
	Exp    int
	Lo, Hi uint64
}

type table struct {
	Narrow []narrowPow
	Wide   []widePow
	Max    int
}

func buildTable(max int) table {
	var tbl table
	tbl.Max = max

	ten := big.NewInt(10)
	mask := new(big.Int).SetUint64(1<<64 - 1)
	v := big.NewInt(1)
	for exp := 0; exp <= max; exp++ {
		if v.IsUint64() {
			tbl.Narrow = append(tbl.Narrow, narrowPow{Exp: exp, Value: v.Uint64()})
		} else {
			lo := new(big.Int).And(v, mask).Uint64()
			hi := new(big.Int).Rsh(v, 64).Uint64()
			tbl.Wide = append(tbl.Wide, widePow{Exp: exp, Lo: lo, Hi: hi})
		}
		v.Mul(v, ten)
	}
	return tbl
}

func render(tbl table) ([]byte, error) {
	var buf bytes.Buffer
	if err := tableTpl.Execute(&buf, tbl); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

var tableTpl = template.Must(template.New("").Funcs(template.FuncMap{
	"hex": func(v uint64) string { return fmt.Sprintf("0x%016X", v) },
	"inc": func(i int) int { return i + 1 },
	"dec": func(i int) int { return i - 1 },
	"seq": seq,
}).Parse(`// Code generated by "go run ./misc/pow10"; DO NOT EDIT.

package datatypes

// pow10Uint64 holds 10^0 through 10^{{ (index .Narrow (len .Narrow | dec)).Exp }}.
var pow10Uint64 = [...]uint64{
{{- range .Narrow }}
	{{ .Value }}, // 10^{{ .Exp }}
{{- end }}
}

// pow10Wide holds the low and high words of 10^{{ (index .Wide 0).Exp }} through 10^{{ .Max }}.
var pow10Wide = [...]struct{ lo, hi uint64 }{
{{- range .Wide }}
	{lo: {{ hex .Lo }}, hi: {{ hex .Hi }}}, // 10^{{ .Exp }}
{{- end }}
}

// pow10Float64 holds 1e0 through 1e{{ .Max }}.
var pow10Float64 = [...]float64{
{{- range $row := seq (inc .Max) 10 }}
	{{ range $i, $e := $row }}{{ if $i }} {{ end }}1e{{ $e }},{{ end }}
{{- end }}
}
`))

// seq splits 0..n-1 into rows of at most width.
func seq(n, width int) [][]int {
	var rows [][]int
	for start := 0; start < n; start += width {
		var row []int
		for i := start; i < n && i < start+width; i++ {
			row = append(row, i)
		}
		rows = append(rows, row)
	}
	return rows
}
