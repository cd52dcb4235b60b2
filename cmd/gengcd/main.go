// Command gengcd writes the per-width GCD functions and engines.
//
//	go run github.com/alextanhongpin/gcd/cmd/gengcd -out width_gen.go
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/alextanhongpin/gcd/internal"
)

//go:embed width.go.tmpl
var widthTmpl string

type width struct {
	Name   string
	Type   string
	Engine string
}

type constant struct {
	Name  string
	Type  string
	Value uint64
}

type data struct {
	Package   string
	Widths    []width
	Constants []constant
}

var widths = []width{
	{Name: "Uint8", Type: "uint8", Engine: "Uint8"},
	{Name: "Uint16", Type: "uint16", Engine: "Uint16"},
	{Name: "Uint32", Type: "uint32", Engine: "Uint32"},
	{Name: "Uint64", Type: "uint64", Engine: "Uint64"},
	{Name: "Uint", Type: "uint", Engine: "UintNative"},
	{Name: "Uintptr", Type: "uintptr", Engine: "Uintptr"},
}

// Pairs evaluated at generation time.
var pairs = []struct {
	typ  string
	a, b uint64
}{
	{"uint8", 140, 136},
	{"uint16", 10, 20},
	{"uint32", 2024, 748},
	{"uint32", 3392079986, 2080089626},
	{"uint64", 1 << 40, 3 << 38},
}

func main() {
	var out, pkg string
	flag.StringVar(&out, "out", "width_gen.go", "The file to write")
	flag.StringVar(&pkg, "package", "gcd", "The package name of the generated file")
	flag.Parse()

	src, err := render(pkg)
	if err != nil {
		log.Fatalf("failed to render: %v", err)
	}

	// Get the path relative to where the command is being run.
	path, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	dest := filepath.Join(path, out)
	if err := os.WriteFile(dest, src, 0644); err != nil {
		log.Fatalf("failed to write file to %s: %v", dest, err)
	}
}

func render(pkg string) ([]byte, error) {
	t, err := template.New("width").Parse(widthTmpl)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data{
		Package:   pkg,
		Widths:    widths,
		Constants: constants(),
	}); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}

	return src, nil
}

func constants() []constant {
	res := make([]constant, len(pairs))
	for i, p := range pairs {
		res[i] = constant{
			Name:  fmt.Sprintf("GCDOf%dAnd%d", p.a, p.b),
			Type:  p.typ,
			Value: internal.GCD(p.a, p.b),
		}
	}

	return res
}
