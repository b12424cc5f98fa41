// Command facadegen writes the package-level check wrappers shared by the
// validation, invariant and nonretryable packages. Each package binds the
// same catalog to its own factory, so the wrappers are rendered from one
// template.
//
//	//go:generate go run ../internal/facadegen --package=validation --out=checks.go
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/pflag"
)

const header = "// Code generated by facadegen. DO NOT EDIT.\n\n"

//go:embed checks.go.tmpl
var checksTemplate string

var tmpl = template.Must(template.New("checks").Parse(checksTemplate))

// Facades lists the packages rendered from the template.
var Facades = []string{"validation", "invariant", "nonretryable"}

func render(pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("facadegen: package name is required")
	}
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, struct{ Package string }{pkg}); err != nil {
		return nil, fmt.Errorf("facadegen: render %s: %w", pkg, err)
	}
	return buf.Bytes(), nil
}

func run(args []string) error {
	fs := pflag.NewFlagSet("facadegen", pflag.ContinueOnError)
	pkg := fs.String("package", os.Getenv("GOPACKAGE"), "package name of the generated file")
	out := fs.String("out", "checks.go", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, err := render(*pkg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		return fmt.Errorf("facadegen: write %s: %w", *out, err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
