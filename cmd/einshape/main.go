// Package main provides the einshape plan inspector CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google-deepmind/einshape"
)

const version = "v0.0.1-dev"

const usage = `Usage: einshape EQUATION SHAPE [INDEX=SIZE ...]

Compiles a shape equation against an input shape and prints the
optimized op plan.

  EQUATION    a shape equation, e.g. 'n(hw)c->nhwc'
  SHAPE       comma-separated input dimensions, e.g. 2,64,3
  INDEX=SIZE  size hint for an index the shape alone cannot fix

Example:
  einshape 'n(hw)c->nhwc' 2,64,3 h=8
`

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("einshape %s\n", version)
		return
	}
	if len(os.Args) < 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	equation := os.Args[1]
	shape, err := parseShape(os.Args[2])
	if err != nil {
		fatal(err)
	}
	sizes, err := parseSizes(os.Args[3:])
	if err != nil {
		fatal(err)
	}

	ops, err := einshape.Compile(equation, shape, sizes)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s on %s\n", equation, shape)
	if len(ops) == 0 {
		fmt.Println("  (no ops needed)")
	}
	out := shape
	for _, op := range ops {
		out = op.TransformShape(out)
		fmt.Printf("  %s -> %s\n", op, out)
	}
}

func parseShape(s string) (einshape.Shape, error) {
	if s == "" {
		return einshape.Shape{}, nil
	}
	var shape einshape.Shape
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad dimension %q in shape %q", part, s)
		}
		shape = append(shape, einshape.Known(n))
	}
	return shape, nil
}

func parseSizes(args []string) (einshape.Sizes, error) {
	if len(args) == 0 {
		return nil, nil
	}
	sizes := einshape.Sizes{}
	for _, arg := range args {
		index, value, ok := strings.Cut(arg, "=")
		if !ok || len(index) != 1 {
			return nil, fmt.Errorf("bad size hint %q, want INDEX=SIZE", arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("bad size %q in hint %q", value, arg)
		}
		sizes[rune(index[0])] = einshape.Known(n)
	}
	return sizes, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "einshape:", err)
	os.Exit(1)
}
