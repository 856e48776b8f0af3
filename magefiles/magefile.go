//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
var Default = Test

// Runs go vet on every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Runs the test suite with the race detector.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "-race", "./...")
}

// Runs the packing benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", "Pack", "./text/atlas/")
}

type Demo mg.Namespace

// Renders the sample line to out.png with the built-in font.
func (Demo) Line() error {
	fmt.Println("Rendering out.png...")
	return sh.RunV("go", "run", "./cmd/glyphatlas", "--text", "The quick brown fox")
}

// Packs printable ASCII into atlas.png.
func (Demo) Atlas() error {
	fmt.Println("Packing atlas.png...")
	return sh.RunV("go", "run", "./cmd/glyphatlas",
		"--text", "",
		"--alphabet", "![a-zA-Z]~",
		"--atlas-out", "atlas.png",
		"--oversampling", "2")
}
