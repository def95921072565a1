//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var binaries = []string{"findduplicates", "translatedict"}

// Default target to run when none is specified
var Default = Build

// Build compiles both commands into ./bin
func Build() error {
	mg.Deps(Vet)
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	for _, name := range binaries {
		fmt.Printf("Building %s...\n", name)
		if err := sh.RunV("go", "build", "-o", filepath.Join("bin", name), "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs both commands into GOPATH/bin
func Install() error {
	for _, name := range binaries {
		if err := sh.RunV("go", "install", "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
