//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

func Build() error {
	mg.Deps(BuildEvmWriter)
	fmt.Println("Compilation finished")
	return nil
}

func cgoEnv() []string {
	return append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", os.Getenv("CGO_LDFLAGS")),
		fmt.Sprintf("CGO_CFLAGS=%s", os.Getenv("CGO_CFLAGS")))
}

func BuildEvmWriter() error {
	fmt.Println("Building evmwriter executable...")
	cmd := exec.Command("go", "build", "-o", "./bin/evmwriter", "./evmwriter")
	cmd.Env = cgoEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Test runs the unit tests. The h5writer package needs libhdf5.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Env = cgoEnv()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
