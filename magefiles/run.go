//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

const sampleScene = "testbed/assets/scene.toml"

// Builds and runs the testbed against the sample scene.
func (Run) Testbed() error {
	mg.Deps(Build.Testbed)
	fmt.Println("Run testbed...")
	if _, err := executeCmd("bin/acid", withArgs(sampleScene), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the testbed and reloads the sample scene whenever it changes.
func (Run) Watch() error {
	mg.Deps(Build.Testbed)
	fmt.Println("Watching scene...")
	if _, err := executeCmd("bin/acid", withArgs("-watch", sampleScene), withStream()); err != nil {
		return err
	}
	return nil
}
