// Command formbind generates and checks form bindings.
//
//	formbind gen      write BindingFields methods for configured struct types
//	formbind analyze  show how the fields of struct types bind
//	formbind check    compare a struct with the controls of an HTML form
//	formbind init     write a starter manifest
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
