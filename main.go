package main

import (
	"fmt"
	"os"

	"github.com/teneleven/advance/gui"
	"github.com/teneleven/advance/jukebox"
	"github.com/teneleven/advance/ui"
)

func main() {
	var endGui chan bool
	var endJukebox chan bool
	var resultGui chan error
	var resultJukebox chan error

	// buffered channels. this means we don't have to worry about the gui
	// closing before the jukebox and vice versa
	endGui = make(chan bool, 1)
	endJukebox = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and jukebox will end
	resultGui = make(chan error, 1)
	resultJukebox = make(chan error, 1)

	u := ui.NewUI().WithAudio()

	go func() {
		resultGui <- gui.Launch(endGui, u)
		endJukebox <- true
	}()

	go func() {
		resultJukebox <- jukebox.Launch(endJukebox, u, os.Args[1:])
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultJukebox; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
