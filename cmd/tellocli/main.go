// main.go

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command tellocli flies a Tello from the keyboard.
//
// Connect to the drone's Wi-Fi access point first, then run it in a terminal.
// There are no options; diagnostics go to tellocli.log in the temp directory
// because the screen belongs to the status display.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/SMerrony/tellocli/control"
	"github.com/SMerrony/tellocli/tello"
	"github.com/SMerrony/tellocli/terminal"
)

const logName = "tellocli.log"

func main() {
	logFile, err := os.OpenFile(filepath.Join(os.TempDir(), logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tellocli: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	err = run()
	logFile.Close()
	if err != nil {
		// the terminal has been restored by now
		fmt.Fprintf(os.Stderr, "tellocli: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal and the drone link; both are released on every way out.
func run() error {
	drone, err := tello.Dial(tello.DefaultAddr, tello.DefaultLocalPort)
	if err != nil {
		return err
	}
	defer drone.Close()

	term, err := terminal.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	log.Printf("Starting, drone at %s, local %s\n", tello.DefaultAddr, drone.LocalAddr())
	if err := control.New(drone, term, term).Run(); err != nil {
		log.Printf("Run aborted - %v\n", err)
		return err
	}
	log.Println("Exited normally")
	return nil
}
