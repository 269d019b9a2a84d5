/*
File    : rexxcore/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for rexxcore. It provides three modes of
operation:
1. REPL mode (default): interactive read-eval-print loop
2. File mode: execute a REXX source file from the command line
3. Server mode: a TCP REPL server, one session per connection
*/
package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/akashmaji946/rexxcore/interp"
	"github.com/akashmaji946/rexxcore/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the rexxcore interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "rexx >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ____  _______  ____   ___  ___  ____  ____
|  _ \| ____\ \/ /\ \ / / |/ _ \|  _ \|  _ \
| |_) |  _|  \  /  \ V /| | | | | |_) | |_) |
|  _ <| |___ /  \   | | | | |_| |  _ <|  __/
|_| \_\_____/_/\_\  |_| |_|\___/|_| \_\_|
`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Usage:
//
//	rexx                  - start in REPL (interactive) mode
//	rexx <filename>       - execute the named REXX source file
//	rexx server <port>    - start a REPL server on the given TCP port
//	rexx --help           - display help information
//	rexx --version        - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: rexx server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("rexxcore - a REXX-flavored interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  rexx                      Start interactive REPL mode")
	fmt.Println("  rexx <path-to-file>       Execute a REXX file (.rexx)")
	fmt.Println("  rexx server <port>        Start a REPL server on the given port")
	fmt.Println("  rexx --help               Display this help message")
	fmt.Println("  rexx --version            Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	fmt.Println("  .exit                     Exit the REPL")
	fmt.Println("  .vars                     List bound variables")
	fmt.Println("  .reset                    Clear variable and ADDRESS state")
}

func showVersion() {
	cyanColor.Println("rexxcore - a REXX-flavored interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName, loads an adjacent rexxcore.yaml if present, and
// runs the program to completion.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	it := interp.New(os.Stdout, os.Stdin)
	applyConfigNextTo(it, fileName)

	if err := it.RunFile(string(source)); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// applyConfigNextTo loads rexxcore.yaml from the same directory as
// fileName, if one exists, silently doing nothing otherwise — the config
// file is optional ambient configuration, not a required companion.
func applyConfigNextTo(it *interp.Interpreter, fileName string) {
	cfgPath := filepath.Join(filepath.Dir(fileName), "rexxcore.yaml")
	if _, err := os.Stat(cfgPath); err != nil {
		return
	}
	cfg, err := interp.LoadConfig(cfgPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		return
	}
	it.ApplyConfig(cfg)
}

// startServer listens on port and hands each accepted connection its own
// REPL session, reusing the in-process REPL exactly as a local session
// would, one goroutine per connection.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("rexxcore REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
