/*
File    : lox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lox interpreter. It provides
three modes of operation (spec.md §4.5, §6):

 1. REPL mode (default, no arguments): interactive read-eval-print loop.
 2. File mode ("-f <path>", spec.md §6): run one source file and exit.
 3. Server mode ("server <port>"): one REPL session per TCP connection,
    SPEC_FULL.md §10.3 — grounded directly on the teacher's startServer/
    handleClient (_examples/akashmaji946-go-mix/main/main.go).

Grounded on the teacher's main/main.go: same --help/--version handling,
same colored stderr diagnostics, same file-execution structure, extended
with an optional "-c <path>" YAML config flag (SPEC_FULL.md §10.4).
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/lox/config"
	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/repl"
	"github.com/fatih/color"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

var (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	prompt  = "|> "
	banner  = `
  ██▓     ▒█████  ▒██   ██▒
 ▓██▒    ▒██▒  ██▒▒▒ █ █ ▒░
 ▒██░    ▒██░  ██▒░░  █   ░
 ▒██░    ▒██   ██░ ░ █ █ ▒
 ░██████▒░ ████▓▒░▒██▒ ▒██▒
 ░ ▒░▓  ░░ ▒░▒░▒░ ▒▒ ░ ░▓ ░
 ░ ░ ▒  ░  ░ ▒ ▒░ ░░   ░▒ ░
   ░ ░   ░ ░ ░ ▒   ░    ░
     ░  ░    ░ ░   ░    ░
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	configPath := ""
	args = extractConfigFlag(args, &configPath)
	cfg := loadConfigOrDefault(configPath)
	color.NoColor = !cfg.ColorEnabled()

	if len(args) == 0 {
		runRepl(cfg, os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(exitOK)
	case "--version", "-v":
		showVersion()
		os.Exit(exitOK)
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: lox server <port>\n")
			os.Exit(exitUsage)
		}
		startServer(cfg, args[1])
	case "-f":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing path for -f. Usage: lox -f <path>\n")
			os.Exit(exitUsage)
		}
		os.Exit(runFile(args[1]))
	default:
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Unrecognized argument '%s'. Usage: lox -f <path>\n", args[0])
		os.Exit(exitUsage)
	}
}

// extractConfigFlag pulls the first "-c <path>" pair out of args, wherever
// it appears, returning the remaining arguments.
func extractConfigFlag(args []string, out *string) []string {
	for idx, a := range args {
		if a == "-c" && idx+1 < len(args) {
			*out = args[idx+1]
			rest := append([]string{}, args[:idx]...)
			rest = append(rest, args[idx+2:]...)
			return rest
		}
	}
	return args
}

func loadConfigOrDefault(path string) *config.Config {
	if path == "" {
		return &config.Config{Prompt: prompt, Banner: banner}
	}
	cfg, err := config.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] Could not read config '%s': %v\n", path, err)
		os.Exit(exitUsage)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = prompt
	}
	if cfg.Banner == "" {
		cfg.Banner = banner
	}
	return cfg
}

func showHelp() {
	cyanColor.Println("Lox - A Tree-Walking Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                        Start interactive REPL mode")
	yellowColor.Println("  lox -f <path>              Execute a Lox source file")
	yellowColor.Println("  lox server <port>          Start a REPL server on the given port")
	yellowColor.Println("  lox -c <config.yaml> ...   Use a YAML config file for prompt/banner")
	yellowColor.Println("  lox --help                 Display this help message")
	yellowColor.Println("  lox --version              Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL (EOF also exits)")
}

func showVersion() {
	cyanColor.Println("Lox - A Tree-Walking Interpreter")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

func runRepl(cfg *config.Config, in *os.File, out *os.File) {
	repler := repl.New(cfg.Banner, version, author, line, license, cfg.Prompt)
	repler.Start(in, out)
}

// runFile reads and executes one source file, returning the process exit
// code (spec.md §6: 0 clean, 65 lex/parse error, 70 runtime error).
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", path, err)
		return exitUsage
	}

	p := parser.New(string(source))
	program := p.Parse()

	if p.HasErrors() {
		for _, lexErr := range p.LexErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", lexErr.Error())
		}
		for _, parseErr := range p.Errors() {
			redColor.Fprintf(os.Stderr, "%s\n", parseErr.Error())
		}
		return exitCompile
	}

	interp := eval.New()
	if err := interp.Run(program); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.String())
		return exitRuntime
	}
	return exitOK
}

// startServer listens on port, spawning one REPL session per accepted
// connection (SPEC_FULL.md §10.3).
func startServer(cfg *config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(exitRuntime)
	}
	cyanColor.Printf("Lox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(cfg, conn)
	}
}

func handleClient(cfg *config.Config, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.New(cfg.Banner, version, author, line, license, cfg.Prompt)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
