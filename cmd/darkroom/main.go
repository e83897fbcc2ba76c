package main

import (
	"fmt"
	"log"
	"os"

	"github.com/darkroomlab/darkroom/internal/shell"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("darkroom %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("darkroom - interactive raster image processing shell")
			fmt.Println()
			fmt.Println("Usage: darkroom [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DARKROOM_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("The shell reads commands from stdin, one per line.")
			fmt.Println("Type 'help' inside the shell for the command list.")
			return
		}
	}

	// Command output goes to stdout; diagnostics go to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("DARKROOM_LOG_LEVEL") == "debug" {
		log.Printf("darkroom v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	fmt.Println("darkroom - type 'help' for commands, 'quit' to exit")
	sh := shell.New(os.Stdout)
	if err := sh.Run(os.Stdin); err != nil {
		log.Fatalf("Shell error: %v", err)
	}
}
