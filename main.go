package main

import "github.com/mordilloSan/ddlog/cmd"

// Usage: ./ddlog [logfile] [--level info] [--color]
func main() {
	cmd.Execute()
}
