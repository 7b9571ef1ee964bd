// Package main provides the CLI entrypoint for termcfg.
package main

func main() {
	Execute()
}
