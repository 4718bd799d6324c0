// Package main provides the entry point for the corpusrank CLI.
package main

func main() {
	Execute()
}
