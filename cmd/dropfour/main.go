// Package main is the entry point for dropfour, a terminal Connect Four.
package main

func main() {
	Execute()
}
