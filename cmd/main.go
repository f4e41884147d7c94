package main

import (
	"log"
	"os"
	"runtime"
)

func init() {
	// GL contexts are bound to the thread that made them current.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v\n", err)
		os.Exit(1)
	}
}
