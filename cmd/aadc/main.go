// Command aadc aligns misaligned right-hand borders in ASCII/Unicode
// box-drawing diagrams embedded in plain-text documents.
package main

import "os"

func main() {
	os.Exit(Execute())
}
