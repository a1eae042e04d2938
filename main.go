// Public domain.

package main

import "github.com/soniakeys/snflog/internal/snfprog"

func main() {
	snfprog.Main()
}
