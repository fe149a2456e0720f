// Command lzip compresses and decompresses files using a length-limited
// canonical Huffman code over the 256 possible byte values.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scu-dev/Lzip/container"
)

func main() {
	err := rootCmd().Execute()
	if err == nil {
		return
	}

	var cerr *container.Error
	if errors.As(err, &cerr) && cerr.Kind == container.UserCancelled {
		fmt.Println(err)
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
