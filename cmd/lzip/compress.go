package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"

	"github.com/scu-dev/Lzip/container"
	"github.com/scu-dev/Lzip/huffman"
	"github.com/scu-dev/Lzip/lzfile"
)

func compressCmd() *cobra.Command {
	var maxCodeLen uint8
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "c <input> [output]",
		Short: "Compress a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return runCompress(input, output, byte(maxCodeLen), chunkSize)
		},
	}
	cmd.Flags().Uint8Var(&maxCodeLen, "max-code-len", huffman.DefaultMaxCodeLen,
		fmt.Sprintf("maximum Huffman code length in bits, 1..%d", huffman.MaxCodeLen))
	cmd.Flags().IntVar(&chunkSize, "chunk-size", lzfile.ChunkSize,
		"streaming I/O unit in bytes")
	return cmd
}

func runCompress(inputFile, outputFile string, maxCodeLen byte, chunkSize int) error {
	start := time.Now()

	inputPath, err := lzfile.Normalize(inputFile)
	if err != nil {
		return fmt.Errorf("invalid input path %q: %w", inputFile, err)
	}

	if outputFile == "" {
		outputFile = inputFile + ".lzip"
	}
	outputPath, err := lzfile.Normalize(outputFile)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", outputFile, err)
	}

	if lzfile.Exists(outputPath) {
		proceed, err := promptOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !proceed {
			return &container.Error{Kind: container.UserCancelled, Msg: "overwrite declined for " + outputPath}
		}
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	if chunkSize <= 0 {
		chunkSize = lzfile.ChunkSize
	}
	totalChunks := int(info.Size()/int64(chunkSize)) + 1

	fmt.Println("counting byte frequencies")
	countBar := progressbar.New(totalChunks)
	onCount := func(chunkIndex int) { countBar.Add(1) }

	fmt.Println("writing compressed payload")
	encodeBar := progressbar.New(totalChunks)
	onEncode := func(chunkIndex int) { encodeBar.Add(1) }

	result, err := container.Compress(inputPath, outputPath, maxCodeLen, chunkSize, onCount, onEncode)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	ratio := 100.0
	if result.OriginalSize > 0 {
		ratio = float64(result.CompressedSize) / float64(result.OriginalSize) * 100.0
	}
	fmt.Printf("\ncompression complete, elapsed %d ms\noutput file: %s\ncompression ratio: %.2f%%\n",
		elapsed.Milliseconds(), outputPath, ratio)
	return nil
}

func promptOverwrite(path string) (bool, error) {
	fmt.Printf("output file %q already exists, overwrite? (y/n): ", path)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading overwrite confirmation: %w", err)
	}
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}
