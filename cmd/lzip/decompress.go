package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"

	"github.com/scu-dev/Lzip/container"
	"github.com/scu-dev/Lzip/lzfile"
)

func decompressCmd() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "d <input> [output]",
		Short: "Decompress a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return runDecompress(input, output, chunkSize)
		},
	}
	cmd.Flags().IntVar(&chunkSize, "chunk-size", lzfile.ChunkSize,
		"streaming I/O unit in bytes")
	return cmd
}

func runDecompress(inputFile, outputFile string, chunkSize int) error {
	start := time.Now()

	inputPath, err := lzfile.Normalize(inputFile)
	if err != nil {
		return fmt.Errorf("invalid input path %q: %w", inputFile, err)
	}

	if outputFile == "" {
		outputFile = inputFile
		if strings.HasSuffix(outputFile, ".lzip") {
			outputFile = outputFile[:len(outputFile)-len(".lzip")]
		}
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

	fmt.Println("decompressing payload")
	bar := progressbar.New(totalChunks)
	onChunk := func(chunkIndex int) { bar.Add(1) }

	if _, err := container.Decompress(inputPath, outputPath, chunkSize, onChunk); err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("\ndecompression complete, elapsed %d ms\noutput file: %s\n", elapsed.Milliseconds(), outputPath)
	return nil
}
