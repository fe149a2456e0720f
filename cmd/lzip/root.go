package main

import (
	"github.com/spf13/cobra"
)

const semanticVersion = "1.0.0"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lzip",
		Short:         "A length-limited canonical Huffman file compressor",
		Version:       semanticVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "show version information and exit")

	cmd.AddCommand(compressCmd())
	cmd.AddCommand(decompressCmd())
	return cmd
}
