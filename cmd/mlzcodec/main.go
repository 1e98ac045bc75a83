// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

// Command mlzcodec drives the mlz codec end to end: encode a file to an
// MLZ bit stream (one byte per bit) and decode it back.
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/woozymasta/mlz"
)

// maxCodeBits upper-bounds bits per code (spec codeBitMax); used only to
// size the encoder's scratch BitSink, never transmitted.
const maxCodeBits = 15

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	logger := logrus.New()

	root := &cobra.Command{
		Use:           "mlzcodec",
		Short:         "Encode/decode files with the MLZ masked dictionary codec",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log codec errors at debug level too")

	root.AddCommand(newEncodeCmd(logger), newDecodeCmd(logger))
	return root
}

func newEncodeCmd(logger *logrus.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "encode <input-file>",
		Short: "Encode a file with mask width 0 (plain byte stream)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			mask := make([]byte, len(input))
			enc := mlz.NewEncoder(&mlz.Options{Context: mlz.NewContext(logger)})
			sink := mlz.NewSliceBitSink(len(input)*maxCodeBits + 64)
			n, err := enc.Encode(input, mask, sink)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if out == "" {
				out = args[0] + ".mlz"
			}
			if err := writeBitStream(out, sink.Bits(), len(input)); err != nil {
				return err
			}

			fmt.Printf("encoded %d input bytes into %d bits -> %s\n", len(input), n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: <input>.mlz)")
	return cmd
}

func newDecodeCmd(logger *logrus.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "decode <input-file.mlz>",
		Short: "Decode a stream produced by the encode subcommand",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			bits, size, err := readBitStream(args[0])
			if err != nil {
				return err
			}

			dec := mlz.NewDecoder(&mlz.Options{Context: mlz.NewContext(logger)})
			dst := make([]byte, size)
			src := mlz.NewSliceBitSource(bits)
			n, err := dec.Decompress(src, size, dst)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if out == "" {
				out = args[0] + ".out"
			}
			if err := os.WriteFile(out, dst[:n], 0o644); err != nil {
				return err
			}

			fmt.Printf("decoded %d bits into %d bytes -> %s\n", len(bits), n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: <input>.out)")
	return cmd
}

// writeBitStream packs bits (one byte per bit, as produced by a
// mlz.SliceBitSink) eight to an octet and writes [uint32 decodedSize]
// [uint32 bitCount] [packed bits] to path. The codec itself never sees
// packed octets; packing is this command's job as the "surrounding packer"
// the spec's bit-per-byte contract anticipates.
func writeBitStream(path string, bits []byte, decodedSize int) error {
	packed := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			packed[i/8] |= 1 << uint(i%8)
		}
	}

	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(decodedSize))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(bits)))

	return os.WriteFile(path, append(header, packed...), 0o644)
}

// readBitStream reverses writeBitStream, unpacking octets back into the
// one-byte-per-bit representation mlz.SliceBitSource expects.
func readBitStream(path string) (bits []byte, decodedSize int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	if len(data) < 8 {
		return nil, 0, fmt.Errorf("mlzcodec: truncated stream header in %s", path)
	}

	decodedSize = int(binary.LittleEndian.Uint32(data[0:4]))
	bitCount := int(binary.LittleEndian.Uint32(data[4:8]))
	packed := data[8:]

	bits = make([]byte, bitCount)
	for i := range bits {
		if packed[i/8]&(1<<uint(i%8)) != 0 {
			bits[i] = 1
		}
	}

	return bits, decodedSize, nil
}
