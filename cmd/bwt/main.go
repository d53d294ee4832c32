// Command bwt encodes or decodes a file with the Burrows-Wheeler Transform,
// with optional move-to-front coding of the transformed output.
//
// Usage:
//
//	bwt -c -i in -o out      encode (default mode)
//	bwt -d -i in -o out      decode
//	bwt -c -m -i in -o out   encode with move-to-front coding
//
// The CLI is a thin external collaborator around package codec: it parses
// flags, opens files, and wires them into codec.ForwardSize/codec.InverseSize
// (or codec.ForwardConcurrentSize). It carries none of the transform's logic
// itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/burrowswheeler/bwt/block"
	"github.com/burrowswheeler/bwt/codec"
)

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <options>\n\n", prog)
	fmt.Fprintln(os.Stderr, "options:")
	fmt.Fprintln(os.Stderr, "  -c            Encode input file to output file (default).")
	fmt.Fprintln(os.Stderr, "  -d            Decode input file to output file.")
	fmt.Fprintln(os.Stderr, "  -m            Perform move-to-front coding.")
	fmt.Fprintln(os.Stderr, "  -i <path>     Name of input file.")
	fmt.Fprintln(os.Stderr, "  -o <path>     Name of output file (default: stdout).")
	fmt.Fprintln(os.Stderr, "  -b <n>        Block size in bytes (default 4096).")
	fmt.Fprintln(os.Stderr, "  -j <n>        Worker count for encoding (default 1, sequential).")
	fmt.Fprintln(os.Stderr, "  -h, -?        Print this help.")
	fmt.Fprintf(os.Stderr, "\nDefault: %s -c\n", prog)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// -? is not a legal flag name for the standard flag package, so we
	// translate it before handing args to FlagSet.Parse, matching the
	// original CLI's "-h | ?" help alias.
	for i, a := range args {
		if a == "-?" {
			args[i] = "-h"
		}
	}

	fs := flag.NewFlagSet("bwt", flag.ContinueOnError)
	fs.Usage = usage
	var (
		encode  = fs.Bool("c", true, "encode (default)")
		decode  = fs.Bool("d", false, "decode")
		useMTF  = fs.Bool("m", false, "move-to-front coding")
		inPath  = fs.String("i", "", "input file")
		outPath = fs.String("o", "", "output file")
		blkSize = fs.Int("b", block.Size, "block size in bytes")
		workers = fs.Int("j", 1, "worker count")
	)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "Input file must be provided")
		fmt.Fprintf(os.Stderr, "Enter %q for help.\n", filepath.Base(os.Args[0])+" -?")
		return 1
	}
	if *blkSize <= 0 {
		fmt.Fprintln(os.Stderr, "Block size must be positive")
		return 1
	}

	in, err := os.Open(*inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	mode := *encode && !*decode
	if mode {
		if *workers > 1 {
			err = codec.ForwardConcurrentSize(in, out, *useMTF, *workers, *blkSize)
		} else {
			err = codec.ForwardSize(in, out, *useMTF, *blkSize)
		}
	} else {
		err = codec.InverseSize(in, out, *useMTF, *blkSize)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
