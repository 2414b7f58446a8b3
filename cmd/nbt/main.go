// Command nbt reads, converts, and prints Named Binary Tag data: binary
// NBT in any of the three wire dialects can be read from a file or stdin
// and re-emitted as binary NBT, SNBT, or JSON (spec §6 "CLI surface").
// SNBT text is not accepted as input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/peterbourgon/ff/v3"

	"github.com/oakenshield/nbt"
	"github.com/oakenshield/nbt/format"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))

	fs := flag.NewFlagSet("nbt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		flEndian      = fs.String("endian", "", "wire endian dialect to read under: big, little, little-varint (default: auto-detect)")
		flCompression = fs.String("compression", "", "compression scheme to read under: none, gzip, zlib, raw-deflate (default: auto-detect)")
		flRootName    = fs.String("root-name", "", "root name policy to read under: present, absent (default: auto-detect)")
		flBedrock     = fs.Int("bedrock", -1, "Bedrock level header version to read/write; -1 means no header")
		flNBT         = fs.Bool("nbt", false, "emit binary NBT under --out-endian (default: big)")
		flJSON        = fs.Bool("json", false, "emit JSON text")
		flOutEndian   = fs.String("out-endian", "big", "wire endian dialect to write under, with --nbt: big, little, little-varint")
		flSpace       = fs.Int("space", 0, "SNBT/JSON indentation width in spaces")
		flDebug       = fs.Bool("debug", false, "enable debug logging")
	)
	fs.Bool("snbt", false, "emit SNBT text (the default when neither --nbt nor --json is given)")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("NBT")); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		level.Error(logger).Log("msg", "parsing flags", "err", err)
		return 1
	}

	if *flDebug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	inputPath := "-"
	if fs.NArg() > 0 {
		inputPath = fs.Arg(0)
	}

	raw, err := readInput(inputPath, stdin)
	if err != nil {
		level.Error(logger).Log("msg", "reading input", "path", inputPath, "err", err)
		return 1
	}

	opts, err := readOptionsFromFlags(*flEndian, *flCompression, *flRootName, *flBedrock)
	if err != nil {
		level.Error(logger).Log("msg", "resolving read options", "err", err)
		return 1
	}

	tree, err := nbt.Read(raw, opts...)
	if err != nil {
		level.Error(logger).Log("msg", "decoding nbt", "err", err)
		return 1
	}
	level.Debug(logger).Log("msg", "decoded root", "endian", tree.Envelope.Endian, "compression", tree.Envelope.Compression)

	switch {
	case *flNBT:
		return writeNBTForm(tree, *flOutEndian, *flBedrock, stdout, logger)
	case *flJSON:
		return writeJSONForm(tree.Root, *flSpace, stdout, logger)
	default:
		return writeSNBTForm(tree.Root, *flSpace, stdout, logger)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func readOptionsFromFlags(endian, compression, rootName string, bedrock int) ([]nbt.ReadOption, error) {
	var opts []nbt.ReadOption

	if endian != "" {
		e, err := parseEndian(endian)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nbt.WithReadEndian(e))
	}

	if compression != "" {
		c, err := parseCompression(compression)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nbt.WithReadCompression(c))
	}

	switch rootName {
	case "":
	case "present":
		opts = append(opts, nbt.WithReadRootName(true))
	case "absent":
		opts = append(opts, nbt.WithReadRootName(false))
	default:
		return nil, fmt.Errorf("nbt: --root-name must be %q or %q, got %q", "present", "absent", rootName)
	}

	if bedrock >= 0 {
		opts = append(opts, nbt.WithReadBedrock(true))
	}

	return opts, nil
}

func parseEndian(s string) (format.Endian, error) {
	switch s {
	case "big":
		return format.Big, nil
	case "little":
		return format.Little, nil
	case "little-varint":
		return format.LittleVarint, nil
	default:
		return 0, fmt.Errorf("nbt: unrecognized endian dialect %q", s)
	}
}

func parseCompression(s string) (format.Compression, error) {
	switch s {
	case "none":
		return format.None, nil
	case "gzip":
		return format.Gzip, nil
	case "zlib":
		return format.Zlib, nil
	case "raw-deflate":
		return format.RawDeflate, nil
	default:
		return 0, fmt.Errorf("nbt: unrecognized compression scheme %q", s)
	}
}

func writeNBTForm(tree nbt.EnvelopedTree, outEndian string, bedrock int, stdout io.Writer, logger log.Logger) int {
	e, err := parseEndian(outEndian)
	if err != nil {
		level.Error(logger).Log("msg", "resolving write endian", "err", err)
		return 1
	}

	writeOpts := []nbt.WriteOption{nbt.WithWriteEndian(e)}
	if bedrock >= 0 {
		writeOpts = append(writeOpts, nbt.WithWriteBedrock(nbt.Int32Ptr(int32(bedrock))))
	}

	out, err := nbt.Write(tree, writeOpts...)
	if err != nil {
		level.Error(logger).Log("msg", "encoding nbt", "err", err)
		return 1
	}

	if _, err := stdout.Write(out); err != nil {
		level.Error(logger).Log("msg", "writing output", "err", err)
		return 1
	}

	return 0
}

func writeSNBTForm(root any, space int, stdout io.Writer, logger log.Logger) int {
	text, err := nbt.Stringify(root, nbt.WithIndentSpaces(space))
	if err != nil {
		level.Error(logger).Log("msg", "stringifying snbt", "err", err)
		return 1
	}

	fmt.Fprintln(stdout, text)

	return 0
}

func writeJSONForm(root any, space int, stdout io.Writer, logger log.Logger) int {
	text, err := toJSON(root, space)
	if err != nil {
		level.Error(logger).Log("msg", "converting to json", "err", err)
		return 1
	}

	fmt.Fprintln(stdout, text)

	return 0
}
