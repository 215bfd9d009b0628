// Command bitmatch searches binary input for a bit pattern that need not be
// byte-aligned and reports the first match through its exit code.
//
// Usage:
//
//	bitmatch [flags] <pattern> <bits nr>
//
// where <pattern> is a sequence of hexadecimal digits and <bits nr> is the
// non-negative number of significant bits in the bit pattern. The haystack
// comes from stdin by default; --input selects a local file (memory-mapped)
// and --s3 selects an S3 object ("bucket/key"). zstd- and lz4-framed input
// is decompressed transparently unless --decompress says otherwise.
//
// Exit codes: 0 pattern found, 1 not found, 3 usage error, 4 invalid
// arguments, 6 I/O error.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/popov-nikita/bitmatch"
	"github.com/popov-nikita/bitmatch/blobstore"
	s3store "github.com/popov-nikita/bitmatch/blobstore/s3"
	"github.com/popov-nikita/bitmatch/input"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"
)

const (
	exitFound       = 0
	exitNotFound    = 1
	exitUsageErr    = 3
	exitInvalidArgs = 4
	exitIOErr       = 6
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("bitmatch", pflag.ContinueOnError)
	inputPath := flags.StringP("input", "i", "-", `Haystack file path; "-" reads stdin`)
	s3Object := flags.String("s3", "", `Haystack S3 object as "bucket/key"`)
	decompress := flags.String("decompress", "auto", "Input framing: auto, none, zstd or lz4")
	maxReadRate := flags.Int("max-read-rate", 0, "Read throughput cap in bytes/sec; 0 means unlimited")
	logLevel := flags.String("log-level", "error", "Log level: debug, info, warn or error")
	logJSON := flags.Bool("log-json", false, "Emit JSON-formatted logs")
	quiet := flags.BoolP("quiet", "q", false, "Suppress the verdict line; rely on the exit code")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr,
			"USAGE: bitmatch [flags] <pattern> <bits nr>\n"+
				"where\n"+
				"    <pattern> - sequence of hexadecimal digits\n"+
				"    <bits nr> - non-negative number of significant bits in the bit pattern\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return exitUsageErr
		}
		fmt.Fprintln(os.Stderr, err)
		return exitUsageErr
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return exitUsageErr
	}

	logger, err := newLogger(*logLevel, *logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInvalidArgs
	}

	bitCount, err := strconv.ParseInt(flags.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse the number of bits: %v\n", err)
		return exitInvalidArgs
	}

	pat, err := bitmatch.Compile(flags.Arg(0), int(bitCount), bitmatch.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse the bit sequence: %v\n", err)
		return exitInvalidArgs
	}

	ctx := context.Background()

	data, code := slurp(ctx, flags, *inputPath, *s3Object, *decompress, *maxReadRate)
	if code != 0 {
		return code
	}

	off, found := pat.Find(data)
	switch {
	case found && !*quiet:
		fmt.Printf("found at bit offset %d\n", off)
	case !found && !*quiet:
		fmt.Println("not found")
	}
	if found {
		return exitFound
	}
	return exitNotFound
}

// slurp materializes the haystack from whichever source was selected.
// It returns a non-zero exit code on failure.
func slurp(ctx context.Context, flags *pflag.FlagSet, inputPath, s3Object, decompress string, maxReadRate int) ([]byte, int) {
	if s3Object != "" && inputPath != "-" {
		fmt.Fprintln(os.Stderr, "--input and --s3 are mutually exclusive")
		flags.Usage()
		return nil, exitUsageErr
	}

	compression, auto, err := parseCompression(decompress)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, exitInvalidArgs
	}

	var limiter *rate.Limiter
	if maxReadRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(maxReadRate), maxReadRate)
	}

	raw, code := readSource(ctx, inputPath, s3Object, auto, compression, limiter)
	if code != 0 {
		return nil, code
	}
	return raw, 0
}

func readSource(ctx context.Context, inputPath, s3Object string, auto bool, compression input.Compression, limiter *rate.Limiter) ([]byte, int) {
	// Fast path: a plain local file with no reader pipeline needed is
	// memory-mapped and scanned in place.
	if s3Object == "" && inputPath != "-" && !auto && compression == input.CompressionNone && limiter == nil {
		return readLocal(ctx, inputPath)
	}

	var src io.Reader
	var cleanup func()

	switch {
	case s3Object != "":
		data, code := readS3(ctx, s3Object)
		if code != 0 {
			return nil, code
		}
		src = bytes.NewReader(data)
	case inputPath == "-":
		src = os.Stdin
	default:
		f, err := os.Open(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
			return nil, exitIOErr
		}
		src = f
		cleanup = func() { _ = f.Close() }
	}
	if cleanup != nil {
		defer cleanup()
	}

	src = input.NewThrottledReader(ctx, src, limiter)

	var decoded io.ReadCloser
	var err error
	if auto {
		decoded, _, err = input.NewAutoReader(src)
	} else {
		decoded, err = input.NewReader(src, compression)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}
	defer decoded.Close()

	data, err := input.ReadAll(decoded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}
	return data, 0
}

func readLocal(ctx context.Context, path string) ([]byte, int) {
	store := blobstore.NewLocalStore(filepath.Dir(path))
	blob, err := store.Open(ctx, filepath.Base(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}
	// The mapping stays open for the lifetime of the scan; the process
	// exits right after, so the pages are released with it.
	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}
	return data, 0
}

func readS3(ctx context.Context, object string) ([]byte, int) {
	bucket, key, ok := strings.Cut(object, "/")
	if !ok || bucket == "" || key == "" {
		fmt.Fprintf(os.Stderr, "Invalid S3 object %q: want \"bucket/key\"\n", object)
		return nil, exitInvalidArgs
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}

	store := s3store.NewStore(awss3.NewFromConfig(cfg), bucket, "")
	blob, err := store.Open(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		fmt.Fprintf(os.Stderr, "I/O error: %v\n", err)
		return nil, exitIOErr
	}
	return data, 0
}

func parseCompression(s string) (input.Compression, bool, error) {
	switch s {
	case "auto":
		return input.CompressionNone, true, nil
	case "none":
		return input.CompressionNone, false, nil
	case "zstd":
		return input.CompressionZSTD, false, nil
	case "lz4":
		return input.CompressionLZ4, false, nil
	default:
		return input.CompressionNone, false, fmt.Errorf("invalid --decompress value %q", s)
	}
}

func newLogger(level string, json bool) (*bitmatch.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid --log-level value %q", level)
	}
	if json {
		return bitmatch.NewJSONLogger(lvl), nil
	}
	return bitmatch.NewTextLogger(lvl), nil
}
