package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/iamNilotpal/checksum/config"
	"github.com/iamNilotpal/checksum/internal/core/domain"
	"github.com/iamNilotpal/checksum/internal/core/services/checksum"
	"github.com/iamNilotpal/checksum/internal/serialize"
	errs "github.com/iamNilotpal/checksum/pkg/errors"
	"github.com/iamNilotpal/checksum/pkg/fs"
	"github.com/iamNilotpal/checksum/pkg/logger"
	"go.uber.org/zap"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitMismatch = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	config     string
	algorithm  string
	polynomial string
	order      string
	decompress string
	compress   string
	tee        string
	extension  string
	format     string
	verify     string
	logLevel   string
	parallel   bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, []string, map[string]bool, error) {
	f := &flags{}
	set := flag.NewFlagSet("cksum", flag.ContinueOnError)
	set.SetOutput(stderr)

	set.StringVar(&f.config, "config", "", "YAML configuration file")
	set.StringVar(&f.algorithm, "algo", "", "checksum algorithm (crc32-ieee, crc32-castagnoli, crc32-koopman, crc32-custom, adler32)")
	set.StringVar(&f.polynomial, "poly", "", "hex polynomial for crc32-custom, reversed form")
	set.StringVar(&f.order, "order", "", "bit order for crc32-custom (reflected, normal)")
	set.StringVar(&f.decompress, "decompress", "", "codec the inputs are compressed with (none, zstd, gzip, snappy)")
	set.StringVar(&f.compress, "compress", "", "codec used for the tee copy")
	set.StringVar(&f.tee, "tee", "", "write the checksummed payload to this file")
	set.StringVar(&f.extension, "ext", "", "only checksum files with this extension inside directories")
	set.StringVar(&f.format, "format", "", "output format (text, json, yaml, proto)")
	set.StringVar(&f.verify, "verify", "", "expected hex checksum of the single input")
	set.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	set.BoolVar(&f.parallel, "parallel", false, "checksum large files in parallel segments")

	if err := set.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	visited := map[string]bool{}
	set.Visit(func(fl *flag.Flag) { visited[fl.Name] = true })
	return f, set.Args(), visited, nil
}

// loadConfig reads the configuration file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig(f *flags, visited map[string]bool) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if visited["algo"] {
		cfg.Checksum.Algorithm = f.algorithm
	}
	if visited["poly"] {
		cfg.Checksum.Polynomial = f.polynomial
	}
	if visited["order"] {
		cfg.Checksum.BitOrder = f.order
	}
	if visited["decompress"] {
		cfg.Compression.Source = f.decompress
	}
	if visited["compress"] {
		cfg.Compression.Sink = f.compress
	}
	if visited["format"] {
		cfg.Output.Format = f.format
	}
	if visited["log-level"] {
		cfg.Logging.Level = f.logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	if cfg.Logging.Development {
		return logger.NewDevelopment("cksum"), nil
	}
	return logger.NewWithLevel("cksum", cfg.Logging.Level)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	f, paths, visited, err := parseFlags(args, stderr)
	if err != nil {
		return exitFailure
	}

	cfg, err := loadConfig(f, visited)
	if err != nil {
		fmt.Fprintf(stderr, "cksum: %v\n", err)
		return exitFailure
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "cksum: %v\n", err)
		return exitFailure
	}
	defer log.Sync()

	opts, err := cfg.ToOptions()
	if err != nil {
		log.Errorw("invalid options", "error", err)
		return exitFailure
	}

	service, err := checksum.New(opts, log)
	if err != nil {
		if ve := errs.AsValidationError(err); ve != nil {
			log.Errorw("create checksum service error", "field", ve.Field, "value", ve.Value, "error", ve.Err)
		} else {
			log.Errorw("create checksum service error", "error", err)
		}
		return exitFailure
	}

	if f.verify != "" {
		return verify(ctx, service, log, paths, f.verify)
	}

	var tee io.Writer
	if f.tee != "" {
		file, err := fs.NewLocalFileSystem().Create(f.tee)
		if err != nil {
			log.Errorw("create tee file error", "path", f.tee, "error", err)
			return exitFailure
		}
		defer file.Close()
		tee = file
	}

	results, err := sumAll(ctx, service, paths, stdin, tee, f.extension, f.parallel)
	if err != nil {
		log.Errorw("checksum error", "error", err)
		return exitFailure
	}

	report := &domain.Report{Algorithm: service.Algorithm(), Results: results}
	out, err := encodeReport(report, cfg.Output.Format)
	if err != nil {
		log.Errorw("encode report error", "format", cfg.Output.Format, "error", err)
		return exitFailure
	}

	if _, err := stdout.Write(out); err != nil {
		log.Errorw("write report error", "error", err)
		return exitFailure
	}
	return exitOK
}

func sumAll(
	ctx context.Context,
	service *checksum.Service,
	paths []string,
	stdin io.Reader,
	tee io.Writer,
	extension string,
	parallel bool,
) ([]*domain.Result, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	lfs := fs.NewLocalFileSystem()
	results := make([]*domain.Result, 0, len(paths))

	for _, path := range paths {
		if path == "-" {
			result, err := service.SumReader(ctx, stdin, tee)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
			continue
		}

		info, err := lfs.Stat(path)
		if err != nil {
			return nil, err
		}

		switch {
		case info.IsDir():
			tree, err := service.SumTree(ctx, path, extension)
			if err != nil {
				return nil, err
			}
			results = append(results, tree...)

		case parallel && tee == nil:
			result, err := service.SumFileParallel(ctx, path)
			if err != nil {
				return nil, err
			}
			results = append(results, result)

		default:
			result, err := service.SumFileTo(ctx, path, tee)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}

	return results, nil
}

func verify(ctx context.Context, service *checksum.Service, log *zap.SugaredLogger, paths []string, hex string) int {
	if len(paths) != 1 {
		log.Errorw("verify needs exactly one file", "files", len(paths))
		return exitFailure
	}

	expected, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(hex), "0x"), 16, 32)
	if err != nil {
		log.Errorw("invalid expected checksum", "value", hex, "error", err)
		return exitFailure
	}

	if err := service.Verify(ctx, paths[0], uint32(expected)); err != nil {
		if errors.Is(err, errs.ErrChecksumMismatch) {
			return exitMismatch
		}
		log.Errorw("verify error", "path", paths[0], "error", err)
		return exitFailure
	}

	log.Infow("checksum verified", "path", paths[0])
	return exitOK
}

func encodeReport(report *domain.Report, format string) ([]byte, error) {
	switch format {
	case "", "text":
		return serialize.MarshalText(report), nil
	case "json":
		b, err := serialize.MarshalJSON(report)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return serialize.MarshalYAML(report)
	case "proto":
		return serialize.MarshalProto(report), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
