package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/devraulu/wordlegen/pkg/config"
	"github.com/devraulu/wordlegen/pkg/logger"
	"github.com/devraulu/wordlegen/pkg/scraper"
	"github.com/devraulu/wordlegen/pkg/storage"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

type wordScraper interface {
	Scrape(ctx context.Context, wordLength int) ([]string, error)
}

type options struct {
	configPath    string
	outputDir     string
	outputFileFmt string
	verbose       bool
	silent        bool
	wordLength    int
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: couldn't load config: %v\n", err)
		os.Exit(exitFailure)
	}
	opts.apply(cfg)

	log := logger.InitLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	s := scraper.New(cfg, scraper.WithLogger(log))
	store := storage.NewFileStorage(cfg.Output, log)

	code := run(ctx, opts.wordLength, s, store, log)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, wordLength int, s wordScraper, store storage.Storage, log *slog.Logger) int {
	words, err := s.Scrape(ctx, wordLength)
	if err != nil {
		logger.Critical(log, "error scraping", slog.Int("word_length", wordLength), slog.Any("err", err))
		logger.Critical(log, "Abort wordlegen")
		return exitFailure
	}

	if _, err := store.SaveWords(ctx, wordLength, words); err != nil {
		var we *storage.WriteError
		if errors.As(err, &we) {
			logger.Critical(log, "error writing file to filesystem", slog.String("path", we.Path), slog.Any("err", we.Err))
		} else {
			logger.Critical(log, "error saving words", slog.Any("err", err))
		}
		logger.Critical(log, "Abort wordlegen")
		return exitFailure
	}

	log.Info("file generation is successful")
	return 0
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("wordlegen", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wordlegen [flags] WORD_LENGTH")
		fmt.Fprintln(fs.Output(), "Retrieve french words of WORD_LENGTH characters and store them in a file, one lowercase word per line.")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", "", "path to a TOML configuration file")
	fs.StringVar(&opts.outputDir, "outputdir", "", "output directory to generate txt file (default \".\")")
	fs.StringVar(&opts.outputDir, "o", "", "shorthand for -outputdir")
	fs.StringVar(&opts.outputFileFmt, "outputfilefmt", "", "output filename format, {} is replaced by WORD_LENGTH (default \"words_{}_fr.txt\")")
	fs.StringVar(&opts.outputFileFmt, "f", "", "shorthand for -outputfilefmt")
	fs.BoolVar(&opts.verbose, "verbose", false, "print more output")
	fs.BoolVar(&opts.verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&opts.silent, "silent", false, "print no output (ignore verbose)")
	fs.BoolVar(&opts.silent, "s", false, "shorthand for -silent")

	// flag stops at the first positional argument, so keep parsing after
	// each one to accept options on both sides of WORD_LENGTH.
	var positional []string
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return nil, err
		}
	}

	if len(positional) != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one WORD_LENGTH argument")
	}

	n, err := strconv.Atoi(positional[0])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid WORD_LENGTH %q: %w", positional[0], scraper.ErrInvalidWordLength)
	}
	opts.wordLength = n

	return opts, nil
}

func (o *options) apply(cfg *config.Config) {
	if o.outputDir != "" {
		cfg.Output.Dir = o.outputDir
	}
	if o.outputFileFmt != "" {
		cfg.Output.FilenameFormat = o.outputFileFmt
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if o.silent {
		cfg.Logging.Silent = true
	}
}
