// Command desfile encrypts or decrypts a single 8-byte block with DES,
// reading the key and data from files and writing the result to a file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	v "github.com/asaskevich/govalidator"
	"github.com/feistel-lab/des/cipher/des"
	"github.com/feistel-lab/des/errors"
	"github.com/spf13/cobra"
)

// config is the validated shape of the CLI's flags. BlockCipher has no
// config object of its own, so this struct fills the role Config fills
// for a cipher context elsewhere in this lineage: a single place that
// validates before the core is ever invoked.
type config struct {
	Encrypt  bool
	Decrypt  bool
	KeyFile  string `valid:"required"`
	DataFile string `valid:"required"`
	Output   string
	Quiet    bool
}

func (c *config) direction() (encrypt bool, err error) {
	switch {
	case c.Encrypt && c.Decrypt:
		return false, errors.ErrMutuallyExclusiveFlags
	case !c.Encrypt && !c.Decrypt:
		return false, errors.ErrMissingDirection
	default:
		return c.Encrypt, nil
	}
}

func main() {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "desfile",
		Short: "Encrypt or decrypt a single 8-byte block with DES",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&cfg.Encrypt, "encrypt", "e", false, "encrypt the data file")
	flags.BoolVarP(&cfg.Decrypt, "decrypt", "d", false, "decrypt the data file")
	flags.StringVarP(&cfg.KeyFile, "key-file", "k", "", "path to the key file (16 hex chars + newline)")
	flags.StringVarP(&cfg.DataFile, "data-file", "f", "", "path to the input data file (8 bytes)")
	flags.StringVarP(&cfg.Output, "output", "o", "", "path to the output file (default: <data file>.out)")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress diagnostic logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config) error {
	logger := newLogger(cfg.Quiet)

	if cfg.KeyFile == "" {
		return errors.ErrMissingKeyFile
	}
	if cfg.DataFile == "" {
		return errors.ErrMissingDataFile
	}

	ok, err := v.ValidateStruct(cfg)
	if err != nil {
		return errors.Annotate(err, "validating flags: %w")
	}
	if !ok {
		return fmt.Errorf("invalid flags: %+v", cfg)
	}

	encrypt, err := cfg.direction()
	if err != nil {
		return err
	}

	key, err := loadKeyFile(cfg.KeyFile)
	if err != nil {
		return errors.Annotate(err, "loading key file: %w")
	}
	logger.Info("loaded key file", "path", cfg.KeyFile)

	data, err := loadDataFile(cfg.DataFile)
	if err != nil {
		return errors.Annotate(err, "loading data file: %w")
	}
	logger.Info("loaded data file", "path", cfg.DataFile)

	cipher := des.NewDES()
	ctx := context.Background()
	if err := cipher.SetKey(ctx, key); err != nil {
		return errors.Annotate(err, "setting key: %w")
	}

	var result []byte
	if encrypt {
		result, err = cipher.Encrypt(ctx, data)
		logger.Info("encrypting block")
	} else {
		result, err = cipher.Decrypt(ctx, data)
		logger.Info("decrypting block")
	}
	if err != nil {
		return errors.Annotate(err, "transforming block: %w")
	}

	outputPath := cfg.Output
	if outputPath == "" {
		outputPath = cfg.DataFile + ".out"
	}

	if err := os.WriteFile(outputPath, result, 0o644); err != nil {
		return errors.Annotate(err, "writing output file: %w")
	}
	logger.Info("wrote output file", "path", outputPath)

	return nil
}

// newLogger returns a slog.Logger that writes to stderr, or discards
// everything when quiet is true — the single choke point -q routes
// through, instead of an if-quiet check at every call site.
func newLogger(quiet bool) *slog.Logger {
	if quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// loadKeyFile reads a key file: exactly 16 hex characters followed by a
// newline.
func loadKeyFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(raw) != des.KeySize*2+1 || raw[len(raw)-1] != '\n' {
		return nil, errors.ErrInvalidKeyFileFormat
	}

	return des.DecodeKey(string(raw[:len(raw)-1]))
}

// loadDataFile reads a data file: exactly one 8-byte DES block.
func loadDataFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(raw) != des.BlockSize {
		return nil, errors.ErrInvalidDataFileSize
	}

	return raw, nil
}
