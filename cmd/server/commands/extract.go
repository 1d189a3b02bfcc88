package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pdf-text-extractor/internal/config"
	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/pkg/logger"

	"github.com/spf13/cobra"
)

func newExtractCommand(flags *serverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Extract text from a local PDF and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, flags, args[0])
		},
	}
}

func runExtract(cmd *cobra.Command, flags *serverFlags, path string) error {
	cfg := loadConfig(cmd, flags)

	// stdout carries the extracted text, so logs go to stderr.
	appLogger := logger.NewLoggerWithWriter(cfg.GetLogLevel(), cfg.GetLogFormat(), cmd.ErrOrStderr())
	container, err := config.NewContainerWithConfig(cfg, appLogger)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := container.PDFService.ExtractText(ctx, &domain.PDFDocument{
		Reader:   f,
		Filename: filepath.Base(path),
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), result.Text)
	return err
}
