package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lixi-remit/lixi-landing/config"
	"github.com/lixi-remit/lixi-landing/domain/waitlist"
	"github.com/lixi-remit/lixi-landing/internal/export"
	"github.com/lixi-remit/lixi-landing/internal/log"
)

const exportTimeout = 2 * time.Minute

type exportOptions struct {
	Output string
	Upload bool
}

// uploader is the part of export.ObjectStore the command needs.
type uploader interface {
	EnsureBucket(ctx context.Context) error
	UploadCSV(ctx context.Context, key string, data []byte) (string, error)
}

func parseExportFlags(args []string, stderr io.Writer) (exportOptions, error) {
	var opts exportOptions

	fs := flag.NewFlagSet("export-waitlist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Output, "o", "", "write the CSV to this file instead of stdout")
	fs.BoolVar(&opts.Upload, "upload", false, "upload the CSV to the configured MinIO bucket")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func runExportWaitlist(ctx context.Context, logger *log.Logger, args []string, stdout, stderr io.Writer) error {
	opts, err := parseExportFlags(args, stderr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	var store uploader
	if opts.Upload {
		objectStore := config.NewObjectStoreOrNil(logger)
		if objectStore == nil {
			return errors.New("--upload requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY")
		}
		store = objectStore
	}

	db, err := config.OpenDatabase(ctx, logger, nil)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db, logger)

	var (
		rows     int
		location string
	)
	err = writeOutput(opts.Output, stdout, func(out io.Writer) error {
		var exportErr error
		rows, location, exportErr = exportWaitlist(ctx, waitlist.NewGormRepository(db), out, store, time.Now())
		return exportErr
	})
	if err != nil {
		return err
	}

	logger.Info("Waitlist exported", "rows", rows, "output", opts.Output, "uploaded_to", location)
	return nil
}

// writeOutput runs write against stdout, or against a new file at path whose
// Close error is reported.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// exportWaitlist writes the CSV to out and, when store is set, uploads the
// same bytes. It returns the row count and the upload location.
func exportWaitlist(ctx context.Context, src export.EntrySource, out io.Writer, store uploader, now time.Time) (int, string, error) {
	var buf bytes.Buffer

	rows, err := export.Export(ctx, src, &buf)
	if err != nil {
		return 0, "", err
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return 0, "", fmt.Errorf("write csv: %w", err)
	}

	if store == nil {
		return rows, "", nil
	}

	if err := store.EnsureBucket(ctx); err != nil {
		return rows, "", err
	}

	location, err := store.UploadCSV(ctx, export.ObjectKey(now), buf.Bytes())
	if err != nil {
		return rows, "", err
	}

	return rows, location, nil
}
