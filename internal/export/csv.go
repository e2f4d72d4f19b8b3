// Package export renders the waitlist as CSV and ships it to object storage.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lixi-remit/lixi-landing/internal/models"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
)

var Header = []string{"id", "email", "name", "monthly_amount", "created_at"}

// EntrySource returns waitlist entries newest first.
type EntrySource interface {
	GetAllEntries(ctx context.Context) ([]*models.WaitlistEntry, error)
}

// WriteCSV writes the header plus one row per entry in the order given.
func WriteCSV(w io.Writer, entries []*models.WaitlistEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		amount := ""
		if entry.MonthlyAmount != nil {
			amount = *entry.MonthlyAmount
		}

		record := []string{
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Email,
			entry.Name,
			amount,
			entry.CreatedAt.UTC().Format(constants.RFC3339DateTimeFormat),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write entry %d: %w", entry.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Export loads every entry from src and writes it to w. It returns the number of rows.
func Export(ctx context.Context, src EntrySource, w io.Writer) (int, error) {
	entries, err := src.GetAllEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("export: load entries: %w", err)
	}

	if err := WriteCSV(w, entries); err != nil {
		return 0, err
	}

	return len(entries), nil
}

// ObjectKey names an export uploaded at t.
func ObjectKey(t time.Time) string {
	return "waitlist/waitlist-" + t.UTC().Format("20060102T150405Z") + ".csv"
}
