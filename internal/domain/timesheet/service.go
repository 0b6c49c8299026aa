package timesheet

import (
	"context"
	"io"
	"time"
)

type TimesheetService interface {
	GetGrid(ctx context.Context, year int, month time.Month) (GridResponse, error)
	CommitGrid(ctx context.Context, year int, month time.Month, req CommitGridRequest) (CommitResponse, error)
	SetCell(ctx context.Context, year int, month time.Month, req SetCellRequest) error
	Select(ctx context.Context, year int, month time.Month, req SelectionRequest) error
	Copy(ctx context.Context, year int, month time.Month) (string, error)
	Paste(ctx context.Context, year int, month time.Month, text string) error
	Fill(ctx context.Context, year int, month time.Month) error
	ClearSelection(ctx context.Context, year int, month time.Month) error
	// Autocomplete dispatches one editor event to the month's suggester and
	// returns the dropdown contents afterwards.
	Autocomplete(ctx context.Context, year int, month time.Month, req AutocompleteRequest) ([]SuggestionResponse, error)
	// AddRowsFromTarget seeds grid rows for the target's roster members that
	// are not already on the grid, matched by code.
	AddRowsFromTarget(ctx context.Context, year int, month time.Month, targetID string) error
	Export(ctx context.Context, year int, month time.Month) ([]byte, error)
	Template(year int, month time.Month) ([]byte, error)
	Import(ctx context.Context, year int, month time.Month, r io.Reader) (ImportResponse, error)
	Stats(ctx context.Context, year int, month time.Month) (StatsResponse, error)
	// Flush forces all pending debounced attendance saves, e.g. on shutdown.
	Flush()
}
