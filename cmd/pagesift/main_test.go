package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagesift"
	main "github.com/fwojciec/pagesift/cmd/pagesift"
	"github.com/fwojciec/pagesift/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(tb testing.TB) *sqlite.DB {
	tb.Helper()
	db := sqlite.NewDB(filepath.Join(tb.TempDir(), "test.db"))
	require.NoError(tb, db.Open())
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), nil, stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestMain_Run_CleanRequiresAPIKey(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.APIKey = ""

	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"clean", "https://example.com"}, &bytes.Buffer{}, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DESYNC_API_KEY")
}

func TestMain_Run_ContactsFromStoredPages(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Seed the database with a page containing contact details.
	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	svc := sqlite.NewPageService(db)
	require.NoError(t, svc.CreatePage(context.Background(), &pagesift.Page{
		URL:         "https://example.com/contact",
		Domain:      "example.com",
		SearchType:  "bulk",
		TextContent: "Reach us at Hello@Example.com or call 555-123-4567.",
	}))
	require.NoError(t, db.Close())

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"contacts", "--stored"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "hello@example.com")
	assert.Contains(t, output, "555-123-4567")
	assert.Contains(t, output, "1 unique emails")
}
