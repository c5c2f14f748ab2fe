package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/tenderscan/cmd/tenderscan"
	"github.com/fwojciec/tenderscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = `<html><body><table class="tableFile2">
<tr><th>Filings</th><th>Format</th><th>Description</th><th>Filing Date</th></tr>
<tr>
<td>SC TO-I</td>
<td><a href="/Archives/edgar/data/320193/0001-index.htm">Documents</a></td>
<td>Issuer tender offer statement</td>
<td>2021-03-15</td>
</tr>
<tr>
<td>SC TO-I</td>
<td><a href="/Archives/edgar/data/320193/0002-index.htm">Documents</a></td>
<td>Issuer tender offer statement</td>
<td>not a date</td>
</tr>
</table></body></html>`

// newServer starts a server that serves EDGAR pages for CIK 0000320193 and
// fails every other identifier.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/cgi-bin/browse-edgar", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("CIK") != "0000320193" {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(indexPage))
	})
	mux.HandleFunc("/Archives/edgar/data/320193/0001-index.htm", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<table><tr><td>Complete submission text file</td><td><a href="/0001.txt">t</a></td></tr></table>`))
	})
	mux.HandleFunc("/Archives/edgar/data/320193/0002-index.htm", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<table><tr><td>Complete submission text file</td><td><a href="/0002.txt">t</a></td></tr></table>`))
	})
	mux.HandleFunc("/0001.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("holders of an Odd Lot may tender"))
	})
	mux.HandleFunc("/0002.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("no such provision"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeInput(t *testing.T, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ciks.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func countFilings(t *testing.T, path string) int {
	t.Helper()

	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })

	var count int
	require.NoError(t, db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM filings`).Scan(&count))
	return count
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "tenderscan")
	assert.Contains(t, stdout.String(), "--odd-lot")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_NegativeLimit(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"ciks.txt", "--limit=-1"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingInput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	output := filepath.Join(t.TempDir(), "out.csv")

	err := m.Run(context.Background(), []string{
		filepath.Join(t.TempDir(), "missing.txt"), "-o", output,
	}, &stdout, &stderr)

	require.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestMain_Run_Unfiltered(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "9999999999\n0000320193\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		input, "-o", output, "--host", server.URL + "/",
	}, &stdout, &stderr)

	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "cik,date,url\n" +
		`"""0000320193""",2021-03-15,` + server.URL + "/Archives/edgar/data/320193/0001-index.htm\n" +
		`"""0000320193""",,` + server.URL + "/Archives/edgar/data/320193/0002-index.htm\n"
	assert.Equal(t, want, string(got))
	assert.Contains(t, stderr.String(), "skip 9999999999")
	assert.Contains(t, stdout.String(), "Wrote 2 records (1 of 2 identifiers failed)")
}

func TestMain_Run_HostWithoutTrailingSlash(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "0000320193\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, "-o", output, "--host", server.URL}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Wrote 2 records (0 of 1 identifiers failed)")
	assert.Empty(t, stderr.String())
}

func TestMain_Run_OddLot(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "0000320193\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		input, "-o", output, "--host", server.URL + "/", "--odd-lot", "--quote=",
	}, &stdout, &stderr)

	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	want := "cik,date,url\n" +
		"0000320193,2021-03-15," + server.URL + "/Archives/edgar/data/320193/0001-index.htm\n"
	assert.Equal(t, want, string(got))
}

func TestMain_Run_Database(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "0000320193\n")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "filings.db")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		input, "-o", filepath.Join(dir, "out.csv"), "--host", server.URL + "/", "--db", dbPath,
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, 2, countFilings(t, dbPath))
}

func TestMain_Run_DatabaseWrittenWhenCSVFails(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "0000320193\n")
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	dbPath := filepath.Join(dir, "filings.db")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		input, "-o", filepath.Join(blocker, "out.csv"), "--host", server.URL + "/", "--db", dbPath,
	}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error writing records")
	assert.Equal(t, 2, countFilings(t, dbPath))
}

func TestMain_Run_Verbose(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "0000320193\n")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		input, "-o", filepath.Join(t.TempDir(), "out.csv"), "--host", server.URL + "/", "-v",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "resolve index")
	assert.Contains(t, stderr.String(), "write records")
}

func TestMain_Run_Cancelled(t *testing.T) {
	t.Parallel()

	server := newServer(t)
	input := writeInput(t, "0000320193\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(ctx, []string{input, "-o", output, "--host", server.URL + "/"}, &stdout, &stderr)

	require.ErrorIs(t, err, context.Canceled)
	got, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	assert.Equal(t, "cik,date,url\n", string(got))
}
