package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/server"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSlidesCommand(t *testing.T) {
	out, err := execute(t, "slides")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 23)
	assert.Contains(t, lines[0], "SECTION")
	assert.Contains(t, lines[1], "intro-1")
	assert.Contains(t, lines[1], "SARS-CoV-2: A Molecular Machine")
	assert.Contains(t, lines[22], "future-5")
}

func TestSlidesCommand_Farsi(t *testing.T) {
	out, err := execute(t, "slides", "--lang", "fa")
	require.NoError(t, err)
	assert.Contains(t, out, "intro-1")
	assert.NotContains(t, out, "SARS-CoV-2: A Molecular Machine")
}

func TestSlidesCommand_MissingDeck(t *testing.T) {
	_, err := execute(t, "slides", "--deck", "/nonexistent/deck.yaml")
	assert.Error(t, err)
}

func TestRemoteCommand(t *testing.T) {
	m := navigation.New(deck.Default())
	srv := server.New(m, server.Options{})
	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})

	out, err := execute(t, "remote", "--addr", ts.URL, "next")
	require.NoError(t, err)
	var resp server.MutationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, "intro-2", resp.State.SlideID)

	_, err = execute(t, "remote", "--addr", ts.URL, "section", "treatment")
	require.NoError(t, err)
	assert.Equal(t, "treat-1", m.State().SlideID)

	_, err = execute(t, "remote", "--addr", ts.URL, "swipe", "swipe-left", "rtl")
	require.NoError(t, err)
	assert.Equal(t, "hall-3", m.State().SlideID)

	out, err = execute(t, "remote", "--addr", ts.URL, "state")
	require.NoError(t, err)
	assert.Contains(t, out, `"currentSlideId": "hall-3"`)
}

func TestRemoteCommand_BadArgs(t *testing.T) {
	_, err := execute(t, "remote", "--addr", "127.0.0.1:1", "goto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 1 argument")

	_, err = execute(t, "remote", "--addr", "127.0.0.1:1", "dance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown remote action")

	_, err = execute(t, "remote")
	assert.Error(t, err)
}

func TestLogsCommand(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "presenter.log")
	require.NoError(t, os.WriteFile(logPath, []byte("level=INFO msg=one\nlevel=WARN msg=two\nlevel=INFO msg=three\n"), 0o644))
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_file = \""+logPath+"\"\n"), 0o644))

	out, err := execute(t, "logs", "--config", cfgPath, "-n", "2", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "level=WARN msg=two\nlevel=INFO msg=three\n", out)
}
