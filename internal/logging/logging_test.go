package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikbrunner/todo/internal/logging"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")

	logger, closer, err := logging.New(logging.Options{Level: "debug", File: path, Prefix: "todo"})
	assert.NilError(t, err)

	logger.Debug("dispatch", "event", "add", "changed", true)
	assert.NilError(t, closer.Close())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "msg=dispatch"))
	assert.Assert(t, is.Contains(string(data), "event=add"))
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.log")

	logger, closer, err := logging.New(logging.Options{Level: "warn", File: path})
	assert.NilError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NilError(t, closer.Close())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(string(data), "hidden"))
	assert.Assert(t, is.Contains(string(data), "shown"))
}

func TestNew_NoFile(t *testing.T) {
	logger, closer, err := logging.New(logging.Options{Level: "info"})
	assert.NilError(t, err)
	assert.Assert(t, logger != nil)
	assert.NilError(t, closer.Close())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := logging.New(logging.Options{Level: "loud"})
	assert.ErrorContains(t, err, "parse log level")
}
