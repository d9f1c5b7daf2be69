package export

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPDFExporterReadsChromePath(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome/chrome")
	e := NewPDFExporter()
	assert.Equal(t, "/opt/chrome/chrome", e.chromePath)

	os.Unsetenv("CHROME_PATH")
	assert.Empty(t, NewPDFExporter().chromePath)
}

func TestExportErrorUnwrap(t *testing.T) {
	cause := errors.New("chrome not found")
	err := &ExportError{Message: "browser print failed", Cause: cause}
	assert.Equal(t, "browser print failed: chrome not found", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &ExportError{Message: "failed to write document"}
	assert.Equal(t, "failed to write document", bare.Error())
}
