package viewer

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfnav/mcp-pdf-navigator/internal/pdf"
)

func TestForReaderKnownReaders(t *testing.T) {
	for _, reader := range []string{
		ReaderSkim, ReaderZathura, ReaderEvince, ReaderSumatraPDF, ReaderAcrobat,
	} {
		launcher, err := ForReader(reader, "")
		require.NoError(t, err, "reader %s", reader)
		require.NotNil(t, launcher, "reader %s", reader)
	}
}

func TestForReaderIsCaseInsensitive(t *testing.T) {
	launcher, err := ForReader("Skim", "")
	require.NoError(t, err)
	assert.IsType(t, &skimLauncher{}, launcher)
}

func TestForReaderUnknown(t *testing.T) {
	_, err := ForReader("okular", "")
	require.Error(t, err)
	assert.Equal(t, pdf.KindUnsupportedReader, pdf.KindOf(err))
	assert.Equal(t, "Unsupported PDF reader: okular", err.Error())
}

func TestSkimArgv(t *testing.T) {
	l := &skimLauncher{}
	abs, err := filepath.Abs("/docs/paper.pdf")
	require.NoError(t, err)

	argv := l.argv("/docs/paper.pdf", 12)
	assert.Equal(t, []string{"open", "skim://" + abs + "#12"}, argv)
}

func TestZathuraArgv(t *testing.T) {
	l := &zathuraLauncher{}
	assert.Equal(t,
		[]string{"zathura", "--page", "3", "/docs/paper.pdf"},
		l.argv("/docs/paper.pdf", 3))

	l = &zathuraLauncher{overridePath: "/opt/zathura"}
	assert.Equal(t,
		[]string{"/opt/zathura", "--page", "3", "/docs/paper.pdf"},
		l.argv("/docs/paper.pdf", 3))
}

func TestEvinceArgvIsZeroIndexed(t *testing.T) {
	l := &evinceLauncher{}
	assert.Equal(t,
		[]string{"evince", "--page-index", "4", "/docs/paper.pdf"},
		l.argv("/docs/paper.pdf", 5))
}

func TestSumatraArgv(t *testing.T) {
	l := &sumatraLauncher{}
	assert.Equal(t,
		[]string{"SumatraPDF", "-page", "9", `C:\docs\paper.pdf`},
		l.argv(`C:\docs\paper.pdf`, 9))
}

func TestAcrobatArgvPerPlatform(t *testing.T) {
	tests := []struct {
		goos     string
		override string
		want     []string
	}{
		{
			goos: "darwin",
			want: []string{"open", "-a", "Adobe Acrobat Reader DC", "/docs/paper.pdf"},
		},
		{
			goos:     "darwin",
			override: "Adobe Acrobat",
			want:     []string{"open", "-a", "Adobe Acrobat", "/docs/paper.pdf"},
		},
		{
			goos: "windows",
			want: []string{"AcroRd32.exe", "/A page=2", "/docs/paper.pdf"},
		},
		{
			goos: "linux",
			want: []string{"acroread", "/A page=2", "/docs/paper.pdf"},
		},
	}

	for _, tt := range tests {
		l := &acrobatLauncher{goos: tt.goos, overridePath: tt.override}
		assert.Equal(t, tt.want, l.argv("/docs/paper.pdf", 2), "goos=%s", tt.goos)
	}
}

func TestOpenLaunchesCommand(t *testing.T) {
	original := startCommand
	defer func() { startCommand = original }()

	var captured []string
	startCommand = func(cmd *exec.Cmd) error {
		captured = cmd.Args
		return nil
	}

	launcher, err := ForReader(ReaderZathura, "")
	require.NoError(t, err)

	require.NoError(t, launcher.Open("/docs/paper.pdf", 7))
	assert.Equal(t, []string{"zathura", "--page", "7", "/docs/paper.pdf"}, captured)
}

func TestOpenWrapsStartFailure(t *testing.T) {
	original := startCommand
	defer func() { startCommand = original }()

	startCommand = func(cmd *exec.Cmd) error {
		return errors.New("executable file not found")
	}

	launcher, err := ForReader(ReaderEvince, "")
	require.NoError(t, err)

	err = launcher.Open("/docs/paper.pdf", 1)
	require.Error(t, err)
	assert.Equal(t, pdf.KindViewerLaunchFailure, pdf.KindOf(err))
	assert.Contains(t, err.Error(), "failed to launch evince")
}
