// Package viewer launches external PDF readers at a specific page. Each
// supported reader is its own launcher type; adding a reader means adding a
// variant, not another conditional branch.
package viewer

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pdfnav/mcp-pdf-navigator/internal/pdf"
)

// Supported reader names. This set is closed; ForReader rejects anything else.
const (
	ReaderSkim       = "skim"
	ReaderZathura    = "zathura"
	ReaderEvince     = "evince"
	ReaderSumatraPDF = "sumatrapdf"
	ReaderAcrobat    = "acrobat"
)

// startCommand starts cmd without waiting for it; viewer launches are
// fire-and-forget. Stubbed in tests.
var startCommand = func(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// Detach so a long-lived viewer never leaves a zombie behind.
	return cmd.Process.Release()
}

// ForReader maps a configured reader name to its launcher. overridePath, when
// non-empty, replaces the launcher's default executable (or application name,
// for Acrobat on darwin).
func ForReader(reader, overridePath string) (pdf.ViewerLauncher, error) {
	switch strings.ToLower(reader) {
	case ReaderSkim:
		return &skimLauncher{}, nil
	case ReaderZathura:
		return &zathuraLauncher{overridePath: overridePath}, nil
	case ReaderEvince:
		return &evinceLauncher{overridePath: overridePath}, nil
	case ReaderSumatraPDF:
		return &sumatraLauncher{overridePath: overridePath}, nil
	case ReaderAcrobat:
		return &acrobatLauncher{overridePath: overridePath, goos: runtime.GOOS}, nil
	default:
		return nil, pdf.UnsupportedReaderError(reader)
	}
}

func launch(name string, argv []string) error {
	if err := startCommand(exec.Command(argv[0], argv[1:]...)); err != nil {
		return pdf.ViewerLaunchError(name, err)
	}
	return nil
}

// skimLauncher opens Skim (macOS) through its URL scheme, which carries the
// page number in the fragment.
type skimLauncher struct{}

func (l *skimLauncher) argv(path string, page int) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return []string{"open", fmt.Sprintf("skim://%s#%d", abs, page)}
}

func (l *skimLauncher) Open(path string, page int) error {
	return launch(ReaderSkim, l.argv(path, page))
}

// zathuraLauncher opens Zathura (Linux) with its --page flag.
type zathuraLauncher struct {
	overridePath string
}

func (l *zathuraLauncher) argv(path string, page int) []string {
	exe := "zathura"
	if l.overridePath != "" {
		exe = l.overridePath
	}
	return []string{exe, "--page", strconv.Itoa(page), path}
}

func (l *zathuraLauncher) Open(path string, page int) error {
	return launch(ReaderZathura, l.argv(path, page))
}

// evinceLauncher opens Evince (Linux). Evince counts pages from zero.
type evinceLauncher struct {
	overridePath string
}

func (l *evinceLauncher) argv(path string, page int) []string {
	exe := "evince"
	if l.overridePath != "" {
		exe = l.overridePath
	}
	return []string{exe, "--page-index", strconv.Itoa(page - 1), path}
}

func (l *evinceLauncher) Open(path string, page int) error {
	return launch(ReaderEvince, l.argv(path, page))
}

// sumatraLauncher opens SumatraPDF (Windows) with its -page flag.
type sumatraLauncher struct {
	overridePath string
}

func (l *sumatraLauncher) argv(path string, page int) []string {
	exe := "SumatraPDF"
	if l.overridePath != "" {
		exe = l.overridePath
	}
	return []string{exe, "-page", strconv.Itoa(page), path}
}

func (l *sumatraLauncher) Open(path string, page int) error {
	return launch(ReaderSumatraPDF, l.argv(path, page))
}

// acrobatLauncher opens Adobe Acrobat Reader. The invocation differs per
// platform: darwin goes through `open -a`, windows and linux call the reader
// binary with an /A page= argument.
type acrobatLauncher struct {
	overridePath string
	goos         string
}

func (l *acrobatLauncher) argv(path string, page int) []string {
	switch l.goos {
	case "darwin":
		app := "Adobe Acrobat Reader DC"
		if l.overridePath != "" {
			app = l.overridePath
		}
		return []string{"open", "-a", app, path}
	case "windows":
		exe := "AcroRd32.exe"
		if l.overridePath != "" {
			exe = l.overridePath
		}
		return []string{exe, fmt.Sprintf("/A page=%d", page), path}
	default:
		exe := "acroread"
		if l.overridePath != "" {
			exe = l.overridePath
		}
		return []string{exe, fmt.Sprintf("/A page=%d", page), path}
	}
}

func (l *acrobatLauncher) Open(path string, page int) error {
	return launch(ReaderAcrobat, l.argv(path, page))
}
