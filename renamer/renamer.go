// Package renamer implements the two phases of a bulk rename. Scan writes the names of the files in a
// directory to a rename list which the user edits with any tool. Rename then moves every file whose
// line was changed to its new name.
package renamer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"
	"github.com/iancoleman/strcase"
	"github.com/littlesmith/arguments/util"
)

const (
	RenameListName  = "multirenamer.txt"
	RenamedListName = "multirenamer_renamed.txt"
	ErrorLogName    = "multirenamer_error.log"

	oldNameListPrefix = ".multirenamer_name_list_"
)

var (
	ErrNoRenameList   = errors.New("No rename file found on this path!")
	ErrNoOldNameList  = errors.New("No old name file found on this path!")
	ErrMissingNewName = errors.New("Could not read new name from rename file!")
	ErrUnknownCase    = errors.New("unknown name case")
	ErrNoEditor       = errors.New("no editor given")
)

// NameCase selects how Scan rewrites the suggested file names
type NameCase string

const (
	CaseKeep  NameCase = ""
	CaseKebab NameCase = "kebab"
	CaseSnake NameCase = "snake"
	CaseCamel NameCase = "camel"
	CaseLower NameCase = "lower"
)

// ParseCase returns the NameCase called name
func ParseCase(name string) (NameCase, error) {
	switch c := NameCase(strings.ToLower(name)); c {
	case CaseKeep, CaseKebab, CaseSnake, CaseCamel, CaseLower:
		return c, nil
	default:
		return CaseKeep, fmt.Errorf("%w: %s", ErrUnknownCase, name)
	}
}

// apply converts the stem of a file name and keeps its extension
func (c NameCase) apply(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		return name
	}

	switch c {
	case CaseKebab:
		stem = strcase.ToKebab(stem)
	case CaseSnake:
		stem = strcase.ToSnake(stem)
	case CaseCamel:
		stem = strcase.ToLowerCamel(stem)
	case CaseLower:
		stem = strings.ToLower(stem)
	}

	return stem + ext
}

// ScanOptions controls which files Scan lists
type ScanOptions struct {
	// Recursive also lists the files of all sub directories
	Recursive bool
	// NewerThan skips files last modified at or before it, unless it is the zero time
	NewerThan time.Time
	// Case rewrites the suggested names in the rename list
	Case NameCase
}

// Renamer works on one directory
type Renamer struct {
	dir         string
	tempDir     string
	renameList  string
	oldNameList string
	failed      bool
}

// Option configures a Renamer
type Option func(r *Renamer)

// WithTempDir keeps the old name list in dir instead of os.TempDir()
func WithTempDir(dir string) Option {
	return func(r *Renamer) {
		r.tempDir = dir
	}
}

// New returns a Renamer for dir. The old name list lives in the temporary directory under a name derived
// from the hash of the absolute path of dir, so that scans of different directories do not collide.
func New(dir string, opts ...Option) *Renamer {
	r := &Renamer{
		dir:     dir,
		tempDir: os.TempDir(),
	}
	for _, opt := range opts {
		opt(r)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	r.renameList = filepath.Join(dir, RenameListName)
	r.oldNameList = filepath.Join(r.tempDir, oldNameListPrefix+util.HashString(abs)+".txt")

	return r
}

// RenameList returns the path of the list the user edits
func (r *Renamer) RenameList() string {
	return r.renameList
}

// OldNameList returns the path of the list holding the names found by Scan
func (r *Renamer) OldNameList() string {
	return r.oldNameList
}

// Failed reports whether the last Rename logged a failure
func (r *Renamer) Failed() bool {
	return r.failed
}

// Scan writes the rename list and the old name list and returns the number of files listed. The lists
// themselves are never listed.
func (r *Renamer) Scan(opts ScanOptions) (int, error) {
	nameCase, err := ParseCase(string(opts.Case))
	if err != nil {
		return 0, err
	}

	rename, err := os.Create(r.renameList)
	if err != nil {
		return 0, err
	}
	defer rename.Close()
	oldName, err := os.Create(r.oldNameList)
	if err != nil {
		return 0, err
	}
	defer oldName.Close()

	renameW := bufio.NewWriter(rename)
	oldNameW := bufio.NewWriter(oldName)
	skip := map[string]bool{
		filepath.Base(r.renameList):  true,
		filepath.Base(r.oldNameList): true,
	}

	count := 0
	stack := deque.New()
	stack.PushBack(r.dir)
	for stack.Len() > 0 {
		v, _ := stack.PopBack()
		current := v.(string)
		entries, err := os.ReadDir(current)
		if err != nil {
			if current != r.dir && errors.Is(err, fs.ErrPermission) {
				continue
			}
			return count, err
		}

		for _, entry := range entries {
			path := filepath.Join(current, entry.Name())
			if entry.IsDir() {
				if opts.Recursive {
					stack.PushBack(path)
				}
				continue
			}
			if !entry.Type().IsRegular() || skip[entry.Name()] {
				continue
			}
			if !opts.NewerThan.IsZero() {
				info, err := entry.Info()
				if err != nil || !info.ModTime().After(opts.NewerThan) {
					continue
				}
			}

			newName := filepath.Join(current, nameCase.apply(entry.Name()))
			if _, err := fmt.Fprintln(renameW, newName); err != nil {
				return count, err
			}
			if _, err := fmt.Fprintln(oldNameW, path); err != nil {
				return count, err
			}
			count++
		}
	}

	if err := renameW.Flush(); err != nil {
		return count, err
	}

	return count, oldNameW.Flush()
}

// Rename moves every file whose line in the rename list differs from the old name list, creating target
// directories as needed. Failures do not stop the run: they are logged to ErrorLogName in the working
// directory, see Failed. Afterwards the old name list is removed and the rename list is kept as
// RenamedListName.
func (r *Renamer) Rename() error {
	if _, err := os.Stat(r.renameList); err != nil {
		return ErrNoRenameList
	}
	if _, err := os.Stat(r.oldNameList); err != nil {
		return ErrNoOldNameList
	}

	newNames, err := readLines(r.renameList)
	if err != nil {
		return err
	}
	oldNames, err := readLines(r.oldNameList)
	if err != nil {
		return err
	}
	if len(newNames) < len(oldNames) {
		return ErrMissingNewName
	}

	logPath := filepath.Join(r.dir, ErrorLogName)
	if err := os.Remove(logPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	r.failed = false
	var (
		logFile *os.File
		logger  *slog.Logger
	)
	defer func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}()

	for i, oldName := range oldNames {
		newName := newNames[i]
		if oldName == newName {
			continue
		}
		moveErr := move(oldName, newName)
		if moveErr == nil {
			continue
		}
		if logger == nil {
			if logFile, err = os.Create(logPath); err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(logFile, nil))
		}
		logger.Error("failed to rename", "from", oldName, "to", newName, "error", moveErr)
		r.failed = true
	}

	if err := os.Remove(r.oldNameList); err != nil {
		return err
	}

	return os.Rename(r.renameList, filepath.Join(r.dir, RenamedListName))
}

// Edit opens the rename list with editor, a command line such as "vim" or "code --wait", and waits for
// it to exit
func (r *Renamer) Edit(editor string) error {
	if _, err := os.Stat(r.renameList); err != nil {
		return ErrNoRenameList
	}
	args, err := shlex.Split(editor)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return ErrNoEditor
	}

	cmd := exec.Command(args[0], append(args[1:], r.renameList)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func move(oldName, newName string) error {
	if filepath.Dir(oldName) != filepath.Dir(newName) {
		if err := os.MkdirAll(filepath.Dir(newName), 0o755); err != nil {
			return err
		}
	}

	return os.Rename(oldName, newName)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	return lines, scanner.Err()
}
