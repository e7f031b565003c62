package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	encUTF8        = "utf-8"
	encLatin1      = "latin1"
	encWindows1252 = "windows-1252"

	dirPerm = 0o755
)

// charmaps maps the names of the supported single-byte encodings to their
// character maps. UTF-8 is handled separately.
var charmaps = map[string]*charmap.Charmap{
	encLatin1:      charmap.ISO8859_1,
	encWindows1252: charmap.Windows1252,
}

// decodeText converts the file contents into text. Decoding never fails:
// for UTF-8 any invalid byte sequences are dropped and the single-byte
// encodings map every byte to some character.
func decodeText(b []byte, enc string) string {
	cm, ok := charmaps[enc]
	if !ok {
		return strings.ToValidUTF8(string(b), "")
	}

	s, _, err := transform.String(cm.NewDecoder(), string(b))
	if err != nil {
		return strings.ToValidUTF8(string(b), "")
	}

	return s
}

// encodeText converts the text back into the file encoding. Characters
// which cannot be represented are replaced.
func encodeText(s, enc string) ([]byte, error) {
	cm, ok := charmaps[enc]
	if !ok {
		return []byte(s), nil
	}

	b, _, err := transform.Bytes(
		encoding.ReplaceUnsupported(cm.NewEncoder()), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("cannot encode the text as %s: %w", enc, err)
	}

	return b, nil
}

// backupPathName returns the name of the backup copy of the file. This is
// the file's path relative to the search directory placed under the
// backup directory.
func backupPathName(searchDir, backupDir, name string) (string, error) {
	rel, err := filepath.Rel(searchDir, name)
	if err != nil {
		return "", fmt.Errorf("cannot find the path of %q relative to %q: %w",
			name, searchDir, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is not under the search directory %q",
			name, searchDir)
	}

	return filepath.Join(searchDir, backupDir, rel), nil
}

// backupFile writes the original contents of the file into the backup
// file, creating any missing directories. The permissions and modification
// time of the original are copied.
func backupFile(backupName string, content []byte, info os.FileInfo) error {
	if err := os.MkdirAll(filepath.Dir(backupName), dirPerm); err != nil {
		return fmt.Errorf("cannot create the backup directory: %w", err)
	}

	if err := os.WriteFile(backupName, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("cannot write the backup file: %w", err)
	}

	if err := os.Chmod(backupName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("cannot set the backup file permissions: %w", err)
	}

	mt := info.ModTime()
	if err := os.Chtimes(backupName, mt, mt); err != nil {
		return fmt.Errorf("cannot set the backup file times: %w", err)
	}

	return nil
}

// replaceFile writes the content into a temporary file in the same
// directory and then renames it over the named file. The named file keeps
// its permissions.
func replaceFile(name string, content []byte, info os.FileInfo) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".findCmtRm-*")
	if err != nil {
		return fmt.Errorf("cannot create the temporary file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("cannot write the temporary file: %w", err)
	}

	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("cannot set the temporary file permissions: %w", err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("cannot close the temporary file: %w", err)
	}

	if err = os.Rename(tmpName, name); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("cannot replace %q: %w", name, err)
	}

	return nil
}
