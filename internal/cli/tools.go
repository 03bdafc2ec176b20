package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/runargs/pkg/argfile"
	"github.com/aretw0/runargs/pkg/domain"
	"github.com/aretw0/runargs/pkg/log4j"
)

// WriteLog4j writes a log4j2 configuration at path. A directory path gets the default file name.
func WriteLog4j(path, level string) (string, error) {
	lvl, err := domain.ParseLevel(level)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return log4j.WriteDir(path, lvl)
	}
	if err := log4j.Write(path, lvl); err != nil {
		return "", err
	}
	return path, nil
}

// DecodeArgFile prints the arguments stored in an argument file, one per line.
func DecodeArgFile(w io.Writer, path string) error {
	args, err := argfile.ReadFile(path)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if _, err := fmt.Fprintln(w, arg); err != nil {
			return err
		}
	}
	return nil
}
