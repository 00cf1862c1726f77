// Package logs creates a Multi writer instance that
// write all logs that are written to stdout.
package logs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/config/params"
	"github.com/sirupsen/logrus"
)

const logDirPermissions = 0700

func addLogWriter(w io.Writer) {
	mw := io.MultiWriter(logrus.StandardLogger().Out, w)
	logrus.SetOutput(mw)
}

// ConfigurePersistentLogging adds a log-to-file writer. File content is identical to stdout.
// Missing parent directories are created with 0700 permissions; an existing
// parent directory must already have them.
func ConfigurePersistentLogging(logFileName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	if err := mkdirAll(filepath.Dir(logFileName)); err != nil {
		return err
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, params.ActiveRandConfig().LogFilePermissions) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}

	addLogWriter(f)

	logrus.Info("File logging initialized")
	return nil
}

func mkdirAll(dirPath string) error {
	info, err := os.Stat(dirPath)
	switch {
	case err == nil:
		if !info.IsDir() {
			return errors.Errorf("%s is not a directory", dirPath)
		}
		if info.Mode().Perm() != logDirPermissions {
			return errors.New("dir already exists without proper 0700 permissions")
		}
		return nil
	case os.IsNotExist(err):
		return os.MkdirAll(dirPath, logDirPermissions)
	default:
		return err
	}
}
