/*
 * kronexus - deterministic parallel Kronecker-graph generator
 *
 * MIT License
 *
 * Copyright (c) 2018-2026 The kronexus authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a thin helper over "github.com/op/go-logging" that
// reduces each call site to a one-line GetXLog() instead of repeating
// backend/formatter setup everywhere.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/kgen/kronexus/config"
	"github.com/kgen/kronexus/util"
)

var (
	standardLog  *logging.Logger
	generatorLog *logging.Logger
	permuteLog   *logging.Logger
	testLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	generatorLog = logging.MustGetLogger("generator")
	permuteLog = logging.MustGetLogger("permute")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard Logger, preconfigured with a stdout backend
// leveled from config.LogLevel and, when config.Settings.Log.LogPath names a
// usable directory, a second backend writing to kronexus.log in it.
func GetLog() *logging.Logger {
	backends := []logging.Backend{levelBackend(config.LogLevel)}
	if fileBackend := logFileBackend(config.LogLevel); fileBackend != nil {
		backends = append(backends, fileBackend)
	}
	standardLog.SetBackend(logging.MultiLogger(backends...))
	return standardLog
}

// GetGeneratorLog returns the Logger used by the kron package,
// leveled independently from the standard logger via config.GeneratorLogLevel.
func GetGeneratorLog() *logging.Logger {
	generatorLog.SetBackend(levelBackend(config.GeneratorLogLevel))
	return generatorLog
}

// GetPermuteLog returns the Logger used by the permute package, leveled
// independently via config.PermuteLogLevel.
func GetPermuteLog() *logging.Logger {
	permuteLog.SetBackend(levelBackend(config.PermuteLogLevel))
	return permuteLog
}

// GetTestLog returns a Logger for use from _test.go files.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(levelBackend(config.LogLevel))
	return testLog
}

func levelBackend(level int) logging.LeveledBackend {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// logFileBackend builds a backend writing to kronexus.log in the configured
// log folder, or nil when the folder cannot be resolved or the file cannot
// be opened (stdout logging still works in that case).
func logFileBackend(level int) logging.LeveledBackend {
	folder, err := util.ResolveCreateFolder(config.Settings.Log.LogPath)
	if err != nil {
		return nil
	}
	logFile, err := os.OpenFile(filepath.Join(folder, "kronexus.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Logfile could not be created:", err)
		return nil
	}
	backend := logging.NewLogBackend(logFile, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}
