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

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves path to a file, trying, in order: the path as given
// (if absolute), relative to the working directory, relative to the
// executable, and relative to the user's home directory. Used by the CLI
// driver to find a config file passed with a relative path.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)
	notFound := fmt.Errorf("file could not be found: %s", file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFound
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return file, notFound
}

// ResolveCreateFolder resolves folderPath to an existing directory, or
// creates it (working directory first, falling back to the OS temp
// directory) if none of the candidates exist. Used to ensure the log
// directory exists before the logging package opens a file in it.
func ResolveCreateFolder(folderPath string) (string, error) {
	folderPath = filepath.Clean(folderPath)

	if filepath.IsAbs(folderPath) {
		if folderExists(folderPath) {
			return folderPath, nil
		}
		return folderPath, os.MkdirAll(folderPath, 0o755)
	}

	dir, _ := os.Getwd()
	candidate := filepath.Join(dir, folderPath)
	if folderExists(candidate) {
		return candidate, nil
	}
	if err := os.MkdirAll(candidate, 0o755); err == nil {
		return candidate, nil
	}

	candidate = filepath.Join(os.TempDir(), filepath.Base(folderPath))
	if folderExists(candidate) {
		return candidate, nil
	}
	return candidate, os.MkdirAll(candidate, 0o755)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func folderExists(name string) bool {
	info, err := os.Stat(name)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsDir()
}
