// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const SPIN = 31

var working = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

// StartSpinner shows the ~working~ spinner on stderr with the given suffix.
// Nothing is shown if stderr is not a terminal, or if debug logs would be
// interleaved with it.
func StartSpinner(suffix string) {
	if !IsTerminal(os.Stderr) || logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	working.Suffix = suffix
	working.Start()
}

// PauseSpinner stops the spinner if it is running.
func PauseSpinner() {
	working.Stop()
}

// IsTerminal reports whether file is an interactive terminal.
func IsTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// IsTerminalWriter reports whether w writes straight to an interactive
// terminal, so that colour escapes may be sent to it.
func IsTerminalWriter(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && IsTerminal(file)
}
