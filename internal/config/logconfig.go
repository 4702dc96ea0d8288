/*
 * polycube - 3D polycube packing solver
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package config

// Level mirrors github.com/op/go-logging's severity levels so the CLI and
// the config file can name a level without importing the logging package
// (which would create an import cycle with internal/logging).
type Level int

// Log levels, ordered least to most verbose - matches op/go-logging.
const (
	LevelCritical Level = iota
	LevelError
	LevelWarning
	LevelNotice
	LevelInfo
	LevelDebug
)

// LogLevels maps the command line / config file spelling of a level to its
// Level value.
var LogLevels = map[string]Level{
	"critical": LevelCritical,
	"error":    LevelError,
	"warning":  LevelWarning,
	"notice":   LevelNotice,
	"info":     LevelInfo,
	"debug":    LevelDebug,
}

type logConfiguration struct {
	LogPath string
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Log.LogPath = "./logs"
}

// setupLogLvl is a no-op: log defaults are set in init() and remain in
// place for any value the config file does not provide.
func setupLogLvl() {
}
