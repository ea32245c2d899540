// Copyright 2026 The memvfs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LoggerTest struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTest))
}

func redirectLogsToBuffer(buf *bytes.Buffer, format string, level Severity) {
	defaultFactory.format = format
	defaultLevel.Set(slogLevel(level))
	defaultLogger = slog.New(defaultFactory.handler(buf))
}

func fetchOutputForLevel(format string, level Severity) []string {
	var buf bytes.Buffer
	redirectLogsToBuffer(&buf, format, level)

	var out []string
	for _, f := range []func(){
		func() { Tracef("trace") },
		func() { Debugf("debug") },
		func() { Infof("info") },
		func() { Warnf("warning") },
		func() { Errorf("error") },
	} {
		f()
		out = append(out, buf.String())
		buf.Reset()
	}
	return out
}

func (t *LoggerTest) assertOutputs(format string, level Severity, expected []string) {
	got := fetchOutputForLevel(format, level)
	for i := range got {
		if expected[i] == "" {
			assert.Equal(t.T(), "", got[i])
		} else {
			assert.Regexp(t.T(), regexp.MustCompile(expected[i]), got[i])
		}
	}
}

func (t *LoggerTest) TestOffSuppressesEverything() {
	t.assertOutputs("text", OFF, []string{"", "", "", "", ""})
}

func (t *LoggerTest) TestErrorOnlyShowsError() {
	t.assertOutputs("text", ERROR, []string{"", "", "", "", `severity=ERROR`})
}

func (t *LoggerTest) TestTraceShowsEverything() {
	t.assertOutputs("text", TRACE, []string{
		`severity=TRACE`, `severity=DEBUG`, `severity=INFO`, `severity=WARNING`, `severity=ERROR`,
	})
}

func (t *LoggerTest) TestJSONFormatUsesSeverityField() {
	t.assertOutputs("json", INFO, []string{
		"", "", `"severity":"INFO"`, `"severity":"WARNING"`, `"severity":"ERROR"`,
	})
}

func TestConfigureWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/memvfs.log"
	require.NoError(t, Configure("text", INFO, path, Rotation{}))
	Infof("hello %s", "world")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello world")
}
