package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin io.Reader, env map[string]string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	getenv := func(key string) string { return env[key] }
	code := Execute(context.Background(), args, stdin, &stdout, &stderr, getenv)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExecute_SingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", "foo\nbar\nfoobar\n")

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{name: "match", args: []string{"foo", path}, wantOut: "foo\nfoobar\n", wantCode: 0},
		{name: "invert", args: []string{"-v", "foo", path}, wantOut: "bar\n", wantCode: 0},
		{name: "count", args: []string{"--count", "foo", path}, wantOut: "2\n", wantCode: 0},
		{name: "insensitive", args: []string{"-i", "FOO", path}, wantOut: "foo\nfoobar\n", wantCode: 0},
		{name: "no match", args: []string{"zzz", path}, wantOut: "", wantCode: 1},
		{name: "count no match", args: []string{"-c", "zzz", path}, wantOut: "0\n", wantCode: 1},
		{name: "flags after pattern", args: []string{"FOO", path, "-i", "-c"}, wantOut: "2\n", wantCode: 0},
		{name: "with filename", args: []string{"-H", "bar$", path}, wantOut: path + ":bar\n" + path + ":foobar\n", wantCode: 0},
		{name: "fixed strings", args: []string{"-F", "o.b", path}, wantOut: "", wantCode: 1},
		{name: "posix", args: []string{"-E", "^(foo|bar)$", path}, wantOut: "foo\nbar\n", wantCode: 0},
		{name: "perl", args: []string{"-P", `foo(?=bar)`, path}, wantOut: "foobar\n", wantCode: 0},
		{name: "pattern after double dash", args: []string{"--", "-v", path}, wantOut: "", wantCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, nil, nil, tt.args...)
			assert.Equal(t, tt.wantCode, res.code, res.stderr)
			assert.Equal(t, tt.wantOut, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestExecute_Stdin(t *testing.T) {
	res := run(t, strings.NewReader("alpha\nbeta\n"), nil, "ph")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "alpha\n", res.stdout)
}

func TestExecute_StdinAmongFiles(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "foo in file\n")

	res := run(t, strings.NewReader("foo in stdin\n"), nil, "foo", "-", path)

	assert.Equal(t, "(standard input):foo in stdin\n"+path+":foo in file\n", res.stdout)
}

func TestExecute_MultipleFilesAndErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo\n")
	missing := filepath.Join(dir, "missing.txt")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	res := run(t, nil, nil, "foo", missing, sub, a)

	assert.Equal(t, 2, res.code, "errors win over matches")
	assert.Equal(t, a+":foo\n", res.stdout)
	assert.Equal(t,
		"grepr: "+missing+": no such file or directory\n"+
			"grepr: "+sub+": is a directory\n",
		res.stderr)
}

func TestExecute_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/x.txt", "foo x\n")
	writeFile(t, root, "a/b/y.txt", "foo y\n")
	writeFile(t, root, "a/b/z.txt", "nothing\n")
	writeFile(t, root, "a/node_modules/dep.txt", "foo dep\n")
	a := filepath.Join(root, "a")

	res := run(t, nil, nil, "-r", "--exclude-dir", "node_modules", "foo", a)

	assert.Equal(t, 0, res.code)
	assert.Equal(t,
		filepath.Join(a, "b", "y.txt")+":foo y\n"+
			filepath.Join(a, "x.txt")+":foo x\n",
		res.stdout)

	res = run(t, nil, nil, "-r", "--no-filename", "-c", "foo", a)
	assert.Equal(t, "1\n0\n1\n1\n", res.stdout)
}

func TestExecute_JSONFromEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "foo\n")

	res := run(t, nil, map[string]string{"GREPR_FORMAT": "json"}, "foo", path)

	require.Equal(t, 0, res.code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(res.stdout)), &doc))
	assert.Equal(t, "match", doc["type"])
	assert.Equal(t, float64(1), doc["line"])

	res = run(t, nil, map[string]string{"GREPR_FORMAT": "json"}, "--format", "text", "foo", path)
	assert.Equal(t, "foo\n", res.stdout, "flags override the environment")
}

func TestExecute_StructuredFormatsExitCodes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "foo\n")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout map[string]string
		wantStderr string
	}{
		{
			name:       "no match",
			args:       []string{"zzz", path},
			wantCode:   1,
			wantStdout: map[string]string{"json": "", "yaml": ""},
		},
		{
			name:     "errors only",
			args:     []string{"foo", missing},
			wantCode: 2,
			wantStdout: map[string]string{
				"json": `"type":"error"`,
				"yaml": "type: error",
			},
			wantStderr: "grepr: " + missing + ": no such file or directory\n",
		},
		{
			name:     "count without matches",
			args:     []string{"-c", "zzz", path},
			wantCode: 1,
			wantStdout: map[string]string{
				"json": `"count":0`,
				"yaml": "count: 0",
			},
		},
		{
			name:     "match",
			args:     []string{"foo", path},
			wantCode: 0,
			wantStdout: map[string]string{
				"json": `"type":"match"`,
				"yaml": "type: match",
			},
		},
	}

	for _, tt := range tests {
		for _, format := range []string{"json", "yaml"} {
			t.Run(tt.name+"/"+format, func(t *testing.T) {
				args := append([]string{"--format", format}, tt.args...)
				res := run(t, nil, nil, args...)

				assert.Equal(t, tt.wantCode, res.code, res.stderr)
				assert.Equal(t, tt.wantStderr, res.stderr)
				if want := tt.wantStdout[format]; want == "" {
					assert.Empty(t, res.stdout)
				} else {
					assert.Contains(t, res.stdout, want)
				}
			})
		}
	}
}

func TestExecute_ColorAlways(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "foo\n")
	b := writeFile(t, dir, "b.txt", "foo\n")

	res := run(t, nil, nil, "--color", "always", "foo", a, b)

	assert.Contains(t, res.stdout, "\x1b[35m"+a+"\x1b[0m")
}

func TestExecute_LogFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "foo\n")
	logPath := filepath.Join(dir, "logs", "grepr.log")

	res := run(t, nil, nil, "--log-file", logPath, "--log-level", "debug", "foo", path)
	require.Equal(t, 0, res.code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "grepr run started")
	assert.Contains(t, string(data), "[DEBUG] scanning "+path)
	assert.Contains(t, res.stderr, "[DEBUG] scanning "+path)
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		env       map[string]string
		wantInErr string
	}{
		{name: "missing pattern", args: nil, wantInErr: "requires at least 1 arg"},
		{name: "empty pattern", args: []string{""}, wantInErr: "pattern is required"},
		{name: "invalid regexp", args: []string{"(foo"}, wantInErr: "invalid regexp pattern"},
		{name: "invalid posix", args: []string{"-E", `\d+`}, wantInErr: "invalid posix pattern"},
		{name: "conflicting engines", args: []string{"-F", "-P", "x"}, wantInErr: "none of the others can be"},
		{name: "unknown flag", args: []string{"--frobnicate", "x"}, wantInErr: "unknown flag"},
		{name: "bad format", args: []string{"--format", "xml", "x"}, wantInErr: "invalid output format"},
		{name: "bad env level", args: []string{"x"}, env: map[string]string{"GREPR_LOG_LEVEL": "loud"}, wantInErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdin := strings.NewReader("x\n")
			res := run(t, stdin, tt.env, tt.args...)

			assert.Equal(t, 2, res.code)
			assert.Empty(t, res.stdout)
			assert.True(t, strings.HasPrefix(res.stderr, "grepr: "), res.stderr)
			assert.Contains(t, res.stderr, tt.wantInErr)
			assert.Equal(t, 2, stdin.Len(), "stdin must not be read")
		})
	}
}

func TestExecute_HelpAndVersion(t *testing.T) {
	res := run(t, nil, nil, "--help")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "grepr [flags] PATTERN [FILE]...")
	assert.Contains(t, res.stdout, "--invert-match")

	res = run(t, nil, nil, "-h")
	assert.Equal(t, 0, res.code)

	res = run(t, nil, nil, "-V")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, Version)
}

func TestExecute_Cancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "foo\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := Execute(ctx, []string{"foo", path}, nil, &stdout, &stderr, nil)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
}
