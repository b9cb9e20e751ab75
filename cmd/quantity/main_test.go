package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command line with the given stdin and returns what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errs.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"eval", "units"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
	v := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"eval", "2+3"}, "5\n"},
		{"units", []string{"eval", "2meter*3meter"}, "6 meter^2\n"},
		{"several", []string{"eval", "2+3", "(2+3)*4"}, "5\n20\n"},
		{"placeholder", []string{"eval", "{meter}/{second}"}, "1 meter second^-1\n"},
		{"placeholder-case", []string{"eval", "{LightSpeed}"}, "2.99792458e+08 meter second^-1\n"},
		{"given", []string{"eval", "--given", "d=100{meter}", "--given", "t = 4 second", "{d}/{t}"}, "25 meter second^-1\n"},
		{"given-chain", []string{"eval", "--given", "a=2", "--given", "b={a}^3", "{b}"}, "8\n"},
		{"given-shadows", []string{"eval", "--given", "meter=3", "{meter}meter"}, "3 meter\n"},
		{"fmt", []string{"eval", "--fmt", "%.2f", "100meter/9.58second"}, "10.44 meter second^-1\n"},
		{"group", []string{"eval", "-g", "1234567.5 meter"}, "1,234,567.5 meter\n"},
		{"group-precision", []string{"eval", "-g", "-p", "2", "1/3"}, "0.33\n"},
		{"group-lang", []string{"eval", "-g", "--lang", "de", "1234567.5"}, "1.234.567,5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		out  string
	}{
		{"mismatch", []string{"eval", "meter+second"}, "dimension mismatch"},
		{"invalid", []string{"eval", "2+"}, "invalid expression"},
		{"unknown", []string{"eval", "{furlong}"}, `unknown name "furlong"`},
		{"unclosed", []string{"eval", "{meter"}, "unclosed placeholder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, out, tt.out)
		})
	}

	// Failures don't stop later expressions.
	out, _, err := execute(t, "", "eval", "meter+second", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.True(t, strings.HasSuffix(out, "\n2\n"), "output %q", out)
}

func TestEvalStdin(t *testing.T) {
	out, _, err := execute(t, "2+3\n\n4*5\n", "eval", "-n")
	require.NoError(t, err)
	assert.Equal(t, "5\n20\n", out)

	out, _, err = execute(t, "2+\n3\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestEvalInFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(name, []byte("1 meter + 2 meter\n3{second}\n"), 0o644))
	out, _, err := execute(t, "", "eval", "-n", "--in", name)
	require.NoError(t, err)
	assert.Equal(t, "3 meter\n3 second\n", out)
}

func TestDefsFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "defs.yaml")
	defs := `definitions:
  - name: furlong
    expr: 201.168{meter}
  - name: fortnight
    expr: 1209600 second
  - name: fpf
    expr: "{furlong}/{fortnight}"
`
	require.NoError(t, os.WriteFile(name, []byte(defs), 0o644))

	out, _, err := execute(t, "", "eval", "--defs", name, "{furlong}", "{fortnight}/{second}")
	require.NoError(t, err)
	assert.Equal(t, "201.168 meter\n1.2096e+06\n", out)

	out, _, err = execute(t, "", "units", "--defs", name, "--given", "x=2{fpf}")
	require.NoError(t, err)
	assert.Contains(t, out, "furlong = 201.168 meter\n")
	assert.Contains(t, out, "\nfpf = ")
	assert.Contains(t, out, "\nx = ")
	assert.True(t, strings.HasSuffix(out, "meter second^-1\n"), "output %q", out)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("definitions:\n  - name: x\n    value: 1\n"), 0o644))
	_, _, err = execute(t, "", "eval", "--defs", bad, "1")
	require.Error(t, err)

	_, _, err = execute(t, "", "eval", "--defs", filepath.Join(dir, "missing.yaml"), "1")
	require.Error(t, err)
}

func TestUnits(t *testing.T) {
	out, _, err := execute(t, "", "units")
	require.NoError(t, err)
	assert.Contains(t, out, "joule = 1 meter^2 kilogram second^-2\n")
	assert.Contains(t, out, "meter = 1 meter\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "acceleration = "), "first line %q", lines[0])
}

func TestVerbose(t *testing.T) {
	_, stderr, err := execute(t, "", "eval", "-v", "--given", "x=2", "{x}")
	require.NoError(t, err)
	assert.Contains(t, stderr, "defined")
	assert.Contains(t, stderr, "evaluated")

	_, stderr, err = execute(t, "", "eval", "--given", "x=2", "{x}")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestBadFlags(t *testing.T) {
	_, _, err := execute(t, "", "eval", "--given", "x", "1")
	assert.Error(t, err)
	_, _, err = execute(t, "", "eval", "--given", "{x}=1", "1")
	assert.Error(t, err)
	_, _, err = execute(t, "", "eval", "--given", "x=meter+second", "1")
	assert.Error(t, err)
	_, _, err = execute(t, "", "eval", "-g", "-p", "-1", "1")
	assert.Error(t, err)
}

func TestSplitTemplate(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		segments []string
		names    []string
		err      bool
	}{
		{"none", "2+3", []string{"2+3"}, nil, false},
		{"one", "2{x}", []string{"2", ""}, []string{"x"}, false},
		{"adjacent", "{a}{b}^-1", []string{"", "", "^-1"}, []string{"a", "b"}, false},
		{"spaced", "{ a }", []string{"", ""}, []string{"a"}, false},
		{"stray-close", "2}", []string{"2}"}, nil, false},
		{"unclosed", "{a", nil, nil, true},
		{"empty", "{}", nil, nil, true},
		{"nested", "{{a}}", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, names, err := splitTemplate(tt.src)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.segments, segments)
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestLoadDefs(t *testing.T) {
	defs, err := loadDefs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, defs)

	defs, err = loadDefs(strings.NewReader("definitions:\n  - {name: a, expr: '2'}\n  - {name: b, expr: '{a}meter'}\n"))
	require.NoError(t, err)
	assert.Equal(t, []definition{{Name: "a", Expr: "2"}, {Name: "b", Expr: "{a}meter"}}, defs)

	_, err = loadDefs(strings.NewReader("defs: []\n"))
	assert.Error(t, err)
}
