package cmd

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/dzjyyds666/deftoml/parse/translate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunTranslate(t *testing.T) {
	convey.Convey("writes the output file", t, func() {
		out := filepath.Join(t.TempDir(), "res_output.toml")
		p := &TranslateParams{Output: out, Sentinel: translate.DefaultSentinel, Verify: true}
		src := "(def n 3)\n|n|\nfoo(1, 2)\n$[ a: 1 ]\n-1\nignored(\n"

		err := runTranslate(strings.NewReader(src), io.Discard, io.Discard, p, discardLogger())
		convey.So(err, convey.ShouldBeNil)
		data, err := os.ReadFile(out)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "value2 = 3\nfoo = [1, 2]\ndictionary = {a = 1}")
	})

	convey.Convey("failure leaves no file", t, func() {
		out := filepath.Join(t.TempDir(), "res_output.toml")
		p := &TranslateParams{Output: out, Sentinel: translate.DefaultSentinel}

		err := runTranslate(strings.NewReader("ok\n|nope|\n"), io.Discard, io.Discard, p, discardLogger())
		convey.So(errors.Is(err, translate.ErrUndefinedConstant), convey.ShouldBeTrue)
		_, statErr := os.Stat(out)
		convey.So(os.IsNotExist(statErr), convey.ShouldBeTrue)

		err = runTranslate(strings.NewReader("-1\n"), io.Discard, io.Discard, p, discardLogger())
		convey.So(errors.Is(err, translate.ErrNoData), convey.ShouldBeTrue)
	})

	convey.Convey("verify rejects legacy duplicate keys", t, func() {
		var stdout bytes.Buffer
		p := &TranslateParams{Sentinel: translate.DefaultSentinel, Legacy: true, Verify: true, Stdout: true}
		err := runTranslate(strings.NewReader("$[ a: 1 ]\n$[ b: 2 ]\n"), &stdout, io.Discard, p, discardLogger())
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(stdout.Len(), convey.ShouldEqual, 0)

		p.Verify = false
		err = runTranslate(strings.NewReader("$[ a: 1 ]\n$[ b: 2 ]\n"), &stdout, io.Discard, p, discardLogger())
		convey.So(err, convey.ShouldBeNil)
		convey.So(stdout.String(), convey.ShouldEqual, "dictionary = {a = 1}\ndictionary = {b = 2}\n")
	})

	convey.Convey("reads from an input file", t, func() {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.conf")
		convey.So(os.WriteFile(in, []byte("alpha\n"), 0o644), convey.ShouldBeNil)
		var stdout bytes.Buffer
		p := &TranslateParams{Input: in, Sentinel: translate.DefaultSentinel, Stdout: true}
		convey.So(runTranslate(strings.NewReader(""), &stdout, io.Discard, p, discardLogger()), convey.ShouldBeNil)
		convey.So(stdout.String(), convey.ShouldEqual, "alpha = \"\"\n")

		p.Input = filepath.Join(dir, "missing.conf")
		convey.So(runTranslate(strings.NewReader(""), &stdout, io.Discard, p, discardLogger()), convey.ShouldNotBeNil)
	})
}

func TestTomlRun(t *testing.T) {
	convey.Convey("lists keys and finds values", t, func() {
		path := filepath.Join(t.TempDir(), "res_output.toml")
		src := "value1 = 7\ndictionary = {name = \"db\", ports = [1, 2]}"
		convey.So(os.WriteFile(path, []byte(src), 0o644), convey.ShouldBeNil)

		var b bytes.Buffer
		convey.So(tomlRun(&b, &TomlParams{Input: path}), convey.ShouldBeNil)
		convey.So(b.String(), convey.ShouldEqual, "dictionary\nvalue1\n")

		b.Reset()
		convey.So(tomlRun(&b, &TomlParams{Input: path, Find: "dictionary.name"}), convey.ShouldBeNil)
		convey.So(strings.TrimSpace(b.String()), convey.ShouldEqual, `"db"`)

		b.Reset()
		convey.So(tomlRun(&b, &TomlParams{Input: path, Find: "dictionary.ports"}), convey.ShouldBeNil)
		convey.So(strings.TrimSpace(b.String()), convey.ShouldEqual, "[1, 2]")

		convey.So(tomlRun(&b, &TomlParams{Input: path, Find: "nope"}), convey.ShouldNotBeNil)
	})

	convey.Convey("named nested groups print inline", t, func() {
		out := filepath.Join(t.TempDir(), "res_output.toml")
		p := &TranslateParams{Output: out, Sentinel: translate.DefaultSentinel, Verify: true}
		convey.So(runTranslate(strings.NewReader("foo(bar(1), baz(2))\n"), io.Discard, io.Discard, p, discardLogger()), convey.ShouldBeNil)

		var b bytes.Buffer
		convey.So(tomlRun(&b, &TomlParams{Input: out, Find: "foo"}), convey.ShouldBeNil)
		convey.So(b.String(), convey.ShouldEqual, "[{bar = [1]}, {baz = [2]}]\n")
	})
}

func TestTranslateCommandConfig(t *testing.T) {
	convey.Convey("config file fills unset flags", t, func() {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.conf")
		cfg := filepath.Join(dir, "run.yaml")
		convey.So(os.WriteFile(in, []byte("one\nEND\ntwo\n"), 0o644), convey.ShouldBeNil)
		convey.So(os.WriteFile(cfg, []byte("input: "+in+"\nsentinel: END\nlog-level: error\n"), 0o644), convey.ShouldBeNil)

		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs([]string{"translate", "--config", cfg, "--stdout"})
		defer rootCmd.SetArgs(nil)

		convey.So(rootCmd.Execute(), convey.ShouldBeNil)
		convey.So(stdout.String(), convey.ShouldEqual, "one = \"\"\n")
		convey.So(globals.LogLevel, convey.ShouldEqual, "error")
	})
}

func TestCommandTree(t *testing.T) {
	convey.Convey("root command and subcommands", t, func() {
		convey.So(rootCmd.Name(), convey.ShouldEqual, "deftoml")
		for _, name := range []string{"version", "translate", "toml"} {
			c, _, err := rootCmd.Find([]string{name})
			convey.So(err, convey.ShouldBeNil)
			convey.So(c.Name(), convey.ShouldEqual, name)
		}
	})
}
