package pkg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestWriteLinesAtomic(t *testing.T) {
	convey.Convey("writes joined lines and leaves no temp file", t, func() {
		dir := t.TempDir()
		out := filepath.Join(dir, DefaultOutput)
		convey.So(WriteLinesAtomic(out, []string{"a = 1", `b = ""`}), convey.ShouldBeNil)

		data, err := os.ReadFile(out)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "a = 1\nb = \"\"")

		entries, err := os.ReadDir(dir)
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(entries), convey.ShouldEqual, 1)

		exist, err := CheckFileExist(out)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeTrue)

		fi, err := os.Stat(out)
		convey.So(err, convey.ShouldBeNil)
		convey.So(fi.Mode().Perm(), convey.ShouldEqual, os.FileMode(0o644))
	})

	convey.Convey("rewriting keeps the existing mode", t, func() {
		out := filepath.Join(t.TempDir(), DefaultOutput)
		convey.So(os.WriteFile(out, []byte("old = 1"), 0o600), convey.ShouldBeNil)
		convey.So(os.Chmod(out, 0o640), convey.ShouldBeNil)
		convey.So(WriteLinesAtomic(out, []string{"new = 2"}), convey.ShouldBeNil)

		fi, err := os.Stat(out)
		convey.So(err, convey.ShouldBeNil)
		convey.So(fi.Mode().Perm(), convey.ShouldEqual, os.FileMode(0o640))
		data, err := os.ReadFile(out)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "new = 2")
	})

	convey.Convey("missing directory fails", t, func() {
		err := WriteLinesAtomic(filepath.Join(t.TempDir(), "nope", "x.toml"), []string{"a = 1"})
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestLoadRunConfig(t *testing.T) {
	convey.Convey("yaml keys map onto the run config", t, func() {
		path := filepath.Join(t.TempDir(), "run.yaml")
		src := "output: out.toml\nsentinel: END\nlegacy: true\nlog-level: debug\n"
		convey.So(os.WriteFile(path, []byte(src), 0o644), convey.ShouldBeNil)

		cfg, err := LoadRunConfig(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Output, convey.ShouldEqual, "out.toml")
		convey.So(cfg.Sentinel, convey.ShouldEqual, "END")
		convey.So(cfg.Legacy, convey.ShouldBeTrue)
		convey.So(cfg.Verify, convey.ShouldBeFalse)
		convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
	})

	convey.Convey("malformed yaml", t, func() {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		convey.So(os.WriteFile(path, []byte("output: [unclosed"), 0o644), convey.ShouldBeNil)
		_, err := LoadRunConfig(path)
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestNewLogger(t *testing.T) {
	convey.Convey("level and format", t, func() {
		var b bytes.Buffer
		l := NewLogger(&b, "warn", "json")
		l.Info("hidden")
		l.Warn("shown")
		convey.So(b.String(), convey.ShouldNotContainSubstring, "hidden")
		convey.So(b.String(), convey.ShouldContainSubstring, `"msg":"shown"`)

		b.Reset()
		NewLogger(&b, "bogus", "text").Info("fallback")
		convey.So(b.String(), convey.ShouldContainSubstring, "msg=fallback")
	})
}
