package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dzjyyds666/deftoml/parse/toml"
	"github.com/dzjyyds666/deftoml/parse/translate"
	"github.com/dzjyyds666/deftoml/pkg"
)

type TranslateParams struct {
	Input    string `json:"input"`    // 输入文件路径，为空或 "-" 时读取标准输入
	Output   string `json:"output"`   // 输出文件地址
	Sentinel string `json:"sentinel"` // 结束输入的行
	Legacy   bool   `json:"legacy"`   // 兼容旧版输出
	Verify   bool   `json:"verify"`   // 写入前校验 TOML
	Stdout   bool   `json:"stdout"`   // 输出到标准输出而不是文件
}

var translateParams = &TranslateParams{}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "translate configuration language lines into a TOML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfig(cmd, translateParams); err != nil {
			return err
		}
		logger := pkg.NewLogger(cmd.ErrOrStderr(), globals.LogLevel, globals.LogFormat)
		return runTranslate(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), translateParams, logger)
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateParams.Input, "input", "i", "", "input file path (default stdin)")
	translateCmd.Flags().StringVarP(&translateParams.Output, "output", "o", pkg.DefaultOutput, "output path")
	translateCmd.Flags().StringVar(&translateParams.Sentinel, "sentinel", translate.DefaultSentinel, "line that ends input")
	translateCmd.Flags().BoolVar(&translateParams.Legacy, "legacy", false, "reproduce legacy nested-array and dictionary-key output")
	translateCmd.Flags().BoolVar(&translateParams.Verify, "verify", false, "check the output is valid TOML before writing")
	translateCmd.Flags().BoolVar(&translateParams.Stdout, "stdout", false, "write the result to stdout")
}

// applyConfig 用 --config 文件中的值填充未在命令行显式设置的参数
func applyConfig(cmd *cobra.Command, p *TranslateParams) error {
	if globals.Config == "" {
		return nil
	}
	cfg, err := pkg.LoadRunConfig(globals.Config)
	if err != nil {
		return err
	}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.InheritedFlags().Lookup(name)
		}
		return f != nil && f.Changed
	}
	if !changed("input") && cfg.Input != "" {
		p.Input = cfg.Input
	}
	if !changed("output") && cfg.Output != "" {
		p.Output = cfg.Output
	}
	if !changed("sentinel") && cfg.Sentinel != "" {
		p.Sentinel = cfg.Sentinel
	}
	if !changed("legacy") && cfg.Legacy {
		p.Legacy = true
	}
	if !changed("verify") && cfg.Verify {
		p.Verify = true
	}
	if !changed("stdout") && cfg.Stdout {
		p.Stdout = true
	}
	if !changed("log-level") && cfg.LogLevel != "" {
		globals.LogLevel = cfg.LogLevel
	}
	if !changed("log-format") && cfg.LogFormat != "" {
		globals.LogFormat = cfg.LogFormat
	}
	return nil
}

func runTranslate(stdin io.Reader, stdout, stderr io.Writer, p *TranslateParams, logger *slog.Logger) error {
	in := stdin
	if p.Input != "" && p.Input != "-" {
		exist, err := pkg.CheckFileExist(p.Input)
		if err != nil {
			return fmt.Errorf("check file exist error: %w", err)
		}
		if !exist {
			return fmt.Errorf("input file not exist: %s", p.Input)
		}
		f, err := os.Open(p.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	} else if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintf(stderr, "Enter configuration lines (%s to finish):\n", p.Sentinel)
	}

	src := translate.NewSource(in, p.Sentinel)
	lines, err := translate.New(translate.Options{Legacy: p.Legacy, Logger: logger}).Run(src.Lines())
	if rerr := src.Err(); rerr != nil {
		return fmt.Errorf("read input: %w", rerr)
	}
	if err != nil {
		return err
	}

	if p.Verify {
		if err := toml.Verify(lines); err != nil {
			return fmt.Errorf("output is not valid TOML: %w", err)
		}
	}

	if p.Stdout {
		_, err := io.WriteString(stdout, strings.Join(lines, "\n")+"\n")
		return err
	}
	if err := pkg.WriteLinesAtomic(p.Output, lines); err != nil {
		return err
	}
	logger.Info("TOML file created successfully", slog.String("path", p.Output), slog.Int("lines", len(lines)))
	return nil
}
