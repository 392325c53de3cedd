package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/deftoml/parse/toml"
	"github.com/dzjyyds666/deftoml/pkg"
)

type TomlParams struct {
	Find  string `json:"find"`  // 查找的key，点分路径
	Input string `json:"input"` // 输入文件路径
}

var params = &TomlParams{}

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tomlRun(cmd.OutOrStdout(), params)
	},
}

func init() {
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "find")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", pkg.DefaultOutput, "input file path")
}

// tomlRun 解析 TOML 文件；指定 --find 时输出对应的值，否则列出顶层键
func tomlRun(w io.Writer, p *TomlParams) error {
	if len(p.Input) == 0 {
		return fmt.Errorf("no input file path")
	}
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

	root, err := toml.Parse(f)
	if err != nil {
		return err
	}
	if p.Find == "" {
		for _, k := range toml.Keys(root) {
			fmt.Fprintln(w, k)
		}
		return nil
	}
	v, ok := toml.Lookup(root, p.Find)
	if !ok {
		return fmt.Errorf("key %q not found", p.Find)
	}
	return toml.Format(w, v)
}
