package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/deftoml/pkg"
)

var rootCmd = &cobra.Command{
	Use:   "deftoml",
	Short: "Deftoml translates the def/array/dictionary configuration language into TOML.",
	Long:  "Deftoml translates a small line-oriented configuration language into TOML and inspects the TOML it produces.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// GlobalParams 所有子命令共享的参数
type GlobalParams struct {
	Config    string `json:"config"`     // YAML 配置文件路径
	LogLevel  string `json:"log_level"`  // 日志级别
	LogFormat string `json:"log_format"` // 日志格式 text/json
}

var globals = &GlobalParams{}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger := pkg.NewLogger(os.Stderr, globals.LogLevel, globals.LogFormat)
		logger.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Deftoml",
	Long:  `All software has versions. This is Deftoml's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Deftoml v0.2 -- HEAD")
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVarP(&globals.Config, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&globals.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&globals.LogFormat, "log-format", "text", "log format: text, json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(tomlCmd)
}
