package toml

// toml 包负责读取翻译器输出的 TOML：校验、解析以及按点分路径取值。
// 解析工作交给 BurntSushi/toml，本包只提供路径访问和错误定位。

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Table 是解析后的根表
type Table map[string]any

// Parse 解析 r 中的 TOML 文本
func Parse(r io.Reader) (Table, error) {
	root := Table{}
	if _, err := toml.NewDecoder(r).Decode((*map[string]any)(&root)); err != nil {
		return nil, wrapParseError(err)
	}
	return root, nil
}

// Verify 检查 lines 以换行连接后是否为合法 TOML
func Verify(lines []string) error {
	_, err := Parse(strings.NewReader(strings.Join(lines, "\n")))
	return err
}

func wrapParseError(err error) error {
	var pe toml.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("toml:%d: %s", pe.Position.Line, pe.Message)
	}
	return fmt.Errorf("toml: %w", err)
}

// =========================
// Safe Access Helpers
// =========================

// Get 按路径逐级查找，空路径段会被跳过
func Get(root Table, path ...string) (any, bool) {
	var cur any = map[string]any(root)
	for _, p := range path {
		if len(p) == 0 {
			continue
		}
		t, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = t[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Lookup 以点分键查找，例如 "dictionary.name"
func Lookup(root Table, key string) (any, bool) {
	return Get(root, strings.Split(key, ".")...)
}

// Keys 返回根表的键，按字典序排列
func Keys(root Table) []string {
	keys := make([]string, 0, len(root))
	for k := range root {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Format 将取到的值格式化为 TOML 文本：表输出为多行赋值，其余值输出为单行内联形式
func Format(w io.Writer, v any) error {
	if m, ok := v.(map[string]any); ok {
		return toml.NewEncoder(w).Encode(m)
	}
	s, err := formatInline(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// formatInline 递归输出内联值，数组中的表写成 {k = v} 而不是 [[...]] 表头
func formatInline(v any) (string, error) {
	switch val := v.(type) {
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			s, err := formatInline(elem)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case []map[string]any:
		elems := make([]any, len(val))
		for i := range val {
			elems[i] = val[i]
		}
		return formatInline(elems)
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			s, err := formatInline(val[k])
			if err != nil {
				return "", err
			}
			parts[i] = formatKey(k) + " = " + s
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	}
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(map[string]any{"v": v}); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimPrefix(b.String(), "v = ")), nil
}

var bareKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func formatKey(k string) string {
	if bareKeyPattern.MatchString(k) {
		return k
	}
	return strconv.Quote(k)
}
