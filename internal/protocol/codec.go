package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format 输出格式
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat 表示不支持的输出格式
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat 解析输出格式（不区分大小写）
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode 按指定格式把消息写入 w
func Encode(w io.Writer, format Format, msg Message) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, msg.Text()+"\n")
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(msg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(msg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// Decode 把 JSON 或 YAML 数据解析到 v 中
func Decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatJSON:
		return json.NewDecoder(r).Decode(v)
	case FormatYAML:
		return yaml.NewDecoder(r).Decode(v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

func labels(cards []CardInfo) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Label
	}
	return strings.Join(parts, ", ")
}

// Text 返回牌组的文本表示
func (m *DeckState) Text() string {
	return fmt.Sprintf("Deck (%d): %s", m.Size, labels(m.Cards))
}

// Text 返回发牌结果的文本表示
func (m *DealResult) Text() string {
	var b strings.Builder
	for _, p := range m.Players {
		fmt.Fprintf(&b, "%s: %s\n", p.Name, labels(p.Hand))
	}
	fmt.Fprintf(&b, "Remaining (%d): %s", len(m.Remaining), labels(m.Remaining))
	return b.String()
}

// Text 返回抽牌结果的文本表示
func (m *DrawResult) Text() string {
	return fmt.Sprintf("Drawn: %s\nRemaining: %d", labels(m.Drawn), m.Remaining)
}

// Text 返回去王 / 去重结果的文本表示
func (m *RemovalResult) Text() string {
	if len(m.Indices) == 0 {
		return fmt.Sprintf("%s: removed %d, %d left", m.Operation, m.Removed, m.Size)
	}
	idx := make([]string, len(m.Indices))
	for i, n := range m.Indices {
		idx[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s: removed %d at [%s], %d left",
		m.Operation, m.Removed, strings.Join(idx, " "), m.Size)
}
