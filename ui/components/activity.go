package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wilenwang/just_play/Deck/pkg/history"
)

// ActivityModel 操作日志组件，同时承载一个单行输入框（例如发牌人数）
type ActivityModel struct {
	entries   []history.Entry // 最近的操作记录
	input     textinput.Model // 输入框
	prompting bool            // 是否正在等待输入
	maxLines  int             // 最大显示行数
	width     int             // 组件宽度
}

// NewActivityModel 创建新的操作日志组件
func NewActivityModel() *ActivityModel {
	ti := textinput.New()
	ti.Prompt = "» "
	ti.CharLimit = 3
	ti.Width = 10

	return &ActivityModel{
		input:    ti,
		maxLines: 8,
		width:    48,
	}
}

// SetEntries 设置要显示的操作记录
func (m *ActivityModel) SetEntries(entries []history.Entry) {
	m.entries = entries
}

// SetSize 设置组件宽度和日志行数
func (m *ActivityModel) SetSize(width, lines int) {
	if width > 0 {
		m.width = width
	}
	if lines > 0 {
		m.maxLines = lines
	}
}

// MaxLines 返回日志最多显示的行数
func (m *ActivityModel) MaxLines() int {
	return m.maxLines
}

// StartPrompt 聚焦输入框并显示提示
func (m *ActivityModel) StartPrompt(placeholder, value string) tea.Cmd {
	m.prompting = true
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// StopPrompt 取消输入
func (m *ActivityModel) StopPrompt() {
	m.prompting = false
	m.input.Blur()
	m.input.Reset()
}

// Prompting 返回是否正在等待输入
func (m *ActivityModel) Prompting() bool {
	return m.prompting
}

// Value 返回输入框内容
func (m *ActivityModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Update 处理消息，仅在等待输入时转发给输入框
func (m *ActivityModel) Update(msg tea.Msg) (*ActivityModel, tea.Cmd) {
	if !m.prompting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View 返回组件的渲染字符串
func (m *ActivityModel) View() string {
	var content strings.Builder

	content.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Render(" 操作日志 ") + "\n")

	start := 0
	if len(m.entries) > m.maxLines {
		start = len(m.entries) - m.maxLines
	}
	for _, e := range m.entries[start:] {
		line := e.Timestamp.Format("15:04:05") + " " + e.String()
		if e.Failed() {
			line = lipgloss.NewStyle().Foreground(suitRed).Render(line)
		} else {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Render(line)
		}
		content.WriteString(line + "\n")
	}

	// 填充空白行
	for i := len(m.entries) - start; i < m.maxLines; i++ {
		content.WriteString("\n")
	}

	if m.prompting {
		content.WriteString("\n发牌人数 " + m.input.View())
		content.WriteString("\n" + lipgloss.NewStyle().
			Foreground(borderColor).
			Render(" Enter: 确认  |  Esc: 取消"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width).
		Render(content.String())
}
