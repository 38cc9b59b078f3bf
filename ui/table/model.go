package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wilenwang/just_play/Deck/internal/card"
	"github.com/wilenwang/just_play/Deck/internal/common/models"
	"github.com/wilenwang/just_play/Deck/pkg/history"
	"github.com/wilenwang/just_play/Deck/ui/components"
)

// 样式定义
var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF79C6")).MarginBottom(1)
	styleSubtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	styleButton   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2")).Padding(0, 1)
	styleSelected = lipgloss.NewStyle().Background(lipgloss.Color("#FF79C6")).Foreground(lipgloss.Color("#F8F8F2")).Padding(0, 1)
)

// 日志面板布局
const (
	menuWidth     = 24 // 菜单列宽度
	reservedLines = 32 // 标题、牌组、手牌和帮助栏大致占用的行数
)

// errNothingToPut 没有摸到手上的牌可以放回
var errNothingToPut = errors.New("no taken card to put back")

type menuItem struct {
	label    string
	shortcut key.Binding
	op       history.Operation
}

func newMenuItem(label, shortcut string, op history.Operation) menuItem {
	return menuItem{
		label:    label,
		shortcut: key.NewBinding(key.WithKeys(shortcut), key.WithHelp(shortcut, label)),
		op:       op,
	}
}

func defaultMenu() []menuItem {
	return []menuItem{
		newMenuItem("洗牌", "s", history.OpShuffle),
		newMenuItem("按点数排序", "o", history.OpSort),
		newMenuItem("按花色排序", "u", history.OpSortBySuit),
		newMenuItem("按牌值排序", "v", history.OpSortByValue),
		newMenuItem("摸牌", "t", history.OpTake),
		newMenuItem("放回", "p", history.OpPut),
		newMenuItem("随机抽牌", "r", history.OpPick),
		newMenuItem("去掉王", "z", history.OpRemoveJokers),
		newMenuItem("去掉重复", "x", history.OpRemoveDuplicates),
		newMenuItem("发牌", "d", history.OpDeal),
		newMenuItem("重置", "n", history.OpReset),
	}
}

// Options TUI 配置
type Options struct {
	Players      int      // 发牌输入框的默认人数
	Names        []string // 玩家名称
	HistoryLimit int      // 保留的操作记录条数
	PerLine      int      // 每行显示的牌数
}

// Model TUI 模型
type Model struct {
	deck     *card.Deck
	recorder *history.Recorder
	activity *components.ActivityModel
	keys     keyMap
	help     help.Model
	menu     []menuItem
	selected int
	players  []*models.Player
	held     []card.Card // 摸牌 / 抽牌拿到手上的牌，放回时后进先出
	opts     Options
	width    int
}

// NewModel 创建新的 TUI 模型
func NewModel(deck *card.Deck, opts Options) *Model {
	if opts.Players <= 0 {
		opts.Players = 4
	}
	if opts.PerLine <= 0 {
		opts.PerLine = 13
	}
	m := &Model{
		deck:     deck,
		recorder: history.NewRecorder(opts.HistoryLimit),
		activity: components.NewActivityModel(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		menu:     defaultMenu(),
		opts:     opts,
	}
	m.recorder.Record(history.OpNew, "", deck.Size())
	m.refreshActivity()
	return m
}

// Deck 返回当前牌组
func (m *Model) Deck() *card.Deck {
	return m.deck
}

// Players 返回最近一次发牌的玩家
func (m *Model) Players() []*models.Player {
	return m.players
}

// Held 返回手上的牌
func (m *Model) Held() []card.Card {
	return m.held
}

// History 返回操作记录
func (m *Model) History() *history.Recorder {
	return m.recorder
}

// Init 初始化
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update 更新模型
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.activity.Prompting() {
			return m.handlePromptKey(msg)
		}
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		// 日志面板占菜单右侧的剩余宽度，行数随窗口高度变化
		m.activity.SetSize(max(msg.Width-menuWidth, 0), max(msg.Height-reservedLines, 0))
		m.refreshActivity()
		return m, nil
	}

	return m, nil
}

// handleKeyMsg 处理键盘消息
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.menu)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Select):
		return m, m.apply(m.menu[m.selected].op)

	default:
		for i, item := range m.menu {
			if key.Matches(msg, item.shortcut) {
				m.selected = i
				return m, m.apply(item.op)
			}
		}
	}

	return m, nil
}

// handlePromptKey 处理发牌人数输入
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.activity.StopPrompt()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		value := m.activity.Value()
		m.activity.StopPrompt()
		m.deal(value)
		return m, nil
	}

	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	return m, cmd
}

// apply 对牌组执行一次操作并记录
func (m *Model) apply(op history.Operation) tea.Cmd {
	switch op {
	case history.OpShuffle:
		m.deck.Shuffle()
		m.recorder.Record(op, "", m.deck.Size())

	case history.OpSort:
		m.deck.Sort()
		m.recorder.Record(op, "", m.deck.Size())

	case history.OpSortBySuit:
		m.deck.SortBySuit()
		m.recorder.Record(op, "", m.deck.Size())

	case history.OpSortByValue:
		m.deck.SortByValue()
		m.recorder.Record(op, "", m.deck.Size())

	case history.OpTake, history.OpPick:
		take := m.deck.Take
		if op == history.OpPick {
			take = m.deck.PickByRandom
		}
		c, err := take()
		if err != nil {
			m.recorder.RecordError(op, err, m.deck.Size())
			break
		}
		m.held = append(m.held, c)
		m.recorder.Record(op, c.String(), m.deck.Size())

	case history.OpPut:
		if len(m.held) == 0 {
			m.recorder.RecordError(op, errNothingToPut, m.deck.Size())
			break
		}
		c := m.held[len(m.held)-1]
		m.held = m.held[:len(m.held)-1]
		m.deck.Put(c)
		m.recorder.Record(op, c.String(), m.deck.Size())

	case history.OpRemoveJokers:
		n := m.deck.RemoveJokers()
		m.recorder.Record(op, fmt.Sprintf("移除 %d 张", n), m.deck.Size())

	case history.OpRemoveDuplicates:
		removed := m.deck.RemoveDuplicates()
		m.recorder.Record(op, fmt.Sprintf("移除 %d 张 %v", len(removed), removed), m.deck.Size())

	case history.OpDeal:
		return m.activity.StartPrompt("人数", strconv.Itoa(m.opts.Players))

	case history.OpReset:
		m.deck.Reset()
		m.players = nil
		m.held = nil
		m.recorder.Clear()
		m.recorder.Record(op, "", m.deck.Size())
	}

	m.refreshActivity()
	return nil
}

// deal 按输入的人数发牌
func (m *Model) deal(value string) {
	defer m.refreshActivity()

	n, err := strconv.Atoi(value)
	if err != nil {
		m.recorder.RecordError(history.OpDeal, fmt.Errorf("%w: %q", card.ErrInvalidPlayers, value), m.deck.Size())
		return
	}
	hands, err := m.deck.Deal(n)
	if err != nil {
		m.recorder.RecordError(history.OpDeal, err, m.deck.Size())
		return
	}

	m.players = models.SeatPlayers(m.opts.Names, hands)
	m.recorder.Record(history.OpDeal, fmt.Sprintf("%d 人, 每人 %d 张", n, len(hands[0])), m.deck.Size())
}

func (m *Model) refreshActivity() {
	m.activity.SetEntries(m.recorder.Recent(m.activity.MaxLines()))
}

// View 渲染视图
func (m *Model) View() string {
	var content strings.Builder

	// 标题
	content.WriteString(styleTitle.Render("Deck - 牌组控制台") + "\n")

	// 牌组
	content.WriteString(components.RenderDeckBox(m.deck, m.opts.PerLine) + "\n")

	// 手上的牌
	if len(m.held) > 0 {
		content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			styleSubtitle.Render("手上: "), components.RenderCards(m.held, true)) + "\n")
	}

	// 玩家手牌
	if len(m.players) > 0 {
		content.WriteString(styleSubtitle.Render("玩家:") + "\n")
		content.WriteString(components.RenderHands(m.players) + "\n")
	}

	// 菜单 + 日志
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderMenu(), " ", m.activity.View()))
	content.WriteString("\n" + m.help.View(m.keys))

	return content.String()
}

// renderMenu 渲染菜单
func (m *Model) renderMenu() string {
	items := make([]string, 0, len(m.menu))
	for i, item := range m.menu {
		label := fmt.Sprintf("%s  %s", item.shortcut.Help().Key, item.label)
		if i == m.selected {
			items = append(items, styleSelected.Render("> "+label))
		} else {
			items = append(items, styleButton.Render("  "+label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// Start 启动 TUI
func Start(deck *card.Deck, opts Options) error {
	p := tea.NewProgram(NewModel(deck, opts), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI 运行错误: %w", err)
	}
	return nil
}
