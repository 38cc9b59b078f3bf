package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wilenwang/just_play/Deck/internal/card"
	"github.com/wilenwang/just_play/Deck/internal/common/models"
)

// 颜色定义
var (
	// 牌面颜色
	suitRed   = lipgloss.Color("196") // 红心、方块 - 亮红色
	suitBlack = lipgloss.Color("15")  // 黑桃、梅花 - 亮白色
	jokerHue  = lipgloss.Color("171") // 王 - 紫色
	backColor = lipgloss.Color("239") // 牌背 - 深灰色

	// 边框颜色
	borderColor    = lipgloss.Color("240") // 边框
	highlightColor = lipgloss.Color("214") // 高亮
)

// CardStyle 扑克牌渲染样式
type CardStyle struct {
	Width    int             // 牌宽度
	Height   int             // 牌高度
	Border   lipgloss.Border // 边框样式
	ShowRank bool            // 显示点数
	ShowSuit bool            // 显示花色
	Compact  bool            // 紧凑模式
}

// DefaultCardStyle 默认样式
var DefaultCardStyle = CardStyle{
	Width:    5,
	Height:   3,
	Border:   lipgloss.RoundedBorder(),
	ShowRank: true,
	ShowSuit: true,
}

// GetCardColor 获取牌面的颜色
func GetCardColor(c card.Card) lipgloss.Color {
	switch {
	case c.Suit() == card.Joker:
		return jokerHue
	case c.IsRed():
		return suitRed
	}
	return suitBlack
}

// RankToString 将点数转换为显示字符串，王显示为 "JK"
func RankToString(c card.Card) string {
	if c.IsJoker() {
		return "JK"
	}
	return c.Rank().String()
}

// RenderCard 渲染单张扑克牌（带颜色）
func RenderCard(c card.Card, faceUp bool) string {
	return RenderCardWithStyle(c, faceUp, DefaultCardStyle)
}

// RenderCardWithStyle 使用自定义样式渲染牌
func RenderCardWithStyle(c card.Card, faceUp bool, style CardStyle) string {
	if !faceUp {
		return renderCardBackWithStyle(style)
	}

	var content strings.Builder
	if style.ShowRank {
		content.WriteString(RankToString(c))
	}
	if style.ShowRank && style.ShowSuit {
		content.WriteString("\n")
	}
	if style.ShowSuit {
		content.WriteString(c.Suit().Symbol())
	}

	borderStyle := lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(borderColor).
		Width(style.Width).
		Height(style.Height).
		Padding(0, 1)

	innerStyle := lipgloss.NewStyle().
		Foreground(GetCardColor(c)).
		Bold(true)

	if style.Compact {
		innerStyle = innerStyle.Align(lipgloss.Left)
	} else {
		innerStyle = innerStyle.Align(lipgloss.Center)
	}

	return borderStyle.Render(innerStyle.Render(content.String()))
}

// RenderCardBack 渲染牌背
func RenderCardBack() string {
	return renderCardBackWithStyle(DefaultCardStyle)
}

func renderCardBackWithStyle(style CardStyle) string {
	return lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(borderColor).
		Background(backColor).
		Width(style.Width).
		Height(style.Height).
		Align(lipgloss.Center).
		Bold(true).
		Render("??")
}

// RenderCards 渲染多张扑克牌（水平排列）
func RenderCards(cards []card.Card, faceUp bool) string {
	if len(cards) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, RenderCard(c, faceUp))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderCardCompact 紧凑模式渲染单张牌
func RenderCardCompact(c card.Card, faceUp bool) string {
	return lipgloss.NewStyle().
		Foreground(GetCardColor(c)).
		Render(RenderCardASCII(c, faceUp))
}

// RenderCardsCompact 紧凑模式渲染多张牌
func RenderCardsCompact(cards []card.Card, faceUp bool) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, RenderCardCompact(c, faceUp))
	}
	return strings.Join(rendered, " ")
}

// RenderCardASCII ASCII版本渲染（无颜色，适合不支持颜色的终端）
func RenderCardASCII(c card.Card, faceUp bool) string {
	if !faceUp {
		return "[??]"
	}
	return fmt.Sprintf("[%s%s]", RankToString(c), c.Suit().Symbol())
}

// WrapCards 把紧凑渲染的牌按每行 perLine 张折行
func WrapCards(cards []card.Card, perLine int) string {
	if perLine <= 0 {
		perLine = max(len(cards), 1)
	}
	var lines []string
	for start := 0; start < len(cards); start += perLine {
		end := min(start+perLine, len(cards))
		lines = append(lines, RenderCardsCompact(cards[start:end], true))
	}
	return strings.Join(lines, "\n")
}

// RenderHand 渲染一名玩家的手牌行
func RenderHand(p *models.Player) string {
	name := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%-10s", p.Name))
	if !p.HasHand() {
		return lipgloss.JoinHorizontal(lipgloss.Center, name, " ", RenderCardBack())
	}
	return fmt.Sprintf("%s (%2d) %s", name, p.HandSize(), RenderCardsCompact(p.Hand, true))
}

// RenderHands 渲染所有玩家的手牌
func RenderHands(players []*models.Player) string {
	rows := make([]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, RenderHand(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderDeckSummary 渲染牌组概要（张数 + 牌顶）
func RenderDeckSummary(d *card.Deck) string {
	label := highlightStyle().Render(fmt.Sprintf("牌组: %d 张", d.Size()))
	top, err := d.Peek()
	if err != nil {
		return label + "  牌顶: (空)"
	}
	return label + "  牌顶: " + RenderCardCompact(top, true)
}

// RenderDeckBox 带边框渲染整副牌
func RenderDeckBox(d *card.Deck, perLine int) string {
	body := WrapCards(d.Cards(), perLine)
	if body == "" {
		body = "(空)"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Padding(0, 1).
		Render(RenderDeckSummary(d) + "\n\n" + body)
}

// highlightStyle 返回高亮样式
func highlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(highlightColor).
		Bold(true)
}
