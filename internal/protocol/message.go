package protocol

import (
	"time"

	"github.com/wilenwang/just_play/Deck/internal/card"
	"github.com/wilenwang/just_play/Deck/internal/common/models"
)

// MessageType 表示消息类型
type MessageType string

const (
	MsgTypeDeckState MessageType = "deck_state" // 牌组快照
	MsgTypeDeal      MessageType = "deal"       // 发牌结果
	MsgTypeDraw      MessageType = "draw"       // 抽牌结果
	MsgTypeRemoval   MessageType = "removal"    // 去王 / 去重结果
)

// Message 可以输出为文本的消息
type Message interface {
	Text() string
}

// BaseMessage 消息基类
type BaseMessage struct {
	Type      MessageType `json:"type" yaml:"type"`           // 消息类型
	Timestamp int64       `json:"timestamp" yaml:"timestamp"` // 时间戳
}

// CardInfo 单张牌的公开信息
type CardInfo struct {
	Rank  int    `json:"rank" yaml:"rank"`   // 点数（0 表示王）
	Suit  string `json:"suit" yaml:"suit"`   // 花色缩写
	Label string `json:"label" yaml:"label"` // 显示字符串
}

// DeckState 牌组快照
type DeckState struct {
	BaseMessage `yaml:",inline"`
	Size        int        `json:"size" yaml:"size"`   // 牌数
	Cards       []CardInfo `json:"cards" yaml:"cards"` // 从牌底到牌顶
}

// PlayerInfo 玩家及其手牌
type PlayerInfo struct {
	ID   string     `json:"id" yaml:"id"`     // 玩家ID
	Name string     `json:"name" yaml:"name"` // 玩家名称
	Seat int        `json:"seat" yaml:"seat"` // 座位号
	Hand []CardInfo `json:"hand" yaml:"hand"` // 手牌
}

// DealResult 发牌结果
type DealResult struct {
	BaseMessage `yaml:",inline"`
	Players     []PlayerInfo `json:"players" yaml:"players"`     // 所有玩家
	Remaining   []CardInfo   `json:"remaining" yaml:"remaining"` // 未发出的余牌
}

// DrawResult 随机抽牌结果
type DrawResult struct {
	BaseMessage `yaml:",inline"`
	Drawn       []CardInfo `json:"drawn" yaml:"drawn"`         // 抽到的牌
	Remaining   int        `json:"remaining" yaml:"remaining"` // 剩余牌数
}

// RemovalResult 去王或去重的结果
type RemovalResult struct {
	BaseMessage `yaml:",inline"`
	Operation   string `json:"operation" yaml:"operation"`                 // remove_jokers / remove_duplicates
	Removed     int    `json:"removed" yaml:"removed"`                     // 移除张数
	Indices     []int  `json:"indices,omitempty" yaml:"indices,omitempty"` // 被移除牌的原始下标（降序）
	Size        int    `json:"size" yaml:"size"`                           // 剩余牌数
}

// NewBaseMessage 创建带时间戳的基本消息
func NewBaseMessage(msgType MessageType) BaseMessage {
	return BaseMessage{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewCardInfo 从扑克牌生成公开信息
func NewCardInfo(c card.Card) CardInfo {
	return CardInfo{
		Rank:  int(c.Rank()),
		Suit:  c.Suit().String(),
		Label: c.String(),
	}
}

// NewCardInfos 批量转换
func NewCardInfos(cards []card.Card) []CardInfo {
	infos := make([]CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = NewCardInfo(c)
	}
	return infos
}

// NewDeckState 生成牌组快照
func NewDeckState(d *card.Deck) *DeckState {
	return &DeckState{
		BaseMessage: NewBaseMessage(MsgTypeDeckState),
		Size:        d.Size(),
		Cards:       NewCardInfos(d.Cards()),
	}
}

// NewDealResult 生成发牌结果
func NewDealResult(players []*models.Player, d *card.Deck) *DealResult {
	infos := make([]PlayerInfo, len(players))
	for i, p := range players {
		infos[i] = PlayerInfo{
			ID:   p.ID,
			Name: p.Name,
			Seat: p.Seat,
			Hand: NewCardInfos(p.Hand),
		}
	}
	return &DealResult{
		BaseMessage: NewBaseMessage(MsgTypeDeal),
		Players:     infos,
		Remaining:   NewCardInfos(d.Cards()),
	}
}

// NewDrawResult 生成抽牌结果
func NewDrawResult(drawn []card.Card, remaining int) *DrawResult {
	return &DrawResult{
		BaseMessage: NewBaseMessage(MsgTypeDraw),
		Drawn:       NewCardInfos(drawn),
		Remaining:   remaining,
	}
}

// NewRemovalResult 生成去王 / 去重结果
func NewRemovalResult(operation string, removed int, indices []int, size int) *RemovalResult {
	return &RemovalResult{
		BaseMessage: NewBaseMessage(MsgTypeRemoval),
		Operation:   operation,
		Removed:     removed,
		Indices:     indices,
		Size:        size,
	}
}
