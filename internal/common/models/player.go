package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wilenwang/just_play/Deck/internal/card"
)

// PlayerStatus 表示玩家的状态
type PlayerStatus int

const (
	PlayerStatusWaiting PlayerStatus = iota // 等待发牌
	PlayerStatusDealt                       // 已发牌
)

func (s PlayerStatus) String() string {
	names := []string{"等待发牌", "已发牌"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "未知"
}

// Player 表示一名接收发牌的玩家
type Player struct {
	ID     string       // 玩家唯一标识
	Name   string       // 玩家名称
	Seat   int          // 座位号（从 0 开始，对应发牌顺序）
	Status PlayerStatus // 玩家状态
	Hand   card.Hand    // 手牌
}

// NewPlayer 创建一个新玩家
func NewPlayer(id, name string, seat int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Seat:   seat,
		Status: PlayerStatusWaiting,
	}
}

// NewPlayerWithID 使用自动生成的ID创建新玩家
func NewPlayerWithID(name string, seat int) *Player {
	return NewPlayer(uuid.NewString(), name, seat)
}

// ReceiveHand 设置玩家的手牌
func (p *Player) ReceiveHand(h card.Hand) {
	p.Hand = append(card.Hand(nil), h...)
	p.Status = PlayerStatusDealt
}

// HasHand 判断玩家是否已发到牌
func (p *Player) HasHand() bool {
	return p.Status == PlayerStatusDealt
}

// HandSize 返回手牌张数
func (p *Player) HandSize() int {
	return len(p.Hand)
}

// GetHandDisplay 返回手牌的显示字符串
func (p *Player) GetHandDisplay() string {
	if !p.HasHand() {
		return "[  ?  ]"
	}
	return p.Hand.String()
}

// DefaultNames 生成 n 个默认玩家名（"Player 1" ...）
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}

// SeatPlayers 按座位顺序把发出的手牌分配给玩家。
// names 不足时用默认名补齐，多余的名字被忽略。
func SeatPlayers(names []string, hands []card.Hand) []*Player {
	defaults := DefaultNames(len(hands))
	players := make([]*Player, len(hands))
	for i, h := range hands {
		name := defaults[i]
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		p := NewPlayerWithID(name, i)
		p.ReceiveHand(h)
		players[i] = p
	}
	return players
}
