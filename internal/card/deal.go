package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlayers 表示发牌人数不合法
var ErrInvalidPlayers = errors.New("number of players must be positive")

// Hand 表示发给一名玩家的牌，按发牌顺序排列
type Hand []Card

// String 返回以 ", " 分隔的手牌
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Deal 把牌平均发给 n 名玩家。
// 每轮从牌顶依次给每名玩家发一张，剩余不足 n 张时停止，余牌留在牌组中。
// n 必须在 1 到牌数之间。
func (d *Deck) Deal(n int) ([]Hand, error) {
	if n <= 0 {
		return nil, ErrInvalidPlayers
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: %d players, %d cards", ErrInvalidPlayers, n, len(d.cards))
	}

	hands := make([]Hand, n)
	perHand := len(d.cards) / n
	for i := range hands {
		hands[i] = make(Hand, 0, perHand)
	}

	for len(d.cards) >= n {
		for i := 0; i < n; i++ {
			c, _ := d.Take()
			hands[i] = append(hands[i], c)
		}
	}
	return hands, nil
}
