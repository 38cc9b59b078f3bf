package card

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const (
	// StandardSize 标准牌组中普通牌的数量
	StandardSize = 52
	// JokerCount 标准牌组中王的数量
	JokerCount = 3
	// FullSize 新牌组的总张数
	FullSize = StandardSize + JokerCount
)

// ErrEmptyDeck 表示牌组中没有足够的牌
var ErrEmptyDeck = errors.New("deck is empty")

// Deck 表示一副扑克牌。切片末尾是牌顶。
// 一副牌同一时间只能由一个调用方持有并修改。
type Deck struct {
	cards []Card     // 牌组中的所有牌
	rng   *rand.Rand // 洗牌和随机抽牌用的随机源，创建时初始化一次
}

// NewDeck 创建一副新的 55 张牌（52 张普通牌 + 3 张王），使用当前时间作为随机种子
func NewDeck() *Deck {
	return NewDeckWithRand(nil)
}

// NewDeckWithSeed 创建一副新牌并使用指定种子初始化随机源（不洗牌）
func NewDeckWithSeed(seed int64) *Deck {
	return NewDeckWithRand(rand.New(rand.NewSource(seed)))
}

// NewDeckWithRand 使用调用方提供的随机源创建一副新牌
func NewDeckWithRand(r *rand.Rand) *Deck {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rng: r}
	d.Reset()
	return d
}

// Reset 把牌组恢复为按生成顺序排列的 55 张牌
func (d *Deck) Reset() {
	d.cards = make([]Card, 0, FullSize)
	// 按花色和点数创建 52 张牌
	for _, suit := range StandardSuits() {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	for i := 0; i < JokerCount; i++ {
		d.cards = append(d.cards, NewJoker())
	}
}

// Size 返回牌组中的牌数
func (d *Deck) Size() int {
	return len(d.cards)
}

// Take 从牌顶取走一张牌
func (d *Deck) Take() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, nil
}

// TakeN 从牌顶取走 n 张牌，返回顺序与逐张 Take 相同
func (d *Deck) TakeN(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, ErrEmptyDeck
	}
	taken := make([]Card, n)
	for i := 0; i < n; i++ {
		taken[i], _ = d.Take()
	}
	return taken, nil
}

// Put 把一张牌放到牌顶
func (d *Deck) Put(c Card) {
	d.cards = append(d.cards, c)
}

// Peek 查看牌顶的牌但不取走
func (d *Deck) Peek() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return d.cards[len(d.cards)-1], nil
}

// PeekN 查看牌顶 n 张牌但不取走，顺序与 TakeN 相同
func (d *Deck) PeekN(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, ErrEmptyDeck
	}
	peeked := make([]Card, n)
	for i := 0; i < n; i++ {
		peeked[i] = d.cards[len(d.cards)-1-i]
	}
	return peeked, nil
}

// Burn 弃掉牌顶的 n 张牌
func (d *Deck) Burn(n int) error {
	if n < 0 || n > len(d.cards) {
		return ErrEmptyDeck
	}
	d.cards = d.cards[:len(d.cards)-n]
	return nil
}

// Cards 返回牌组中所有牌的副本
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// SetCards 用 list 的副本替换牌组内容
func (d *Deck) SetCards(list []Card) {
	d.cards = make([]Card, len(list))
	copy(d.cards, list)
}

// String 返回以 ", " 分隔的所有牌
func (d *Deck) String() string {
	parts := make([]string, len(d.cards))
	for i, c := range d.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Shuffle 使用牌组自带的随机源洗牌
func (d *Deck) Shuffle() {
	shuffle(d.rng, d.cards)
}

// ShuffleWithSeed 使用指定种子洗牌，结果可复现
func (d *Deck) ShuffleWithSeed(seed int64) {
	shuffle(rand.New(rand.NewSource(seed)), d.cards)
}

// Fisher-Yates 洗牌算法
func shuffle(r *rand.Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// PickByRandom 随机取走一张牌
func (d *Deck) PickByRandom() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	i := d.rng.Intn(len(d.cards))
	c := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return c, nil
}
