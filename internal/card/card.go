package card

import (
	"errors"
	"fmt"
	"strconv"
)

// Suit 表示扑克牌的花色
type Suit int

const (
	Hearts   Suit = iota // 红心
	Diamonds             // 方块
	Spades               // 黑桃
	Clubs                // 梅花
	Joker                // 王（特殊花色）
)

// 花色缩写（用于显示）
var suitNames = []string{"H", "D", "S", "C", "Joker"}
var suitSymbols = []string{"♥", "♦", "♠", "♣", "★"}
var suitFullNames = []string{"红心", "方块", "黑桃", "梅花", "王"}

// Suits 按声明顺序返回所有花色（含 Joker）
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs, Joker}
}

// StandardSuits 返回四种普通花色
func StandardSuits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// String 返回花色的缩写表示
func (s Suit) String() string {
	if s >= 0 && int(s) < len(suitNames) {
		return suitNames[s]
	}
	return "?"
}

// Symbol 返回花色的符号表示
func (s Suit) Symbol() string {
	if s >= 0 && int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return "?"
}

// FullName 返回花色的中文全称
func (s Suit) FullName() string {
	if s >= 0 && int(s) < len(suitFullNames) {
		return suitFullNames[s]
	}
	return "未知"
}

// Valid 判断花色是否在枚举范围内
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Joker
}

// Rank 表示扑克牌的点数
type Rank int

const (
	JokerRank Rank = iota // 王没有点数
	Ace                   // A
	Two                   // 2
	Three                 // 3
	Four                  // 4
	Five                  // 5
	Six                   // 6
	Seven                 // 7
	Eight                 // 8
	Nine                  // 9
	Ten                   // 10
	Jack                  // J
	Queen                 // Q
	King                  // K
)

var rankSymbols = []string{
	"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

var rankNames = []string{
	"王", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

// String 返回点数的符号表示，超出范围的点数按十进制输出
func (r Rank) String() string {
	if r >= 0 && int(r) < len(rankSymbols) {
		return rankSymbols[r]
	}
	return strconv.Itoa(int(r))
}

// FullName 返回点数的全称
func (r Rank) FullName() string {
	if r >= 0 && int(r) < len(rankNames) {
		return rankNames[r]
	}
	return "未知"
}

// Valid 判断点数是否在 0..13 之内
func (r Rank) Valid() bool {
	return r >= JokerRank && r <= King
}

// ErrInvalidCard 表示牌的点数或花色超出定义范围
var ErrInvalidCard = errors.New("invalid card")

// Card 表示一张扑克牌。构造后不可修改，按值传递。
type Card struct {
	rank Rank
	suit Suit
}

// NewCard 创建一张新扑克牌，不做任何校验
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// NewJoker 创建一张王
func NewJoker() Card {
	return Card{rank: JokerRank, suit: Joker}
}

// Rank 返回点数
func (c Card) Rank() Rank {
	return c.rank
}

// Suit 返回花色
func (c Card) Suit() Suit {
	return c.suit
}

// Equal 只比较点数，花色不参与比较。
// 排序插入和去王都依赖这个语义；需要完全相同请用 Same。
func (c Card) Equal(other Card) bool {
	return c.rank == other.rank
}

// Same 比较点数和花色
func (c Card) Same(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit
}

// Less 按点数判断 c < other
func (c Card) Less(other Card) bool {
	return c.rank < other.rank
}

// Greater 按点数判断 c > other
func (c Card) Greater(other Card) bool {
	return c.rank > other.rank
}

// Compare 比较两张牌的大小
// 返回 1 表示 c > other, -1 表示 c < other, 0 表示点数相等
func (c Card) Compare(other Card) int {
	switch {
	case c.rank > other.rank:
		return 1
	case c.rank < other.rank:
		return -1
	}
	return 0
}

// IsJoker 判断是否为王（点数为 0）
func (c Card) IsJoker() bool {
	return c.rank == JokerRank
}

// IsRed 判断是否为红牌（红心或方块）
func (c Card) IsRed() bool {
	return c.suit == Hearts || c.suit == Diamonds
}

// IsBlack 判断是否为黑牌（黑桃或梅花）
func (c Card) IsBlack() bool {
	return c.suit == Spades || c.suit == Clubs
}

// Validate 检查点数和花色是否在定义范围内。构造函数不会调用它。
func (c Card) Validate() error {
	if !c.rank.Valid() {
		return fmt.Errorf("%w: rank %d", ErrInvalidCard, int(c.rank))
	}
	if !c.suit.Valid() {
		return fmt.Errorf("%w: suit %d", ErrInvalidCard, int(c.suit))
	}
	return nil
}

// String 返回扑克牌的字符串表示（如 "AH"、"10C"、"Joker"）
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// FormatCard 返回格式化的牌字符串（用于显示）
func (c Card) FormatCard() string {
	return fmt.Sprintf("[%s]", c.String())
}
