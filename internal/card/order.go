package card

import (
	"cmp"
	"slices"
)

// InsertSorted 把 c 插入按点数升序排列的 list 中，
// 位置是第一张点数不小于 c 的牌之前；找不到则追加到末尾。
func InsertSorted(list []Card, c Card) []Card {
	for i, existing := range list {
		if c.Greater(existing) {
			continue
		}
		return slices.Insert(list, i, c)
	}
	return append(list, c)
}

// Sort 按点数升序排列，王排在最前。
// 逐张从牌顶取牌插入新序列，点数相同的牌保持排序前的相对顺序。
func (d *Deck) Sort() {
	sorted := make([]Card, 0, len(d.cards))
	for len(d.cards) > 0 {
		c, _ := d.Take()
		sorted = InsertSorted(sorted, c)
	}
	d.cards = sorted
}

// SortBySuit 先按花色（红心、方块、黑桃、梅花、王）再按点数升序排列
func (d *Deck) SortBySuit() {
	slices.SortStableFunc(d.cards, func(a, b Card) int {
		return cmp.Or(cmp.Compare(a.suit, b.suit), cmp.Compare(a.rank, b.rank))
	})
}

// SortByValue 先按点数再按花色升序排列
func (d *Deck) SortByValue() {
	slices.SortStableFunc(d.cards, func(a, b Card) int {
		return cmp.Or(cmp.Compare(a.rank, b.rank), cmp.Compare(a.suit, b.suit))
	})
}

// IsSorted 判断牌组是否按点数非递减排列
func (d *Deck) IsSorted() bool {
	return slices.IsSortedFunc(d.cards, func(a, b Card) int {
		return a.Compare(b)
	})
}
