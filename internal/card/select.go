package card

import "slices"

// RemoveJokers 移除所有与王点数相同的牌（点数为 0，与花色无关），返回移除的张数
func (d *Deck) RemoveJokers() int {
	joker := NewJoker()
	before := len(d.cards)
	d.cards = slices.DeleteFunc(d.cards, func(c Card) bool {
		return c.Equal(joker)
	})
	return before - len(d.cards)
}

// RemoveDuplicates 移除重复的牌并返回被移除牌的原始下标（降序）。
// 对任意 i<j，若两张牌点数和花色都相同且不是王，则移除 j。
func (d *Deck) RemoveDuplicates() []int {
	marked := make([]bool, len(d.cards))
	for i := 0; i < len(d.cards); i++ {
		if marked[i] {
			continue
		}
		for j := i + 1; j < len(d.cards); j++ {
			if d.cards[i].Same(d.cards[j]) && d.cards[i].suit != Joker {
				marked[j] = true
			}
		}
	}

	removed := make([]int, 0)
	for j := len(d.cards) - 1; j >= 0; j-- {
		if marked[j] {
			removed = append(removed, j)
			d.cards = slices.Delete(d.cards, j, j+1)
		}
	}
	return removed
}
