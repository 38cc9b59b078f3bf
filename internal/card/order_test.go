package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_Sort(t *testing.T) {
	deck := NewDeck()
	deck.Sort()

	cards := deck.Cards()
	require.Len(t, cards, FullSize)
	assert.True(t, deck.IsSorted())
	for i := 0; i < JokerCount; i++ {
		assert.True(t, cards[i].IsJoker(), "index %d", i)
	}
	assert.Equal(t, Ace, cards[4].Rank())
	assert.Equal(t, Five, cards[19].Rank())
	assert.Equal(t, King, cards[52].Rank())
}

func TestDeck_SortKeepsOrderWithinRank(t *testing.T) {
	deck := NewDeck()
	deck.Sort()

	cards := deck.Cards()
	for i, s := range StandardSuits() {
		assert.True(t, cards[3+i].Same(NewCard(Ace, s)), "index %d", 3+i)
	}
}

func TestDeck_SortShuffled(t *testing.T) {
	deck := NewDeckWithSeed(2024)
	deck.Shuffle()
	before := countCards(deck.Cards())

	deck.Sort()

	assert.True(t, deck.IsSorted())
	assert.Equal(t, before, countCards(deck.Cards()))
}

func TestDeck_SortByValue(t *testing.T) {
	deck := NewDeck()
	deck.SortByValue()

	cards := deck.Cards()
	require.Len(t, cards, FullSize)

	tests := []struct {
		index int
		rank  Rank
		suit  Suit
	}{
		{0, JokerRank, Joker},
		{3, Ace, Hearts},
		{4, Ace, Diamonds},
		{6, Ace, Clubs},
		{19, Five, Hearts},
		{54, King, Clubs},
	}
	for _, tt := range tests {
		c := cards[tt.index]
		assert.Equal(t, tt.rank, c.Rank(), "index %d", tt.index)
		assert.Equal(t, tt.suit, c.Suit(), "index %d", tt.index)
	}
}

func TestDeck_SortBySuit(t *testing.T) {
	deck := NewDeckWithSeed(3)
	deck.Shuffle()
	deck.SortBySuit()

	cards := deck.Cards()
	require.Len(t, cards, FullSize)

	tests := []struct {
		index int
		rank  Rank
		suit  Suit
	}{
		{0, Ace, Hearts},
		{12, King, Hearts},
		{14, Two, Diamonds},
		{29, Four, Spades},
		{51, King, Clubs},
	}
	for _, tt := range tests {
		c := cards[tt.index]
		assert.Equal(t, tt.rank, c.Rank(), "index %d", tt.index)
		assert.Equal(t, tt.suit, c.Suit(), "index %d", tt.index)
	}
	for _, c := range cards[52:] {
		assert.True(t, c.Same(NewJoker()))
	}
}

func TestDeck_SortBySuitIsStable(t *testing.T) {
	deck := NewDeck()
	deck.SetCards([]Card{
		NewCard(Two, Clubs),
		NewCard(Ace, Hearts),
		NewCard(Two, Hearts),
		NewCard(Ace, Hearts),
	})
	deck.SortBySuit()

	assert.Equal(t, "AH, AH, 2H, 2C", deck.String())
}

func TestDeck_SortKeepsOutOfRangeCards(t *testing.T) {
	deck := NewDeck()
	deck.SetCards([]Card{NewCard(20, Hearts), NewCard(Ace, Suit(8)), NewCard(Two, Spades)})

	deck.SortByValue()
	assert.Equal(t, 3, deck.Size())
	assert.Equal(t, Rank(20), deck.Cards()[2].Rank())

	deck.SortBySuit()
	assert.Equal(t, 3, deck.Size())
	assert.Equal(t, Suit(8), deck.Cards()[2].Suit())
}

func TestInsertSorted(t *testing.T) {
	var list []Card
	deck := NewDeck()
	for i := 0; i < 5; i++ {
		c, err := deck.Take()
		require.NoError(t, err)
		list = InsertSorted(list, c)
	}

	require.Len(t, list, 5)
	assert.Equal(t, JokerRank, list[0].Rank())
	assert.Equal(t, Queen, list[3].Rank())
	assert.Equal(t, King, list[4].Rank())
}

func TestInsertSorted_Empty(t *testing.T) {
	list := InsertSorted(nil, NewCard(Seven, Spades))
	require.Len(t, list, 1)
	assert.True(t, list[0].Same(NewCard(Seven, Spades)))
}

func TestInsertSorted_Position(t *testing.T) {
	list := []Card{NewCard(Two, Hearts), NewCard(Five, Hearts), NewCard(Nine, Hearts)}

	tests := []struct {
		name  string
		card  Card
		index int
	}{
		{"smallest", NewCard(Ace, Clubs), 0},
		{"middle", NewCard(Seven, Clubs), 2},
		{"equal goes before", NewCard(Five, Clubs), 1},
		{"largest", NewCard(King, Clubs), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := append([]Card(nil), list...)
			got := InsertSorted(base, tt.card)
			require.Len(t, got, 4)
			assert.True(t, got[tt.index].Same(tt.card))
			d := NewDeck()
			d.SetCards(got)
			assert.True(t, d.IsSorted())
		})
	}
}
