package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_RemoveJokers(t *testing.T) {
	deck := NewDeck()
	assert.Equal(t, JokerCount, deck.RemoveJokers())
	assert.Equal(t, StandardSize, deck.Size())

	top, err := deck.Take()
	require.NoError(t, err)
	assert.NotEqual(t, JokerRank, top.Rank())

	sorted := NewDeck()
	sorted.Sort()
	sorted.RemoveJokers()
	assert.NotEqual(t, JokerRank, sorted.Cards()[0].Rank())
}

func TestDeck_RemoveJokersIgnoresSuit(t *testing.T) {
	deck := NewDeck()
	deck.SetCards([]Card{
		NewCard(Ace, Hearts),
		NewCard(JokerRank, Hearts),
		NewCard(Two, Joker),
		NewJoker(),
		NewCard(Three, Clubs),
	})

	assert.Equal(t, 2, deck.RemoveJokers())
	assert.Equal(t, "AH, 2Joker, 3C", deck.String())
}

func TestDeck_RemoveDuplicates_None(t *testing.T) {
	deck := NewDeck()
	removed := deck.RemoveDuplicates()
	assert.Empty(t, removed)
	assert.Equal(t, FullSize, deck.Size())
}

func TestDeck_RemoveDuplicates_One(t *testing.T) {
	deck := NewDeck()
	deck.Put(NewCard(Ace, Diamonds))

	removed := deck.RemoveDuplicates()
	assert.Equal(t, []int{FullSize}, removed)
	assert.Equal(t, FullSize, deck.Size())
}

func TestDeck_RemoveDuplicates_ReportsEveryDuplicate(t *testing.T) {
	deck := NewDeck()
	deck.Put(NewCard(Five, Hearts))
	deck.Put(NewCard(Five, Hearts))
	deck.Put(NewCard(Five, Hearts))
	deck.Put(NewCard(Seven, Hearts))

	removed := deck.RemoveDuplicates()
	assert.Equal(t, []int{58, 57, 56, 55}, removed)
	assert.Equal(t, countCards(NewDeck().Cards()), countCards(deck.Cards()))
}

func TestDeck_RemoveDuplicates_KeepsFirstOccurrence(t *testing.T) {
	deck := NewDeck()
	deck.SetCards([]Card{
		NewCard(Two, Spades),
		NewCard(Three, Spades),
		NewCard(Two, Spades),
		NewCard(Two, Hearts),
		NewCard(Three, Spades),
	})

	removed := deck.RemoveDuplicates()
	assert.Equal(t, []int{4, 2}, removed)
	assert.Equal(t, "2S, 3S, 2H", deck.String())
}

func TestDeck_RemoveDuplicates_IgnoresJokers(t *testing.T) {
	deck := NewDeck()
	deck.Put(NewJoker())
	deck.Put(NewJoker())

	assert.Empty(t, deck.RemoveDuplicates())
	assert.Equal(t, FullSize+2, deck.Size())
}
