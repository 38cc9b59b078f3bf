package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilenwang/just_play/Deck/internal/card"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("p1", "Alice", 2)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 2, p.Seat)
	assert.False(t, p.HasHand())
	assert.Equal(t, "[  ?  ]", p.GetHandDisplay())
}

func TestNewPlayerWithID(t *testing.T) {
	p1 := NewPlayerWithID("Alice", 0)
	p2 := NewPlayerWithID("Bob", 1)

	_, err := uuid.Parse(p1.ID)
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p2.ID)
}

func TestPlayer_ReceiveHand(t *testing.T) {
	hand := card.Hand{card.NewCard(card.Ace, card.Spades), card.NewJoker()}
	p := NewPlayer("p1", "Alice", 0)
	p.ReceiveHand(hand)
	hand[0] = card.NewCard(card.Two, card.Clubs)

	assert.True(t, p.HasHand())
	assert.Equal(t, 2, p.HandSize())
	assert.Equal(t, "AS, Joker", p.GetHandDisplay())
	assert.Equal(t, "已发牌", p.Status.String())
}

func TestSeatPlayers(t *testing.T) {
	deck := card.NewDeck()
	hands, err := deck.Deal(3)
	require.NoError(t, err)

	players := SeatPlayers([]string{"Alice", ""}, hands)
	require.Len(t, players, 3)

	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "Player 2", players[1].Name)
	assert.Equal(t, "Player 3", players[2].Name)
	for i, p := range players {
		assert.Equal(t, i, p.Seat)
		assert.Equal(t, 18, p.HandSize())
	}
}

func TestPlayerStatus_String(t *testing.T) {
	assert.Equal(t, "等待发牌", PlayerStatusWaiting.String())
	assert.Equal(t, "未知", PlayerStatus(9).String())
}
