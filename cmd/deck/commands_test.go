package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wilenwang/just_play/Deck/internal/card"
	"github.com/wilenwang/just_play/Deck/internal/protocol"
)

// execute 运行一次根命令，返回 stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithLog(t, args...)
	return out, err
}

// executeWithLog 运行一次根命令，同时返回 stdout 和 stderr（日志）
func executeWithLog(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestShowCmd_Text(t *testing.T) {
	out, err := execute(t, "show")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Deck (55): AH, 2H, 3H"))
	assert.True(t, strings.HasSuffix(out, "Joker, Joker, Joker\n"))
}

func TestShowCmd_SortBySuitWithoutJokers(t *testing.T) {
	out, err := execute(t, "show", "--seed", "1", "--shuffle", "--sort", "suit", "--no-jokers")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Deck (52): AH, 2H, 3H"))
	assert.True(t, strings.HasSuffix(out, "QC, KC\n"))
}

func TestShowCmd_JSON(t *testing.T) {
	out, err := execute(t, "show", "-o", "json", "--seed", "7", "--shuffle")
	require.NoError(t, err)

	var state protocol.DeckState
	require.NoError(t, protocol.Decode(strings.NewReader(out), protocol.FormatJSON, &state))
	assert.Equal(t, protocol.MsgTypeDeckState, state.Type)
	assert.Equal(t, card.FullSize, state.Size)
	assert.Len(t, state.Cards, card.FullSize)
}

func TestShowCmd_SameSeedSameOrder(t *testing.T) {
	first, err := execute(t, "show", "--seed", "99", "--shuffle")
	require.NoError(t, err)
	second, err := execute(t, "show", "--seed", "99", "--shuffle")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestShowCmd_Pretty(t *testing.T) {
	out, err := execute(t, "show", "-o", "pretty")
	require.NoError(t, err)

	assert.Contains(t, out, "牌组: 55 张")
}

func TestShowCmd_UnknownSort(t *testing.T) {
	_, err := execute(t, "show", "--sort", "color")
	assert.ErrorContains(t, err, "color")
}

func TestShowCmd_UnknownOutput(t *testing.T) {
	_, err := execute(t, "show", "-o", "xml")
	assert.ErrorIs(t, err, protocol.ErrUnknownFormat)
}

func TestDealCmd_YAML(t *testing.T) {
	out, err := execute(t, "deal", "-p", "4", "--no-jokers", "--shuffle=false", "--names", "Alice,Bob", "-o", "yaml")
	require.NoError(t, err)

	var result protocol.DealResult
	require.NoError(t, protocol.Decode(strings.NewReader(out), protocol.FormatYAML, &result))
	require.Len(t, result.Players, 4)
	assert.Equal(t, "Alice", result.Players[0].Name)
	assert.Equal(t, "Bob", result.Players[1].Name)
	assert.Equal(t, "Player 3", result.Players[2].Name)
	require.Len(t, result.Players[0].Hand, 13)
	assert.Equal(t, "KC", result.Players[0].Hand[0].Label)
	assert.Empty(t, result.Remaining)
}

func TestDealCmd_Remainder(t *testing.T) {
	out, err := execute(t, "deal", "-p", "7", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Player 7: ")
	assert.Contains(t, out, "Remaining (6): ")
}

func TestDealCmd_InvalidPlayers(t *testing.T) {
	_, err := execute(t, "deal", "-p", "0")
	assert.ErrorContains(t, err, "players")

	_, err = execute(t, "deal", "-p", "1000000000")
	assert.ErrorIs(t, err, card.ErrInvalidPlayers)
}

func TestDealCmd_DebugLogsHands(t *testing.T) {
	_, logs, err := executeWithLog(t, "deal", "-p", "2", "--shuffle=false", "--names", "Alice", "--log.level", "debug")
	require.NoError(t, err)

	assert.Contains(t, logs, "player=Alice")
	assert.Contains(t, logs, "Joker, KC, JC")
	assert.Contains(t, logs, "发牌完成")
}

func TestDrawCmd_Pretty(t *testing.T) {
	out, err := execute(t, "draw", "-n", "2", "--seed", "11", "-o", "pretty")
	require.NoError(t, err)

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "牌组: 53 张")
}

func TestDrawCmd(t *testing.T) {
	out, err := execute(t, "draw", "-n", "3", "--seed", "42", "-o", "json")
	require.NoError(t, err)

	var result protocol.DrawResult
	require.NoError(t, protocol.Decode(strings.NewReader(out), protocol.FormatJSON, &result))
	assert.Len(t, result.Drawn, 3)
	assert.Equal(t, card.FullSize-3, result.Remaining)
}

func TestDrawCmd_TooMany(t *testing.T) {
	_, err := execute(t, "draw", "-n", "56")
	assert.ErrorIs(t, err, card.ErrEmptyDeck)
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo", "--seed", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "== #1 new (55 张) ==")
	assert.Contains(t, out, "put 放入 4 张 (59 张)")
	assert.Contains(t, out, "remove_duplicates: removed 4 at [")
	assert.Contains(t, out, "55 left")
	assert.Contains(t, out, "Player 5: ")
	assert.Contains(t, out, "Remaining (0): ")
	assert.Contains(t, out, "== 操作记录 ==")
	assert.Contains(t, out, "#9 deal 5 人 (0 张)")
}

func TestDemoCmd_JSONStream(t *testing.T) {
	out, err := execute(t, "demo", "--seed", "5", "-o", "json")
	require.NoError(t, err)

	assert.NotContains(t, out, "==")
	assert.Equal(t, 7, strings.Count(out, `"type": "deck_state"`))
	assert.Equal(t, 1, strings.Count(out, `"type": "removal"`))
	assert.Equal(t, 1, strings.Count(out, `"type": "deal"`))
}
