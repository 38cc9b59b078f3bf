package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wilenwang/just_play/Deck/internal/card"
	"github.com/wilenwang/just_play/Deck/internal/common/models"
	"github.com/wilenwang/just_play/Deck/internal/protocol"
	"github.com/wilenwang/just_play/Deck/pkg/history"
	"github.com/wilenwang/just_play/Deck/ui/components"
	"github.com/wilenwang/just_play/Deck/ui/table"
)

// app 保存一次命令执行所需的配置和输出
type app struct {
	cfgFile string
	cfg     *Config
	logger  *slog.Logger
	out     io.Writer
}

// newDeck 按配置的种子创建一副新牌
func (a *app) newDeck() *card.Deck {
	if a.cfg.Seed != 0 {
		return card.NewDeckWithSeed(a.cfg.Seed)
	}
	return card.NewDeck()
}

// emit 按输出格式写出消息，pretty 模式使用 render 的结果
func (a *app) emit(msg protocol.Message, render func() string) error {
	if a.cfg.Output == OutputPretty {
		_, err := fmt.Fprintln(a.out, render())
		return err
	}
	format, err := protocol.ParseFormat(a.cfg.Output)
	if err != nil {
		return err
	}
	return protocol.Encode(a.out, format, msg)
}

// NewRootCmd 创建根命令
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "一副 55 张的扑克牌（52 张 + 3 张王）",
		Long: `deck 管理一副 52 张标准扑克牌加 3 张王：洗牌、排序、摸牌、放回、
随机抽牌、去掉王、去掉重复牌以及按人数发牌。

不带子命令运行时启动交互式终端界面。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.out = cmd.OutOrStdout()
			a.logger = SetupLogger(cfg, cmd.ErrOrStderr())
			a.logger.Debug("配置已加载",
				"players", cfg.Players,
				"seed", cfg.Seed,
				"output", cfg.Output,
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(nil)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "配置文件 (YAML)")
	cmd.PersistentFlags().IntP("players", "p", 4, "发牌人数")
	cmd.PersistentFlags().Int64("seed", 0, "随机种子 (0 表示按时间)")
	cmd.PersistentFlags().StringP("output", "o", "text", `输出格式 ("text", "json", "yaml", "pretty")`)
	cmd.PersistentFlags().String("log.level", "warn", "日志级别 (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.format", "text", "日志格式 (text, json, pretty)")

	cmd.AddCommand(
		newTUICmd(a),
		newShowCmd(a),
		newDealCmd(a),
		newDrawCmd(a),
		newDemoCmd(a),
	)
	return cmd
}

func newTUICmd(a *app) *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "启动交互式终端界面",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(names)
		},
	}
	cmd.Flags().StringSliceVar(&names, "names", nil, "玩家名称，逗号分隔")
	return cmd
}

func (a *app) runTUI(names []string) error {
	a.logger.Info("启动终端界面")
	return table.Start(a.newDeck(), table.Options{
		Players:      a.cfg.Players,
		Names:        names,
		HistoryLimit: a.cfg.History,
		PerLine:      a.cfg.PerLine,
	})
}

// applyOrder 按名称对牌组排序
func applyOrder(d *card.Deck, order string) error {
	switch strings.ToLower(order) {
	case "":
	case "rank":
		d.Sort()
	case "suit":
		d.SortBySuit()
	case "value":
		d.SortByValue()
	default:
		return fmt.Errorf("未知的排序方式 %q (可选 rank, suit, value)", order)
	}
	return nil
}

func newShowCmd(a *app) *cobra.Command {
	var (
		shuffle  bool
		order    string
		noJokers bool
		dedupe   bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "显示整副牌（从牌底到牌顶）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.newDeck()
			if noJokers {
				n := d.RemoveJokers()
				a.logger.Debug("去掉王", "removed", n)
			}
			if dedupe {
				removed := d.RemoveDuplicates()
				a.logger.Debug("去掉重复牌", "indices", removed)
			}
			if shuffle {
				d.Shuffle()
			}
			if err := applyOrder(d, order); err != nil {
				return err
			}
			return a.emit(protocol.NewDeckState(d), func() string {
				return components.RenderDeckBox(d, a.cfg.PerLine)
			})
		},
	}
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "先洗牌")
	cmd.Flags().StringVar(&order, "sort", "", `排序方式 ("rank", "suit", "value")`)
	cmd.Flags().BoolVar(&noJokers, "no-jokers", false, "去掉三张王")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "去掉重复牌")
	return cmd
}

func newDealCmd(a *app) *cobra.Command {
	var (
		names    []string
		noJokers bool
		shuffle  bool
	)
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "按人数轮流发牌，余牌留在牌组中",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.newDeck()
			if noJokers {
				d.RemoveJokers()
			}
			if shuffle {
				d.Shuffle()
			}

			hands, err := d.Deal(a.cfg.Players)
			if err != nil {
				return fmt.Errorf("发牌失败: %w", err)
			}
			players := models.SeatPlayers(names, hands)
			for _, p := range players {
				a.logger.Debug("手牌", "seat", p.Seat, "player", p.Name, "hand", p.GetHandDisplay())
			}
			a.logger.Info("发牌完成", "players", len(players), "remaining", d.Size())

			return a.emit(protocol.NewDealResult(players, d), func() string {
				return components.RenderHands(players) + "\n" + components.RenderDeckSummary(d)
			})
		},
	}
	cmd.Flags().StringSliceVar(&names, "names", nil, "玩家名称，逗号分隔")
	cmd.Flags().BoolVar(&noJokers, "no-jokers", false, "发牌前去掉三张王")
	cmd.Flags().BoolVar(&shuffle, "shuffle", true, "发牌前洗牌")
	return cmd
}

func newDrawCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "从牌组中随机抽牌",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.newDeck()
			drawn := make([]card.Card, 0, max(count, 0))
			for i := range count {
				c, err := d.PickByRandom()
				if err != nil {
					return fmt.Errorf("第 %d 张抽牌失败: %w", i+1, err)
				}
				drawn = append(drawn, c)
			}
			return a.emit(protocol.NewDrawResult(drawn, d.Size()), func() string {
				return components.RenderCards(drawn, true) + "\n" + components.RenderDeckSummary(d)
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "抽牌张数")
	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "依次演示所有牌组操作",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo()
		},
	}
}

// runDemo 新牌 → 洗牌 → 按花色排序 → 放入重复牌 → 按牌值排序 → 去重 → 洗牌 → 排序 → 发牌
func (a *app) runDemo() error {
	d := a.newDeck()
	rec := history.NewRecorder(0)

	step := func(op history.Operation, detail string, msg protocol.Message, render func() string) error {
		entry := rec.Record(op, detail, d.Size())
		a.logger.Debug("演示步骤", "seq", entry.Seq, "op", op)
		if a.cfg.Output == OutputPretty || a.cfg.Output == string(protocol.FormatText) {
			if _, err := fmt.Fprintf(a.out, "== %s ==\n", entry); err != nil {
				return err
			}
		}
		return a.emit(msg, render)
	}
	showDeck := func(op history.Operation, detail string) error {
		return step(op, detail, protocol.NewDeckState(d), func() string {
			return components.RenderDeckBox(d, a.cfg.PerLine)
		})
	}

	if err := showDeck(history.OpNew, ""); err != nil {
		return err
	}

	d.Shuffle()
	if err := showDeck(history.OpShuffle, ""); err != nil {
		return err
	}

	d.SortBySuit()
	if err := showDeck(history.OpSortBySuit, ""); err != nil {
		return err
	}

	extra := []card.Card{
		card.NewCard(card.Five, card.Hearts),
		card.NewCard(card.Five, card.Hearts),
		card.NewCard(card.Five, card.Hearts),
		card.NewCard(card.Seven, card.Hearts),
	}
	for _, c := range extra {
		d.Put(c)
	}
	if err := showDeck(history.OpPut, fmt.Sprintf("放入 %d 张", len(extra))); err != nil {
		return err
	}

	d.SortByValue()
	if err := showDeck(history.OpSortByValue, ""); err != nil {
		return err
	}

	removed := d.RemoveDuplicates()
	removal := protocol.NewRemovalResult(string(history.OpRemoveDuplicates), len(removed), removed, d.Size())
	if err := step(history.OpRemoveDuplicates, fmt.Sprintf("下标 %v", removed), removal, removal.Text); err != nil {
		return err
	}

	d.Shuffle()
	if err := showDeck(history.OpShuffle, ""); err != nil {
		return err
	}

	d.Sort()
	if err := showDeck(history.OpSort, ""); err != nil {
		return err
	}

	hands, err := d.Deal(5)
	if err != nil {
		return fmt.Errorf("发牌失败: %w", err)
	}
	players := models.SeatPlayers(nil, hands)
	if err := step(history.OpDeal, "5 人", protocol.NewDealResult(players, d), func() string {
		return components.RenderHands(players) + "\n" + components.RenderDeckSummary(d)
	}); err != nil {
		return err
	}

	a.logger.Info("演示完成", "steps", rec.Count())
	if a.cfg.Output == OutputPretty || a.cfg.Output == string(protocol.FormatText) {
		_, err := fmt.Fprintf(a.out, "== 操作记录 ==\n%s", rec.Text())
		return err
	}
	return nil
}
