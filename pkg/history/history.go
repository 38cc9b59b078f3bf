package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Operation 表示对牌组执行的操作
type Operation string

const (
	OpNew              Operation = "new"
	OpReset            Operation = "reset"
	OpShuffle          Operation = "shuffle"
	OpSort             Operation = "sort"
	OpSortBySuit       Operation = "sort_by_suit"
	OpSortByValue      Operation = "sort_by_value"
	OpTake             Operation = "take"
	OpPut              Operation = "put"
	OpPick             Operation = "pick_by_random"
	OpRemoveJokers     Operation = "remove_jokers"
	OpRemoveDuplicates Operation = "remove_duplicates"
	OpDeal             Operation = "deal"
)

// Entry 表示一条操作记录
type Entry struct {
	ID        string    `json:"id"`        // 记录ID
	Seq       int       `json:"seq"`       // 序号（从 1 开始）
	Op        Operation `json:"op"`        // 操作
	Detail    string    `json:"detail"`    // 操作说明
	Size      int       `json:"size"`      // 操作后的牌数
	Err       string    `json:"err"`       // 失败原因
	Timestamp time.Time `json:"timestamp"` // 时间戳
}

// Failed 判断该操作是否失败
func (e Entry) Failed() bool {
	return e.Err != ""
}

// String 返回单行文本
func (e Entry) String() string {
	if e.Failed() {
		return fmt.Sprintf("#%d %s 失败: %s", e.Seq, e.Op, e.Err)
	}
	if e.Detail == "" {
		return fmt.Sprintf("#%d %s (%d 张)", e.Seq, e.Op, e.Size)
	}
	return fmt.Sprintf("#%d %s %s (%d 张)", e.Seq, e.Op, e.Detail, e.Size)
}

// Recorder 在内存中保存最近的操作记录
type Recorder struct {
	entries []Entry // 操作记录
	limit   int     // 最多保留的条数，0 表示不限
	seq     int     // 已记录的总数
}

// NewRecorder 创建操作记录器
func NewRecorder(limit int) *Recorder {
	if limit < 0 {
		limit = 0
	}
	return &Recorder{
		entries: make([]Entry, 0),
		limit:   limit,
	}
}

// Record 记录一次成功的操作
func (r *Recorder) Record(op Operation, detail string, size int) Entry {
	return r.add(Entry{Op: op, Detail: detail, Size: size})
}

// RecordError 记录一次失败的操作
func (r *Recorder) RecordError(op Operation, err error, size int) Entry {
	return r.add(Entry{Op: op, Err: err.Error(), Size: size})
}

func (r *Recorder) add(e Entry) Entry {
	r.seq++
	e.ID = uuid.NewString()
	e.Seq = r.seq
	e.Timestamp = time.Now()
	r.entries = append(r.entries, e)

	// 保持记录数量在限制内
	if r.limit > 0 && len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}
	return e
}

// Recent 返回最近 n 条记录（按时间先后）
func (r *Recorder) Recent(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := len(r.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]Entry, len(r.entries)-start)
	copy(out, r.entries[start:])
	return out
}

// All 返回保留的全部记录
func (r *Recorder) All() []Entry {
	return r.Recent(len(r.entries))
}

// Count 返回累计记录的总数（含已被淘汰的）
func (r *Recorder) Count() int {
	return r.seq
}

// Clear 清空记录
func (r *Recorder) Clear() {
	r.entries = make([]Entry, 0)
	r.seq = 0
}

// Text 导出为多行文本
func (r *Recorder) Text() string {
	var sb strings.Builder
	for _, e := range r.All() {
		sb.WriteString(e.Timestamp.Format("15:04:05"))
		sb.WriteString(" ")
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
