package metrics

import (
	"time"
)

// Shortcuts taken by the alpha-beta agent instead of a full search.
const (
	ShortcutNone    = ""
	ShortcutForced  = "forced"
	ShortcutOpening = "opening"
	ShortcutCapture = "capture"
)

type SearchMetric struct {
	Strategy     string
	Duration     time.Duration
	Shortcut     string
	Depth        int // Deepest completed iteration
	Nodes        int
	Evaluations  int
	MemoHits     int
	MemoSize     int
	Episodes     int
	FullPlayouts int // Rollouts that reached a terminal state
}

type MoveMetric struct {
	Step   int
	Player int
	Move   string
	SearchMetric
}

// Result of a game from white's point of view.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

func (r Result) String() string {
	switch r {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

type GameMetric struct {
	White      string // Agent name
	Black      string // Agent name
	Winner     string // Agent name, "" for a draw
	Result     Result
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector gathers statistics about one move request. Searchers are single
// threaded so collectors are not safe for concurrent use.
type Collector interface {
	Start(strategy string)
	SetShortcut(shortcut string)
	SetDepth(depth int)
	AddNode()
	AddEvaluation()
	AddMemoHit()
	AddEpisode()
	AddFullPlayout()
	Complete(memoSize int) SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Strategy: strategy}
}

func (m *collector) SetShortcut(shortcut string) {
	m.metric.Shortcut = shortcut
}

func (m *collector) SetDepth(depth int) {
	m.metric.Depth = depth
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddEvaluation() {
	m.metric.Evaluations++
}

func (m *collector) AddMemoHit() {
	m.metric.MemoHits++
}

func (m *collector) AddEpisode() {
	m.metric.Episodes++
}

func (m *collector) AddFullPlayout() {
	m.metric.FullPlayouts++
}

func (m *collector) Complete(memoSize int) SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	m.metric.MemoSize = memoSize
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)              {}
func (m *dummyCollector) SetShortcut(shortcut string)        {}
func (m *dummyCollector) SetDepth(depth int)                 {}
func (m *dummyCollector) AddNode()                           {}
func (m *dummyCollector) AddEvaluation()                     {}
func (m *dummyCollector) AddMemoHit()                        {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) AddFullPlayout()                    {}
func (m *dummyCollector) Complete(memoSize int) SearchMetric { return SearchMetric{} }
