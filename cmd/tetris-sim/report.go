package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Index     int
	Seed      uint64
	Finished  bool
	Score     int
	Lines     int
	Level     int
	Pieces    int
	HardDrops int
	Frames    int64
	Ticks     int64
	Simulated time.Duration
	Spawned   [tetris.KindCount]int
	Clears    [4]int
}

// KindCount is one row of the spawn distribution.
type KindCount struct {
	Kind  string
	Count int
}

// Report aggregates a simulation run for printing.
type Report struct {
	// Configuration
	Duration    time.Duration
	Games       int
	Seed        uint64
	Randomizer  string
	BoardWidth  int
	BoardHeight int

	// Results
	Results     []GameResult
	Completed   int
	BestScore   int
	AvgScore    float64
	TotalLines  int
	TotalPieces int
	TotalFrames int64
	TotalTime   time.Duration
	FrameTime   Stats
	Kinds       []KindCount
	Clears      [4]int

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats summarizes duration samples.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

// Finalize computes Min, Max and Avg from the samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) summarize() {
	var spawned [tetris.KindCount]int
	totalScore := 0

	for _, result := range r.Results {
		if result.Finished {
			r.Completed++
		}
		r.BestScore = max(r.BestScore, result.Score)
		totalScore += result.Score
		r.TotalLines += result.Lines
		r.TotalPieces += result.Pieces
		r.TotalFrames += result.Frames
		for k, n := range result.Spawned {
			spawned[k] += n
		}
		for n, count := range result.Clears {
			r.Clears[n] += count
		}
	}

	if len(r.Results) > 0 {
		r.AvgScore = float64(totalScore) / float64(len(r.Results))
	}

	r.Kinds = r.Kinds[:0]
	for _, kind := range tetris.Kinds() {
		r.Kinds = append(r.Kinds, KindCount{Kind: kind.String(), Count: spawned[kind]})
	}
}

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Time Budget:** {{.Duration}}
- **Games Requested:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Randomizer:** {{.Randomizer}}
- **Board:** {{.BoardWidth}}x{{.BoardHeight}}

## Results
- **Games Played:** {{len .Results}} ({{.Completed}} topped out)
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Total Lines:** {{.TotalLines}}
- **Total Pieces:** {{.TotalPieces}}
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Games
| # | Seed | Score | Lines | Level | Pieces | Hard Drops | Frames | Simulated |
|---|------|-------|-------|-------|--------|------------|--------|-----------|
{{range .Results}}| {{.Index}} | {{.Seed}} | {{.Score}} | {{.Lines}} | {{.Level}} | {{.Pieces}} | {{.HardDrops}} | {{.Frames}} | {{.Simulated}} |
{{end}}
## Pieces Spawned
{{range .Kinds}}- {{.Kind}}: {{.Count}}
{{end}}
## Line Clears
{{range $i, $n := .Clears}}- {{inc $i}} line(s): {{$n}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
