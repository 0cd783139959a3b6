package trial

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats accumulates per-trial results: the number of points placed before
// a square appeared and the detected square's side length. Running
// averages are always available; full summary statistics require history
// retention.
type Stats struct {
	trials      int64
	totalPoints int64
	totalSide   float64

	keepHistory bool
	pointsHist  []float64
	sideHist    []float64
}

// NewStats creates an accumulator. With keepHistory set, every per-trial
// sample is retained for summary statistics and report generation.
func NewStats(keepHistory bool) *Stats {
	return &Stats{keepHistory: keepHistory}
}

// Record adds one completed trial.
func (s *Stats) Record(points int, side float64) {
	s.trials++
	s.totalPoints += int64(points)
	s.totalSide += side
	if s.keepHistory {
		s.pointsHist = append(s.pointsHist, float64(points))
		s.sideHist = append(s.sideHist, side)
	}
}

// Trials returns the number of recorded trials.
func (s *Stats) Trials() int64 { return s.trials }

// TotalPoints returns the cumulative points placed across all trials.
func (s *Stats) TotalPoints() int64 { return s.totalPoints }

// AvgPoints returns the running average of points placed per square.
func (s *Stats) AvgPoints() float64 {
	if s.trials == 0 {
		return 0
	}
	return float64(s.totalPoints) / float64(s.trials)
}

// AvgSide returns the running average side length of detected squares.
func (s *Stats) AvgSide() float64 {
	if s.trials == 0 {
		return 0
	}
	return s.totalSide / float64(s.trials)
}

// PointsHistory returns the retained per-trial point counts, or nil when
// history retention is off.
func (s *Stats) PointsHistory() []float64 { return s.pointsHist }

// SideHistory returns the retained per-trial side lengths, or nil when
// history retention is off.
func (s *Stats) SideHistory() []float64 { return s.sideHist }

// Summary holds distribution statistics over the retained history.
type Summary struct {
	PointsMean   float64
	PointsStdDev float64
	PointsMedian float64
	PointsP90    float64
	SideMean     float64
	SideStdDev   float64
}

// Summarize computes distribution statistics from the retained history.
// The second return value is false when no history is available.
func (s *Stats) Summarize() (Summary, bool) {
	if !s.keepHistory || len(s.pointsHist) == 0 {
		return Summary{}, false
	}

	sorted := append([]float64(nil), s.pointsHist...)
	sort.Float64s(sorted)

	return Summary{
		PointsMean:   stat.Mean(s.pointsHist, nil),
		PointsStdDev: stat.StdDev(s.pointsHist, nil),
		PointsMedian: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		PointsP90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		SideMean:     stat.Mean(s.sideHist, nil),
		SideStdDev:   stat.StdDev(s.sideHist, nil),
	}, true
}
