package core

import (
	"sync"
	"time"
)

const AVG_COUNT uint8 = 30

// MetricsState keeps a rolling average of tick durations and the number of
// ticks processed in the last second.
type MetricsState struct {
	mu                 sync.Mutex
	FrameAVGCounter    uint8
	MStimes            [AVG_COUNT]float64
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

func NewMetrics() *MetricsState {
	return &MetricsState{}
}

func (m *MetricsState) Update(frameElapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	m.MStimes[m.FrameAVGCounter] = frameMS
	if m.FrameAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += m.MStimes[i]
		}
		m.MSavg = sum / float64(AVG_COUNT)
	}
	m.FrameAVGCounter++
	m.FrameAVGCounter %= AVG_COUNT

	// Ticks per second.
	m.AccumulatedFrameMS += frameMS
	if m.AccumulatedFrameMS > 1000 {
		m.FPS = float64(m.Frames)
		m.AccumulatedFrameMS -= 1000
		m.Frames = 0
	}

	m.Frames++
}

func (m *MetricsState) FPSValue() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FPS
}

func (m *MetricsState) FrameTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.MSavg
}

func (m *MetricsState) Frame() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FPS, m.MSavg
}
