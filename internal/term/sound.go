package term

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues 游戏事件提示音
type Cues interface {
	Burst()
	GameOver()
}

// SoundCues 用 beep 合成的提示音
//
// 生成一批球时播放短促的高音，结束时播放下行的三音。
// 音频初始化失败时所有方法都是空操作，游戏照常运行。
type SoundCues struct {
	initialized bool
	enabled     func() bool
	volume      func() float64
}

// NewSoundCues 初始化扬声器
//
// 参数:
//   - enabled: 每次播放前读取的音效开关
//   - volume: 每次播放前读取的音量 (0.0 ~ 1.0)
//
// 返回:
//   - *SoundCues: 总是非 nil；初始化失败时进入静音模式
//   - error: 扬声器初始化失败
func NewSoundCues(enabled func() bool, volume func() float64) (*SoundCues, error) {
	s := &SoundCues{enabled: enabled, volume: volume}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, fmt.Errorf("failed to init speaker: %w", err)
	}
	s.initialized = true
	log.Printf("[Sound] Speaker initialized at %d Hz", sampleRate)
	return s, nil
}

// Burst 播放生成提示音
func (s *SoundCues) Burst() {
	s.play(tone(880, 40*time.Millisecond))
}

// GameOver 播放结束提示音
func (s *SoundCues) GameOver() {
	s.play(beep.Seq(
		tone(660, 150*time.Millisecond),
		tone(440, 150*time.Millisecond),
		tone(220, 300*time.Millisecond),
	))
}

func (s *SoundCues) play(streamer beep.Streamer) {
	if s == nil || !s.initialized || !s.enabled() {
		return
	}
	speaker.Play(withVolume(streamer, s.volume()))
}

// tone 生成指定频率和时长的正弦音
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

// withVolume 按线性音量缩放
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
