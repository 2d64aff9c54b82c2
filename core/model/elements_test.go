package model

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapStaysInRange(t *testing.T) {
	for i := -12; i <= 12; i++ {
		w := Wrap(i)
		assert.GreaterOrEqual(t, w, 0)
		assert.Less(t, w, ElementCount)
	}
	assert.Equal(t, 4, Wrap(-1))
	assert.Equal(t, 0, Wrap(5))
}

func TestToneIndexMatchesTable(t *testing.T) {
	for i, tone := range Tones() {
		assert.Equal(t, i, ToneIndex(tone))
		e, ok := ElementForTone(tone)
		require.True(t, ok)
		assert.Equal(t, tone, e.Tone)
	}
	assert.Equal(t, -1, ToneIndex("do"))
	assert.Equal(t, 2, ToneIndex(DefaultTone))
}

func TestElementsReturnsCopy(t *testing.T) {
	es := Elements()
	es[0].Name = "x"
	assert.Equal(t, "木", ElementAt(0).Name)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffd700")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0xd7, 0x00, 0xff}, c)

	_, err = ParseHexColor("#fff")
	assert.Error(t, err)
	_, err = ParseHexColor("#gggggg")
	assert.Error(t, err)

	for _, e := range Elements() {
		assert.NotPanics(t, func() { e.MustColor() })
	}
}

func TestStaticContentSizes(t *testing.T) {
	assert.Len(t, Instruments, 4)
	assert.Len(t, IntroSlides, 3)
	assert.Len(t, DiagnosisEmotions, 5)
	_, ok := InstrumentByName(Instruments[0].Name)
	assert.True(t, ok)
	_, ok = ElementForTone(SecondaryTone)
	assert.True(t, ok)
}

func TestDoubleHour(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 1, 1, h, 30, 0, 0, time.UTC) }
	assert.Equal(t, "Zi", DoubleHour(at(23)))
	assert.Equal(t, "Zi", DoubleHour(at(0)))
	assert.Equal(t, "Chou", DoubleHour(at(1)))
	assert.Equal(t, "Wu", DoubleHour(at(12)))
	assert.Equal(t, "Hai", DoubleHour(at(21)))
	assert.Equal(t, "Hai", DoubleHour(at(22)))
}
