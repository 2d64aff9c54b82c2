package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ElementCount is the size of the five-phase correspondence table.
const ElementCount = 5

// ElementProfile is one row of the five-phase correspondence table.
type ElementProfile struct {
	Name      string // 木
	Element   string // Wood
	Organ     string // 肝
	OrganName string // Liver
	Color     string // display colour, #rrggbb
	Tone      string // 角
	ToneLatin string // Jue
	Emotion   string // 怒
	Mood      string // Anger
	Effect    string
	OrganPos  [2]float64 // position on the 200x400 body map
}

var elements = [ElementCount]ElementProfile{
	{
		Name: "木", Element: "Wood", Organ: "肝", OrganName: "Liver", Color: "#4ade80",
		Tone: "角", ToneLatin: "Jue", Emotion: "怒", Mood: "Anger",
		Effect:   "The liver governs free flow; its emotion is anger. The clear, lingering Jue tone belongs to Wood, soothes the liver and eases gloom and irritability.",
		OrganPos: [2]float64{85, 220},
	},
	{
		Name: "火", Element: "Fire", Organ: "心", OrganName: "Heart", Color: "#f87171",
		Tone: "徵", ToneLatin: "Zhi", Emotion: "喜", Mood: "Joy",
		Effect:   "The heart governs the blood vessels; its emotion is joy. The warm, open Zhi tone belongs to Fire, lifts heart yang and frees the circulation.",
		OrganPos: [2]float64{100, 140},
	},
	{
		Name: "土", Element: "Earth", Organ: "脾", OrganName: "Spleen", Color: "#ffd700",
		Tone: "宫", ToneLatin: "Gong", Emotion: "思", Mood: "Pensiveness",
		Effect:   "The spleen governs transformation; its emotion is pensiveness. The steady Gong tone belongs to Earth, strengthens the spleen and settles the mind.",
		OrganPos: [2]float64{115, 220},
	},
	{
		Name: "金", Element: "Metal", Organ: "肺", OrganName: "Lung", Color: "#ffffff",
		Tone: "商", ToneLatin: "Shang", Emotion: "忧", Mood: "Grief",
		Effect:   "The lung governs breath; its emotion is grief. The bright, firm Shang tone belongs to Metal, opens the lung and releases sorrow.",
		OrganPos: [2]float64{100, 170},
	},
	{
		Name: "水", Element: "Water", Organ: "肾", OrganName: "Kidney", Color: "#60a5fa",
		Tone: "羽", ToneLatin: "Yu", Emotion: "恐", Mood: "Fear",
		Effect:   "The kidney governs storage; its emotion is fear. The soft, cool Yu tone belongs to Water, nourishes the kidney and calms deep anxiety.",
		OrganPos: [2]float64{100, 270},
	},
}

// Elements returns a copy of the correspondence table in canonical order.
func Elements() []ElementProfile {
	out := make([]ElementProfile, ElementCount)
	copy(out, elements[:])
	return out
}

// ElementAt returns the profile at i, wrapping i into [0,ElementCount).
func ElementAt(i int) ElementProfile {
	return elements[Wrap(i)]
}

// Wrap maps any integer onto [0,ElementCount).
func Wrap(i int) int {
	i %= ElementCount
	if i < 0 {
		i += ElementCount
	}
	return i
}

// Tones lists the five tones in table order.
func Tones() []string {
	out := make([]string, 0, ElementCount)
	for _, e := range elements {
		out = append(out, e.Tone)
	}
	return out
}

// ToneIndex returns the table index of tone, or -1 if it is not one of the five.
func ToneIndex(tone string) int {
	for i, e := range elements {
		if e.Tone == tone {
			return i
		}
	}
	return -1
}

// ElementForTone looks up the profile owning tone.
func ElementForTone(tone string) (ElementProfile, bool) {
	i := ToneIndex(tone)
	if i < 0 {
		return ElementProfile{}, false
	}
	return elements[i], true
}

// ParseHexColor decodes "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("parse colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustColor is ParseHexColor for the static table; it panics on bad input.
func (e ElementProfile) MustColor() color.RGBA {
	c, err := ParseHexColor(e.Color)
	if err != nil {
		panic(err)
	}
	return c
}
