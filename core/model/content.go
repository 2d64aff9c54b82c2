package model

import "time"

// Instrument is one of the carrier instruments offered during alchemy.
type Instrument struct {
	Name  string
	Latin string
}

// Instruments are the four fixed carriers; the first is the default.
var Instruments = []Instrument{
	{Name: "古琴", Latin: "Guqin"},
	{Name: "笛箫", Latin: "Dixiao"},
	{Name: "编钟", Latin: "Bianzhong"},
	{Name: "琵琶", Latin: "Pipa"},
}

// InstrumentByName returns the instrument called name.
func InstrumentByName(name string) (Instrument, bool) {
	for _, in := range Instruments {
		if in.Name == name {
			return in, true
		}
	}
	return Instrument{}, false
}

// DefaultTone is the tone selected at start (Gong, Earth).
const DefaultTone = "宫"

// SecondaryTone is the fixed supporting remedy shown on the prescription.
const SecondaryTone = "商"

// Symptoms are the diagnosis tags listed on the prescription.
var Symptoms = []string{"#insomnia", "#work-anxiety", "#restless-mind", "#chronic-fatigue"}

// IntroSlides is the onboarding carousel.
var IntroSlides = []string{
	"Amid the noise of the digital world...",
	"How is your inner frequency vibrating right now?",
	"Close your eyes, feel, and light the point that is yours in this moment.",
}

// DiagnosisLeadIn prefixes the diagnosis feedback.
const DiagnosisLeadIn = "Your pulse reads: "

// DiagnosisEmotions are the five possible diagnosis readings.
var DiagnosisEmotions = []string{"anxious", "low", "agitated", "stagnant", "depleted"}

// Direction is the dosage line printed on every prescription.
const Direction = "Let sound enter the spirit and regulate the qi. Listen quietly for 21 minutes each night at the Hai hour."

// Version is shown under the title.
const Version = "v5.0.0"

var doubleHours = [12]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}

// DoubleHour names the traditional two-hour period containing t. Zi spans
// 23:00 to 00:59.
func DoubleHour(t time.Time) string {
	return doubleHours[((t.Hour()+1)/2)%12]
}
