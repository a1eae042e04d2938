// Public domain.

package runlog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/snflog/internal/sky"
)

// Channel is a bit set of SNIFS detector channels.
type Channel int

const (
	ChanP Channel = 1 << iota // photometric
	ChanR                     // red spectroscopic
	ChanB                     // blue spectroscopic
)

// channelTag maps the single letter tags of a pose line.
var channelTag = map[string]Channel{"P": ChanP, "R": ChanR, "B": ChanB}

// String lists the set channels as letters in B, R, P order, or "-".
func (c Channel) String() string {
	var b strings.Builder
	for _, t := range []struct {
		c Channel
		s string
	}{{ChanB, "B"}, {ChanR, "R"}, {ChanP, "P"}} {
		if c&t.c != 0 {
			b.WriteString(t.s)
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// Fclass is the frame class code of an exposure.
type Fclass int

const (
	FclassNone Fclass = 0
	FclassOn   Fclass = 902
	FclassOff  Fclass = 903
	FclassKill Fclass = 904
)

// fclassOf gives the frame class implied by a run type.
func fclassOf(runType string) Fclass {
	switch runType {
	case "ON":
		return FclassOn
	case "OFF":
		return FclassOff
	case "KILL":
		return FclassKill
	}
	return FclassNone
}

// Exposure is one shutter event of a run.
//
// RunID keys the owning run.  Use Log.RunOf to reach the Run itself.
type Exposure struct {
	Event    int
	RunID    string
	Quality  Quality
	QualityS string
	Channel  Channel
	Fclass   Fclass
	Date     float64 // Julian date
	MidTime  float64 // Julian date of mid exposure, Date until measured

	Telemetry
}

// ID returns the exposure key, YYDDDRRREVT.
func (e *Exposure) ID() string { return fmt.Sprintf("%s%03d", e.RunID, e.Event) }

// Time returns the exposure time.
func (e *Exposure) Time() time.Time { return sky.JDToTime(e.Date) }

// Telemetry is what is known of telescope, instrument and weather state
// during an exposure.  Run log reconstruction leaves it at the values of
// NewTelemetry; the fields are filled from other sources.
//
// Float fields not otherwise documented are NaN when unknown, and int
// fields -1.
type Telemetry struct {
	// guiding
	Guide      int // 0 unguided, 1 good, 2 poor, 3 bad
	GuideX     float64
	GuideY     float64 // guide star pixel, -1 when unknown
	SeeingInst float64
	Seeing     float64 // arc seconds, -1 when unknown
	GuideF     float64
	GuideS     float64 // flux and stability quality words, 0 when unknown
	Interrupt  int     // 1 if the exposure was cut short

	OpenTime float64 // main shutter open time, seconds

	// pointing, degrees
	RA, Dec           float64 // target, J2000
	RAPoint, DecPoint float64 // commanded, with offsets
	RATel, DecTel     float64 // raw telescope
	AirMass           float64
	HA                float64
	ZD                float64
	Azimuth           float64
	Altitude          float64

	// sky conditions at mid exposure
	AltSun      float64
	AltMoon     float64
	MoonIllFrac float64
	ObjMoon     float64
	MidAirMass  float64
	MidHA       float64
	ParAng      float64
	LunSky      float64 // V mag per square arc second

	// instrument
	Filter     string
	LampConB   int
	LampConR   int
	LampArcB   int
	LampArcR   int
	LampDome   int
	SnifsTemp  float64
	Pop        int
	FocusB     int
	FocusR     int
	FilterReq  int
	FilterPos  int
	FocusReqB  int
	FocusReqR  int
	SnifsHumid float64
	SnifsHTemp float64

	// dome and weather
	Pressure    float64
	Humidity    float64
	Temp        float64
	LightFlu    float64
	LightInc    float64
	WindDir     float64
	WindSpeed   float64
	TelTemp     float64
	TelFocus    float64
	TelHumidIn  float64
	TelHumidOut float64
	TelWind     float64
}

// NewTelemetry returns a Telemetry with every field unknown.
func NewTelemetry() Telemetry {
	n := math.NaN()
	return Telemetry{
		GuideX: -1, GuideY: -1, SeeingInst: -1, Seeing: -1,

		OpenTime: n,
		RA:       n, Dec: n, RAPoint: n, DecPoint: n, RATel: n, DecTel: n,
		AirMass: n, HA: n, ZD: n, Azimuth: n, Altitude: n,

		AltSun: n, AltMoon: n, MoonIllFrac: n, ObjMoon: n,
		MidAirMass: n, MidHA: n, ParAng: n, LunSky: n,

		Filter:   "Unknown",
		LampConB: -1, LampConR: -1, LampArcB: -1, LampArcR: -1, LampDome: -1,
		SnifsTemp: n, Pop: -1,
		FocusB: -1, FocusR: -1, FilterReq: -1, FilterPos: -1,
		FocusReqB: -1, FocusReqR: -1,
		SnifsHumid: n, SnifsHTemp: n,

		Pressure: n, Humidity: n, Temp: n, LightFlu: n, LightInc: n,
		WindDir: n, WindSpeed: n, TelTemp: n, TelFocus: n,
		TelHumidIn: n, TelHumidOut: n, TelWind: n,
	}
}
