package helpers

// GaugeCircumference is the length of a circle with r = 40.
const GaugeCircumference = 251.2

type Gauge struct {
	Score         float64
	Circumference float64
	Offset        float64
}

type GaugeHelper struct{}

func NewGaugeHelper() *GaugeHelper {
	return &GaugeHelper{}
}

// MakeGauge returns stroke values of the viral score ring. Score is not clamped.
func (s *GaugeHelper) MakeGauge(score float64) Gauge {
	return Gauge{
		Score:         score,
		Circumference: GaugeCircumference,
		Offset:        GaugeCircumference - GaugeCircumference*score/100,
	}
}
