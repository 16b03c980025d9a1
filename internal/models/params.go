package models

import "fmt"

// Axis labels shared by the models.
const (
	AxisPorosity     = "porosity"
	AxisPressure     = "pressure (MPa)"
	AxisCrackDensity = "crack density"
)

// Default mineral moduli in GPa. 40/30 is the generic calcite-like solid
// used throughout the effective-medium literature; 37/44 is quartz.
const (
	DefaultBulk        = 40.0
	DefaultShear       = 30.0
	QuartzBulk         = 37.0
	QuartzShear        = 44.0
	DefaultCritical    = 0.4
	DefaultCoordNumber = 8.6
	DefaultIterations  = 100
	WaterBulk          = 2.2
)

func errUnknownParam(name string) error {
	return fmt.Errorf("unknown param: %s", name)
}
