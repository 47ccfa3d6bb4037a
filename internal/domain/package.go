package domain

// Represents a single physical package inside a shipment.
// Dimensions are centimeters and weight is kilograms. Weight is
// mandatory: a package without a weight is a data-quality defect that
// must surface upstream, never a silent zero, because weight feeds the
// billing and customs fields. DeclaredValue is optional and defaults
// to zero when absent.
type Package struct {
	ID            int
	PackageType   string
	Description   string
	Length        float64
	Width         float64
	Height        float64
	Weight        float64
	DeclaredValue *float64
	Pieces        int
	Dangerous     bool
	Insured       bool
}
