package noise

import "math"

// Metric selects the distance function used to rank feature points.
type Metric uint8

const (
	MetricEuclidean        Metric = iota // sqrt(dx²+dy²)
	MetricEuclideanSquared               // dx²+dy²
	MetricManhattan                      // |dx|+|dy|
	MetricChebyshev                      // max(|dx|,|dy|)
	MetricQuadratic                      // dx²+dx·dy+dy²
	MetricMinkowski                      // (|dx|^p+|dy|^p)^(1/p)
)

// DefaultMinkowskiOrder is the exponent p used by MetricMinkowski unless configured.
const DefaultMinkowskiOrder = 3.0

// Distance returns the metric length of the delta vector d.
// order is only read by MetricMinkowski. Unknown metrics return 0.
func (m Metric) Distance(d Point, order float64) float64 {
	switch m {
	case MetricEuclidean:
		return math.Sqrt(d.X*d.X + d.Y*d.Y)
	case MetricEuclideanSquared:
		return d.X*d.X + d.Y*d.Y
	case MetricManhattan:
		return math.Abs(d.X) + math.Abs(d.Y)
	case MetricChebyshev:
		x, y := math.Abs(d.X), math.Abs(d.Y)
		if x <= y {
			return y
		}
		return x
	case MetricQuadratic:
		return d.X*d.X + d.X*d.Y + d.Y*d.Y
	case MetricMinkowski:
		return math.Pow(math.Pow(math.Abs(d.X), order)+math.Pow(math.Abs(d.Y), order), 1/order)
	default:
		return 0
	}
}

// squared reports whether the metric grows with the square of distance.
func (m Metric) squared() bool {
	return m == MetricEuclideanSquared || m == MetricQuadratic
}

// normScale is applied to the cell-diagonal length to get the normalization constant.
func (m Metric) normScale() float64 {
	if m.squared() {
		return 0.1
	}
	return 0.5
}

// Valid reports whether m names a known metric.
func (m Metric) Valid() bool {
	return m <= MetricMinkowski
}

// String returns a human-readable metric name.
func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricEuclideanSquared:
		return "EuclideanSquared"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricQuadratic:
		return "Quadratic"
	case MetricMinkowski:
		return "Minkowski"
	default:
		return "Unknown"
	}
}
