package quantity

import "math"

// AverageMeasure is implemented by additive quantities that can be divided by a count.
type AverageMeasure[Q any] interface {
	Additive[Q]
	Divide(divisor float64) Q
}

// OrderedMeasure is implemented by quantities ordered by their magnitude.
type OrderedMeasure[Q any] interface {
	Measure
	Ordered[Q]
}

// Sum returns the sum of terms, or the zero quantity when there are none.
func Sum[Q Additive[Q]](terms ...Q) Q {
	var sum Q
	for _, term := range terms {
		sum = sum.Add(term)
	}

	return sum
}

// Average returns the arithmetic mean of terms. The mean of no terms is NaN.
func Average[Q AverageMeasure[Q]](terms ...Q) Q {
	return Sum(terms...).Divide(float64(len(terms)))
}

// Min returns the smallest of the given quantities. A NaN operand is returned as is.
func Min[Q OrderedMeasure[Q]](first Q, rest ...Q) Q {
	return pick(first, rest, -1)
}

// Max returns the largest of the given quantities. A NaN operand is returned as is.
func Max[Q OrderedMeasure[Q]](first Q, rest ...Q) Q {
	return pick(first, rest, 1)
}

func pick[Q OrderedMeasure[Q]](first Q, rest []Q, want int) Q {
	best := first
	for _, q := range rest {
		if math.IsNaN(best.Magnitude()) {
			return best
		}
		if math.IsNaN(q.Magnitude()) || q.Compare(best) == want {
			best = q
		}
	}

	return best
}
