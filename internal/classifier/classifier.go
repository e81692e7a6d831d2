// Package classifier determines the sign category of integers.
package classifier

import "fmt"

// Classification is the sign category of an integer
type Classification int

const (
	Zero Classification = iota
	Positive
	Negative
)

// Result bundles an input with its classification and rendered message
type Result struct {
	Input          int            `json:"input"`
	Classification Classification `json:"classification"`
	Message        string         `json:"message"`
}

// Classify returns the sign category of num
func Classify(num int) Classification {
	switch {
	case num > 0:
		return Positive
	case num < 0:
		return Negative
	default:
		return Zero
	}
}

// Evaluate classifies num and renders its message
func Evaluate(num int) Result {
	c := Classify(num)
	return Result{
		Input:          num,
		Classification: c,
		Message:        c.Message(),
	}
}

// String returns the lowercase name of the classification
func (c Classification) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	default:
		return "unknown"
	}
}

// Message returns the human-readable sentence printed for the classification
func (c Classification) Message() string {
	switch c {
	case Positive, Negative, Zero:
		return "The number is " + c.String()
	default:
		return fmt.Sprintf("The number has unknown classification %d", int(c))
	}
}

// MarshalText encodes the classification by name so JSON logs stay readable
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
