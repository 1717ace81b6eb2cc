package alert

import (
	"fmt"
	"math"
)

// FmtPercent formats a ratio as a percentage with edge-case clamping: tiny
// positive ratios render as "< 0.1%" and near-complete ones as "> 99.9%".
func FmtPercent(value float64) string {
	if round3 := math.Round(value*1000) / 1000; round3 == 0 && value > 0 {
		return "< 0.1%"
	} else if round3 == 1 && value < 1 {
		return "> 99.9%"
	}
	return fmt.Sprintf("%.1f%%", value*100)
}

// Description returns the human-readable rendering of the alert. Each kind
// owns its wording; payload metrics are included when present.
func (a Alert) Description() string {
	switch a.Type {
	case Constant:
		return fmt.Sprintf("column [%s] has a constant value", a.Column)
	case ConstantLength:
		return fmt.Sprintf("column [%s] has a constant length", a.Column)
	case Duplicates:
		if n, ok := a.intValue("n_duplicates"); ok {
			p, _ := a.floatValue("p_duplicates")
			return fmt.Sprintf("dataset has %d (%s) duplicate rows", n, FmtPercent(p))
		}
		return "dataset has duplicated rows"
	case Empty:
		return "dataset is empty"
	case HighCardinality:
		if n, ok := a.intValue("n_distinct"); ok {
			p, _ := a.floatValue("p_distinct")
			return fmt.Sprintf("column [%s] has %d (%s) distinct values", a.Column, n, FmtPercent(p))
		}
		return fmt.Sprintf("column [%s] has high cardinality", a.Column)
	case HighCorrelation:
		partners := a.stringsValue("fields")
		corr, _ := a.Values["corr"].(string)
		if len(partners) > 1 {
			return fmt.Sprintf("column [%s] is highly %s correlated with [%s] and %d other fields",
				a.Column, corr, partners[0], len(partners)-1)
		}
		if len(partners) == 1 {
			return fmt.Sprintf("column [%s] is highly %s correlated with [%s]", a.Column, corr, partners[0])
		}
		return fmt.Sprintf("column [%s] is highly correlated with one or more columns", a.Column)
	case Imbalance:
		if v, ok := a.floatValue("imbalance"); ok {
			return fmt.Sprintf("column [%s] is highly imbalanced (%.3f)", a.Column, v)
		}
		return fmt.Sprintf("column [%s] is highly imbalanced", a.Column)
	case Infinite:
		if n, ok := a.intValue("n_infinite"); ok {
			p, _ := a.floatValue("p_infinite")
			return fmt.Sprintf("column [%s] has %d (%s) infinite values", a.Column, n, FmtPercent(p))
		}
		return fmt.Sprintf("column [%s] contains infinite values", a.Column)
	case Missing:
		if n, ok := a.intValue("n_missing"); ok {
			p, _ := a.floatValue("p_missing")
			return fmt.Sprintf("column [%s] has %d (%s) missing values", a.Column, n, FmtPercent(p))
		}
		return fmt.Sprintf("column [%s] contains missing values", a.Column)
	case NonStationary:
		return fmt.Sprintf("column [%s] is a non-stationary series", a.Column)
	case Rejected:
		return fmt.Sprintf("column [%s] is rejected from further analysis", a.Column)
	case Seasonal:
		return fmt.Sprintf("column [%s] is a seasonal time series", a.Column)
	case Skewed:
		if v, ok := a.floatValue("skewness"); ok {
			return fmt.Sprintf("column [%s] is highly skewed (γ1 = %g)", a.Column, v)
		}
		return fmt.Sprintf("column [%s] is highly skewed", a.Column)
	case TypeDate:
		return fmt.Sprintf("column [%s] only contains datetime values although it is typed categorical", a.Column)
	case Uniform:
		return fmt.Sprintf("column [%s] is uniformly distributed", a.Column)
	case Unique:
		return fmt.Sprintf("column [%s] has unique values", a.Column)
	case Unsupported:
		return fmt.Sprintf("column [%s] is an unsupported type, check if cleaning is needed", a.Column)
	case Zeros:
		if n, ok := a.intValue("n_zeros"); ok {
			p, _ := a.floatValue("p_zeros")
			return fmt.Sprintf("column [%s] has %d (%s) zeros", a.Column, n, FmtPercent(p))
		}
		return fmt.Sprintf("column [%s] is mostly zeros", a.Column)
	}
	return fmt.Sprintf("[%s] alert on column %s", a.Type.Name(), a.Column)
}

// String implements fmt.Stringer
func (a Alert) String() string {
	return a.Description()
}

func (a Alert) floatValue(key string) (float64, bool) {
	v, ok := a.Values[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func (a Alert) intValue(key string) (int, bool) {
	v, ok := a.Values[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func (a Alert) stringsValue(key string) []string {
	switch v := a.Values[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
