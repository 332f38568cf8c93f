package apimodels

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Present значение из JSON тела считается заданным, если это не null, "", false или 0
func Present(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	}
	return true
}

// Text строковое представление значения из JSON тела.
// Массивы склеиваются через запятую, объекты дают "[object Object]"
func Text(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, Text(item))
		}
		return strings.Join(parts, ",")
	case map[string]interface{}:
		return "[object Object]"
	}
	return fmt.Sprint(value)
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// 1e+21, 1.5e-7
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + sign + digits
}
