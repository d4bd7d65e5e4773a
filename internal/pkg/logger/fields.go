package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is re-exported so callers never import zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Phone logs a phone number with all but the last four digits masked
func Phone(key, phone string) Field {
	return zap.String(key, MaskPhone(phone))
}

// MaskPhone keeps a leading '+' and the last four characters of phone
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	masked := make([]byte, len(phone))
	for i := range phone {
		switch {
		case i == 0 && phone[i] == '+':
			masked[i] = '+'
		case i >= len(phone)-4:
			masked[i] = phone[i]
		default:
			masked[i] = '*'
		}
	}
	return string(masked)
}
