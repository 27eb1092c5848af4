package model

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
)

// Reading is one vital-sign sample sent by a device, e.g. "De Rong,36.1,62".
type Reading struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
	HeartRate   int64   `json:"heart_rate"`
}

// ParseReading splits text on commas and converts the fields by position. Fields beyond the
// third are ignored. The name is kept as-is; numeric fields tolerate surrounding spaces and
// single underscores between digits ("1_000").
func ParseReading(text string) (*Reading, error) {
	fields := strings.Split(text, ",")
	if len(fields) < 3 {
		return nil, goerr.Wrap(types.ErrParse, "not enough fields").
			With("text", text).
			With("fields", len(fields))
	}

	temperature, err := strconv.ParseFloat(numericField(fields[1]), 64)
	if err != nil {
		return nil, goerr.Wrap(types.ErrParse.Wrap(err), "invalid temperature").With("text", text)
	}

	heartRate, err := strconv.ParseInt(numericField(fields[2]), 10, 64)
	if err != nil {
		return nil, goerr.Wrap(types.ErrParse.Wrap(err), "invalid heart rate").With("text", text)
	}

	return &Reading{
		Name:        fields[0],
		Temperature: temperature,
		HeartRate:   heartRate,
	}, nil
}

// numericField trims spaces and drops digit separators. A field with a misplaced underscore is
// returned unchanged so that strconv rejects it.
func numericField(field string) string {
	s := strings.TrimSpace(field)
	if !strings.Contains(s, "_") {
		return s
	}

	isDigit := func(c byte) bool { return '0' <= c && c <= '9' }

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return s
		}
	}
	return b.String()
}

// Format renders the reading in the wire form accepted by ParseReading.
func (x Reading) Format() string {
	return strings.Join([]string{
		x.Name,
		strconv.FormatFloat(x.Temperature, 'f', -1, 64),
		strconv.FormatInt(x.HeartRate, 10),
	}, ",")
}

func (x Reading) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", x.Name),
		slog.Float64("temperature", x.Temperature),
		slog.Int64("heart_rate", x.HeartRate),
	)
}
