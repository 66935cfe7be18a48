package logs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats"
)

const logIDSeparator = "_"

var ErrMalformedLogID = fmt.Errorf("%w: malformed log id", gymstats.ErrInvalidInput)

// LogID identifies one session event: the exercise, the date key it is stored under
// and its timestamp.
type LogID struct {
	ExerciseID string
	Date       string
	Timestamp  string
}

var logIDEscaper = strings.NewReplacer("%", "%25", logIDSeparator, "%5F")

// String joins the parts with "_", escaping "%" and "_" inside each part so the
// result always splits back into the same three parts.
func (id LogID) String() string {
	return logIDEscaper.Replace(id.ExerciseID) +
		logIDSeparator + logIDEscaper.Replace(id.Date) +
		logIDSeparator + logIDEscaper.Replace(id.Timestamp)
}

func ParseLogID(s string) (LogID, error) {
	parts := strings.Split(s, logIDSeparator)
	if len(parts) != 3 {
		return LogID{}, fmt.Errorf("%w: %q has %d parts", ErrMalformedLogID, s, len(parts))
	}

	for i, part := range parts {
		if part == "" {
			return LogID{}, fmt.Errorf("%w: %q has an empty part", ErrMalformedLogID, s)
		}
		unescaped, err := url.PathUnescape(part)
		if err != nil {
			return LogID{}, fmt.Errorf("%w: %q: %s", ErrMalformedLogID, s, err)
		}
		parts[i] = unescaped
	}

	return LogID{
		ExerciseID: parts[0],
		Date:       parts[1],
		Timestamp:  parts[2],
	}, nil
}
