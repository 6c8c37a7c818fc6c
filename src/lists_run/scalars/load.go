package scalars

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

var logger = loggo.GetLogger("lists.scalars")

// Parse converts a token into a scalar: nil, bool, int64, float64 or
// string. Quoted tokens are unquoted; any other token is kept as text.
func Parse(tok string) any {
	switch tok {
	case "null", "None", "nil":
		return nil
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	if s, err := strconv.Unquote(tok); err == nil {
		return s
	}
	return tok
}

// ParseLine returns the scalars of a whitespace separated line.
func ParseLine(line string) []any {
	fields := strings.Fields(line)
	values := make([]any, 0, len(fields))
	for _, tok := range fields {
		values = append(values, Parse(tok))
	}
	return values
}

// Load reads scalars from r, one or more per line. Blank lines and lines
// starting with '#' are skipped.
func Load(r io.Reader) ([]any, error) {
	var values []any
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, ParseLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Annotatef(err, "reading line %d", lineNum+1)
	}
	logger.Debugf("loaded %d scalars from %d lines", len(values), lineNum)
	return values, nil
}

func LoadFile(filename string) ([]any, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()

	values, err := Load(file)
	if err != nil {
		return nil, errors.Annotatef(err, "loading %q", filename)
	}
	return values, nil
}

// Numbers returns the numeric scalars of values as float64, in order.
func Numbers(values []any) []float64 {
	var nums []float64
	for _, v := range values {
		switch v := v.(type) {
		case int64:
			nums = append(nums, float64(v))
		case float64:
			nums = append(nums, v)
		}
	}
	return nums
}
