package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"
)

const valuesPerLine = 10

var logger = loggo.GetLogger("lists.generator")

var generators = map[string]func(r *rand.Rand) string{
	"int": func(r *rand.Rand) string {
		return strconv.Itoa(r.Intn(201) - 100)
	},
	"float": func(r *rand.Rand) string {
		return strconv.FormatFloat(r.NormFloat64()*10, 'f', 3, 64)
	},
	"string": func(r *rand.Rand) string {
		b := make([]byte, 1+r.Intn(6))
		for i := range b {
			b[i] = byte('a' + r.Intn(26))
		}
		return strconv.Quote(string(b))
	},
	"bool": func(r *rand.Rand) string {
		return strconv.FormatBool(r.Intn(2) == 1)
	},
	"null": func(*rand.Rand) string {
		return "null"
	},
}

// GenerateScalars returns numValues random scalar tokens of the given
// kinds, valuesPerLine to a line.
func GenerateScalars(r *rand.Rand, numValues int, kinds []string) (string, error) {
	for _, kind := range kinds {
		if _, ok := generators[kind]; !ok {
			return "", errors.NotValidf("scalar kind %q", kind)
		}
	}
	s := new(strings.Builder)
	for i := range numValues {
		kind := kinds[r.Intn(len(kinds))]
		s.WriteString(generators[kind](r))
		if (i+1)%valuesPerLine == 0 || i == numValues-1 {
			s.WriteRune('\n')
		} else {
			s.WriteRune(' ')
		}
	}
	return s.String(), nil
}

func main() {
	var outPath, kinds, logConfig string
	var numValues int
	var seed int64

	gnuflag.StringVar(&outPath, "out", "out.txt", "The output file")
	gnuflag.IntVar(&numValues, "values", 0, "The number of scalars")
	gnuflag.StringVar(&kinds, "kinds", "int,float,string,bool,null", "Comma separated scalar kinds to draw from")
	gnuflag.Int64Var(&seed, "seed", 1, "The random seed")
	gnuflag.StringVar(&logConfig, "log", "<root>=WARNING", "Logging configuration")

	gnuflag.Parse(true)

	if err := loggo.ConfigureLoggers(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging configuration %q: %v\n", logConfig, err)
		os.Exit(1)
	}
	if numValues <= 0 {
		fmt.Fprintln(os.Stderr, "Must specify the number of scalars")
		os.Exit(1)
	}

	r := rand.New(rand.NewSource(seed))
	content, err := GenerateScalars(r, numValues, strings.Split(kinds, ","))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(content), 0666); err != nil {
		logger.Errorf("writing %q: %v", outPath, err)
		os.Exit(1)
	}
	logger.Infof("wrote %d scalars to %q", numValues, outPath)
}
